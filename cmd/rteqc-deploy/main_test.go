package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcet-nz/rteqc-deploy/internal/cli"
)

func TestMountCheckBeforeConnect(t *testing.T) {
	tests := []struct {
		name string
		args cli.Args
		want bool
	}{
		{"run only", cli.Args{Run: true}, true},
		{"run with build", cli.Args{Run: true, Build: true}, false},
		{"run with clean", cli.Args{Run: true, Clean: true}, false},
		{"build only", cli.Args{Build: true}, false},
		{"status only", cli.Args{Status: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mountCheckBeforeConnect(&tt.args))
		})
	}
}

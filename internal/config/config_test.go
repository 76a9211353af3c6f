package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDefaults(t *testing.T) {
	cfg := Resolve(Options{}, "quakebox")

	assert.Equal(t, "rteqc-api", cfg.Image)
	assert.Equal(t, "latest", cfg.Tag)
	assert.Equal(t, "rteqc-api", cfg.ContainerName)
	assert.Equal(t, "quakebox-rteqc-api", cfg.Hostname)
	assert.Equal(t, "/tmp/outputs/detections", cfg.HostMountDir)
	assert.Equal(t, "/tmp/outputs/detections", cfg.ContainerMountDir)
	assert.Equal(t, 8000, cfg.HostPort)
	assert.Equal(t, 8000, cfg.ContainerPort)
	assert.Equal(t, "rteqc-api:latest", cfg.ImageRef())
}

func TestResolveOverrides(t *testing.T) {
	cfg := Resolve(Options{
		Image:         "rteqc-api-dev",
		Tag:           "v2",
		ContainerName: "rteqc-dev",
		HostMountDir:  "/data/detections",
		HostPort:      8080,
		Env:           []string{"LOG_LEVEL=debug"},
	}, "quakebox")

	assert.Equal(t, "rteqc-api-dev", cfg.Image)
	assert.Equal(t, "rteqc-api-dev:v2", cfg.ImageRef())
	assert.Equal(t, "rteqc-dev", cfg.ContainerName)
	assert.Equal(t, "/data/detections", cfg.HostMountDir)
	assert.Equal(t, 8080, cfg.HostPort)
	assert.Equal(t, []string{"LOG_LEVEL=debug"}, cfg.Env)

	// The container mount path never moves.
	assert.Equal(t, "/tmp/outputs/detections", cfg.ContainerMountDir)
	// Container port is not operator-facing either.
	assert.Equal(t, 8000, cfg.ContainerPort)
}

func TestResolveHostnameTracksImageOverride(t *testing.T) {
	cfg := Resolve(Options{Image: "rteqc-api-dev"}, "quakebox")
	assert.Equal(t, "quakebox-rteqc-api-dev", cfg.Hostname)
}

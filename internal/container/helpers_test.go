package container

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRunConfig() RunConfig {
	return RunConfig{
		Name:              "rteqc-api",
		ImageRef:          "rteqc-api:latest",
		Hostname:          "quakebox-rteqc-api",
		Env:               []string{"LOG_LEVEL=debug"},
		HostMountDir:      "/data/detections",
		ContainerMountDir: "/tmp/outputs/detections",
		HostPort:          8000,
		ContainerPort:     8000,
	}
}

func TestBuildContainerConfig(t *testing.T) {
	cfg := buildContainerConfig(testRunConfig())

	assert.Equal(t, "rteqc-api:latest", cfg.Image)
	assert.Equal(t, "quakebox-rteqc-api", cfg.Hostname)
	assert.Equal(t, []string{"LOG_LEVEL=debug"}, cfg.Env)

	_, exposed := cfg.ExposedPorts[nat.Port("8000/tcp")]
	assert.True(t, exposed, "container port should be exposed")
}

func TestBuildHostConfig(t *testing.T) {
	cfg := buildHostConfig(testRunConfig())

	bindings := cfg.PortBindings[nat.Port("8000/tcp")]
	require.Len(t, bindings, 1)
	assert.Equal(t, "0.0.0.0", bindings[0].HostIP)
	assert.Equal(t, "8000", bindings[0].HostPort)

	require.Len(t, cfg.Mounts, 1)
	assert.Equal(t, "/data/detections", cfg.Mounts[0].Source)
	assert.Equal(t, "/tmp/outputs/detections", cfg.Mounts[0].Target)
}

func TestContainerPort(t *testing.T) {
	assert.Equal(t, nat.Port("8000/tcp"), containerPort(8000))
}

func TestShortID(t *testing.T) {
	long := "0123456789abcdef0123456789abcdef"
	assert.Equal(t, "0123456789ab", shortID(long))
	assert.Equal(t, "abc", shortID("abc"))
}

func TestTarBuildContext(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dockerfile"), []byte("FROM python:3.12-slim\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "api"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "api", "main.py"), []byte("print('ok')\n"), 0o644))
	// .git contents must not leak into the build context
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref: refs/heads/main\n"), 0o644))

	reader, err := tarBuildContext(dir)
	require.NoError(t, err)

	names := map[string]bool{}
	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names[hdr.Name] = true
	}

	assert.True(t, names["Dockerfile"])
	assert.True(t, names["api/main.py"])
	assert.False(t, names[".git/HEAD"])
}

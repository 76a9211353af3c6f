package container

import (
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/go-connections/nat"
)

// buildContainerConfig creates a container.Config from RunConfig.
func buildContainerConfig(cfg RunConfig) *container.Config {
	return &container.Config{
		Image:    cfg.ImageRef,
		Hostname: cfg.Hostname,
		Env:      cfg.Env,
		ExposedPorts: nat.PortSet{
			containerPort(cfg.ContainerPort): struct{}{},
		},
	}
}

// buildHostConfig creates a container.HostConfig from RunConfig.
func buildHostConfig(cfg RunConfig) *container.HostConfig {
	return &container.HostConfig{
		PortBindings: nat.PortMap{
			containerPort(cfg.ContainerPort): []nat.PortBinding{
				{
					HostIP:   "0.0.0.0",
					HostPort: fmt.Sprintf("%d", cfg.HostPort),
				},
			},
		},
		Mounts: []mount.Mount{
			{
				Type:   mount.TypeBind,
				Source: cfg.HostMountDir,
				Target: cfg.ContainerMountDir,
			},
		},
	}
}

// containerPort formats a port number as a nat.Port TCP key.
func containerPort(port int) nat.Port {
	return nat.Port(fmt.Sprintf("%d/tcp", port))
}

// shortID truncates a container ID for display.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

package container

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
)

// RunConfig holds the configuration for launching a container.
type RunConfig struct {
	Name     string
	ImageRef string
	Hostname string
	Env      []string

	HostMountDir      string
	ContainerMountDir string

	HostPort      int
	ContainerPort int
}

// Run creates and starts a detached container. It returns the container ID
// once the daemon has accepted the start; it never waits for the container
// to exit.
func (c *Client) Run(ctx context.Context, cfg RunConfig) (string, error) {
	containerConfig := buildContainerConfig(cfg)
	hostConfig := buildHostConfig(cfg)

	resp, err := c.cli.ContainerCreate(
		ctx,
		containerConfig,
		hostConfig,
		nil,
		nil,
		cfg.Name,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create container: %w", err)
	}

	if err := c.cli.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return "", fmt.Errorf("failed to start container: %w", err)
	}

	return resp.ID, nil
}

// Status describes a named container's observed state.
type Status struct {
	ID      string
	Running bool
	Uptime  string
}

// InspectStatus reports whether the named container is running and, if so,
// for how long.
func (c *Client) InspectStatus(ctx context.Context, name string) (Status, error) {
	inspect, err := c.cli.ContainerInspect(ctx, name)
	if err != nil {
		return Status{}, fmt.Errorf("failed to inspect container: %w", err)
	}

	status := Status{ID: inspect.ID}
	if inspect.State == nil || !inspect.State.Running {
		return status, nil
	}

	startedAt, err := time.Parse(time.RFC3339Nano, inspect.State.StartedAt)
	if err != nil {
		return Status{}, fmt.Errorf("failed to parse start time: %w", err)
	}

	status.Running = true
	status.Uptime = formatUptime(time.Since(startedAt))
	return status, nil
}

// formatUptime formats a duration into a human-readable uptime string.
func formatUptime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

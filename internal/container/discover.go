package container

import (
	"context"
	"fmt"
	"strconv"
)

// ResolveHostPort inspects a launched container and returns the host port the
// daemon actually bound to the given container port. The container is
// identified by the ID returned from Run, so there is no ambiguity with
// stale containers sharing the configured name. Inspection is the source of
// truth: the bound port can differ from the configured one.
func (c *Client) ResolveHostPort(ctx context.Context, containerID string, port int) (int, error) {
	inspect, err := c.cli.ContainerInspect(ctx, containerID)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect container %s: %w", shortID(containerID), err)
	}

	if inspect.NetworkSettings == nil {
		return 0, fmt.Errorf("container %s has no network settings", shortID(containerID))
	}

	bindings := inspect.NetworkSettings.Ports[containerPort(port)]
	if len(bindings) == 0 {
		return 0, fmt.Errorf("container %s has no host binding for port %d", shortID(containerID), port)
	}

	hostPort, err := strconv.Atoi(bindings[0].HostPort)
	if err != nil {
		return 0, fmt.Errorf("unexpected host port %q on container %s: %w",
			bindings[0].HostPort, shortID(containerID), err)
	}

	return hostPort, nil
}

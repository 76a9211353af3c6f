package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rcet-nz/rteqc-deploy/internal/cli"
	"github.com/rcet-nz/rteqc-deploy/internal/config"
	"github.com/rcet-nz/rteqc-deploy/internal/container"
	"github.com/rcet-nz/rteqc-deploy/internal/deploy"
	"github.com/rcet-nz/rteqc-deploy/internal/host"
	"github.com/rcet-nz/rteqc-deploy/internal/ui"
)

func main() {
	args, err := cli.Parse(os.Args)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			printUsage(os.Stdout)
			os.Exit(0)
		}
		ui.Fail("%v", err)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	localHost := localHostname()
	cfg := config.Resolve(config.Options{
		Image:         args.Image,
		Tag:           args.Tag,
		ContainerName: args.ContainerName,
		HostMountDir:  args.DetectDir,
		HostPort:      args.HostPort,
		Env:           args.Env,
	}, localHost)

	ctx := context.Background()

	ui.Header()

	// A bare run has no image work that could need the daemon first, so a
	// bad mount dir must abort before the daemon is ever contacted.
	if mountCheckBeforeConnect(args) {
		if err := host.CheckMountDir(cfg.HostMountDir); err != nil {
			ui.Fail("%v", err)
			ui.Footer()
			os.Exit(1)
		}
	}

	client, err := container.NewClient(ctx)
	if err != nil {
		ui.Fail("Failed to connect to Docker: %v", err)
		ui.Footer()
		os.Exit(1)
	}
	defer client.Close()

	if args.Status {
		reportStatus(ctx, client, cfg)
		return
	}

	if args.Clean || args.Build {
		if err := deploy.PrepareImage(ctx, client, cfg, ".", args.Clean, args.Build); err != nil {
			ui.Fail("Build failed: %v", err)
			ui.Footer()
			os.Exit(1)
		}
	}

	if args.Run {
		runWorkload(ctx, client, cfg, localHost)
		return
	}

	ui.Footer()
}

// mountCheckBeforeConnect reports whether the mount precheck must run before
// connecting to the daemon. With clean or build requested the image work
// comes first and the check keeps its place between build and launch.
func mountCheckBeforeConnect(args *cli.Args) bool {
	return args.Run && !args.Clean && !args.Build
}

func runWorkload(ctx context.Context, client *container.Client, cfg config.Config, localHost string) {
	if err := host.CheckMountDir(cfg.HostMountDir); err != nil {
		ui.Fail("%v", err)
		ui.Footer()
		os.Exit(1)
	}

	if container.CheckPortInUse(cfg.HostPort) {
		if user, ok := container.GetPortUser(cfg.HostPort); ok && user.ProcessName != "" {
			ui.Warn("Host port %d is in use by %s (pid %s)", cfg.HostPort, user.ProcessName, user.ProcessPID)
		} else {
			ui.Warn("Host port %d is already in use", cfg.HostPort)
		}
	}

	ui.Info("Starting container %s from %s", cfg.ContainerName, cfg.ImageRef())
	containerID, err := client.Run(ctx, container.RunConfig{
		Name:              cfg.ContainerName,
		ImageRef:          cfg.ImageRef(),
		Hostname:          cfg.Hostname,
		Env:               cfg.Env,
		HostMountDir:      cfg.HostMountDir,
		ContainerMountDir: cfg.ContainerMountDir,
		HostPort:          cfg.HostPort,
		ContainerPort:     cfg.ContainerPort,
	})
	if err != nil {
		ui.Fail("Failed to start container: %v", err)
		ui.Footer()
		os.Exit(1)
	}

	// The daemon, not the configuration, is the authority on which host port
	// got bound. Inspect the container we just started by its ID.
	port, err := client.ResolveHostPort(ctx, containerID, cfg.ContainerPort)
	if err != nil {
		ui.Fail("Failed to resolve bound host port: %v", err)
		ui.Footer()
		os.Exit(1)
	}

	ui.Success("Container started, serving detections from %s", cfg.HostMountDir)
	ui.Footer()

	// The access URL is the invocation's machine-readable output.
	fmt.Printf("http://%s:%d\n", localHost, port)
}

func reportStatus(ctx context.Context, client *container.Client, cfg config.Config) {
	status, err := client.InspectStatus(ctx, cfg.ContainerName)
	if err != nil {
		ui.Fail("Failed to inspect container %s: %v", cfg.ContainerName, err)
		ui.Footer()
		os.Exit(1)
	}

	if !status.Running {
		ui.Warn("Container %s exists but is not running", cfg.ContainerName)
		ui.Footer()
		return
	}

	ui.Success("Container %s running for %s", cfg.ContainerName, status.Uptime)

	port, err := client.ResolveHostPort(ctx, status.ID, cfg.ContainerPort)
	if err != nil {
		ui.Warn("Could not resolve bound host port: %v", err)
	} else {
		ui.Info("Serving on http://%s:%d", localHostname(), port)
	}

	ui.Footer()
}

func localHostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return name
}

func printUsage(w io.Writer) {
	usage := `rteqc-deploy - deployment lifecycle manager for the rteqc-api container

USAGE:
    rteqc-deploy [OPTIONS]

OPTIONS:
    -b, --build            Build the service image from the current directory
    -c, --clean            Remove the service image first (forces a no-cache build)
    -r, --run              Start a detached container and report its URL
        --status           Report the container's state, uptime and bound port
        --image NAME       Override the image name (default rteqc-api)
        --name NAME        Override the container name (default rteqc-api)
        --tag TAG          Override the image tag (default latest)
        --detect-dir PATH  Override the host detections directory
                           (default /tmp/outputs/detections)
        --port N           Override the published host port (default 8000)
        --env KEY=VALUE    Add an environment variable to the container
    -h, --help             Show this help message

EXAMPLES:
    # Build and start with defaults
    rteqc-deploy --build --run

    # Full rebuild discarding stale layers, then run
    rteqc-deploy --clean --build --run

    # Serve detections from another directory
    rteqc-deploy --run --detect-dir /data/detections
`
	fmt.Fprint(w, usage)
}

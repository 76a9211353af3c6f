// Package deploy sequences image lifecycle actions against the container
// runtime.
package deploy

import (
	"context"
	"io"

	"github.com/rcet-nz/rteqc-deploy/internal/config"
	"github.com/rcet-nz/rteqc-deploy/internal/container"
	"github.com/rcet-nz/rteqc-deploy/internal/ui"
)

// ImageRuntime is the slice of the Docker client the image lifecycle needs.
type ImageRuntime interface {
	RemoveImage(ctx context.Context, imageRef string) error
	BuildImage(ctx context.Context, contextDir string, out io.Writer, opts container.BuildOptions) error
}

// BuildOptionsFor derives the build options from the requested actions. A
// clean in the same invocation signals "discard stale state", so the rebuild
// must not reuse cached layers.
func BuildOptionsFor(cfg config.Config, cleanRequested bool) container.BuildOptions {
	return container.BuildOptions{
		ImageRef: cfg.ImageRef(),
		NoCache:  cleanRequested,
	}
}

// PrepareImage performs the requested clean and build actions, in that
// order. Image removal is best-effort and never aborts the invocation; a
// build failure does, and carries the daemon's diagnostic.
func PrepareImage(ctx context.Context, rt ImageRuntime, cfg config.Config, contextDir string, clean, build bool) error {
	if clean {
		ui.Info("Removing image %s", cfg.ImageRef())
		if err := rt.RemoveImage(ctx, cfg.ImageRef()); err != nil {
			ui.Warn("Image removal failed: %v", err)
		} else {
			ui.Success("Image removed: %s", cfg.ImageRef())
		}
	}

	if build {
		opts := BuildOptionsFor(cfg, clean)
		if opts.NoCache {
			ui.Info("Building image %s (layer cache disabled)", cfg.ImageRef())
		} else {
			ui.Info("Building image %s", cfg.ImageRef())
		}
		if err := rt.BuildImage(ctx, contextDir, ui.Out, opts); err != nil {
			return err
		}
		ui.Success("Image built: %s", cfg.ImageRef())
	}

	return nil
}

// Package config resolves deployment defaults and CLI overrides into a
// single immutable configuration.
package config

// Defaults for the rteqc-api deployment. The container mount path is fixed:
// the workload reads detection outputs from there and is not configurable.
const (
	DefaultImage         = "rteqc-api"
	DefaultTag           = "latest"
	DefaultContainerName = "rteqc-api"
	DefaultHostPort      = 8000
	DefaultContainerPort = 8000
	DefaultHostMountDir  = "/tmp/outputs/detections"
	ContainerMountDir    = "/tmp/outputs/detections"
)

// Config is the fully resolved deployment configuration. It is built once
// per invocation and never mutated afterwards.
type Config struct {
	Image         string
	Tag           string
	ContainerName string
	Hostname      string

	HostMountDir      string
	ContainerMountDir string

	HostPort      int
	ContainerPort int

	Env []string
}

// Options holds the operator's overrides. Zero values mean "keep the default".
type Options struct {
	Image         string
	Tag           string
	ContainerName string
	HostMountDir  string
	HostPort      int
	Env           []string
}

// Resolve merges defaults with overrides into a Config. The container
// hostname is derived from the local host name and the resolved image name,
// so an --image override is reflected in it. Resolve is pure: localHost is
// supplied by the caller and nothing here touches the filesystem or the
// container runtime.
func Resolve(opts Options, localHost string) Config {
	cfg := Config{
		Image:             DefaultImage,
		Tag:               DefaultTag,
		ContainerName:     DefaultContainerName,
		HostMountDir:      DefaultHostMountDir,
		ContainerMountDir: ContainerMountDir,
		HostPort:          DefaultHostPort,
		ContainerPort:     DefaultContainerPort,
		Env:               opts.Env,
	}

	if opts.Image != "" {
		cfg.Image = opts.Image
	}
	if opts.Tag != "" {
		cfg.Tag = opts.Tag
	}
	if opts.ContainerName != "" {
		cfg.ContainerName = opts.ContainerName
	}
	if opts.HostMountDir != "" {
		cfg.HostMountDir = opts.HostMountDir
	}
	if opts.HostPort != 0 {
		cfg.HostPort = opts.HostPort
	}

	cfg.Hostname = localHost + "-" + cfg.Image

	return cfg
}

// ImageRef returns the name:tag reference identifying the image in the
// runtime's image store.
func (c Config) ImageRef() string {
	return c.Image + ":" + c.Tag
}

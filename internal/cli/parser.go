package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrHelp signals that the caller should print usage text and exit 0.
var ErrHelp = errors.New("help requested")

// Args represents parsed command-line arguments.
type Args struct {
	// Requested actions
	Build  bool
	Clean  bool
	Run    bool
	Status bool

	// Configuration overrides (empty / zero means "use the default")
	Image         string
	ContainerName string
	Tag           string
	DetectDir     string
	HostPort      int

	// Extra container environment, KEY=VALUE entries
	Env []string
}

// Parse parses command-line arguments into an Args struct.
// osArgs is expected to include the program name at index 0.
func Parse(osArgs []string) (*Args, error) {
	if len(osArgs) <= 1 {
		return nil, errors.New("no arguments given")
	}

	// Help wins over everything else, including malformed flags.
	for _, arg := range osArgs[1:] {
		if arg == "-h" || arg == "--help" {
			return nil, ErrHelp
		}
	}

	args := &Args{Env: []string{}}

	i := 1 // Skip program name
	for i < len(osArgs) {
		arg := osArgs[i]

		switch arg {
		case "-b", "--build":
			args.Build = true
			i++

		case "-c", "--clean":
			args.Clean = true
			i++

		case "-r", "--run":
			args.Run = true
			i++

		case "--status":
			args.Status = true
			i++

		case "--image":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--image requires an argument")
			}
			args.Image = osArgs[i+1]
			i += 2

		case "--name":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--name requires an argument")
			}
			args.ContainerName = osArgs[i+1]
			i += 2

		case "--tag":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--tag requires an argument")
			}
			args.Tag = osArgs[i+1]
			i += 2

		case "--detect-dir":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--detect-dir requires a path argument")
			}
			args.DetectDir = osArgs[i+1]
			i += 2

		case "--port":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--port requires a port number")
			}
			port, err := strconv.Atoi(osArgs[i+1])
			if err != nil || port <= 0 || port > 65535 {
				return nil, fmt.Errorf("--port: invalid port number: %s", osArgs[i+1])
			}
			args.HostPort = port
			i += 2

		case "--env":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--env requires a KEY=VALUE argument")
			}
			if !strings.Contains(osArgs[i+1], "=") {
				return nil, fmt.Errorf("--env: expected KEY=VALUE, got: %s", osArgs[i+1])
			}
			args.Env = append(args.Env, osArgs[i+1])
			i += 2

		default:
			return nil, fmt.Errorf("unknown flag: %s", arg)
		}
	}

	if !args.Build && !args.Clean && !args.Run && !args.Status {
		return nil, errors.New("no action requested (use --build, --clean, --run or --status)")
	}

	return args, nil
}

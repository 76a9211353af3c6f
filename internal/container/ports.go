package container

import (
	"fmt"
	"os/exec"
	"strings"
)

// PortUser identifies a process already listening on a host port.
type PortUser struct {
	ProcessName string
	ProcessPID  string
}

// CheckPortInUse reports whether a host port currently has a listener.
func CheckPortInUse(port int) bool {
	cmd := exec.Command("lsof", "-i", fmt.Sprintf(":%d", port), "-sTCP:LISTEN")
	err := cmd.Run()
	return err == nil // If lsof succeeds, port is in use
}

// GetPortUser returns the process listening on a port, if it can be
// determined. The launch itself is still attempted either way; the daemon's
// bind failure is the authoritative error.
func GetPortUser(port int) (PortUser, bool) {
	cmd := exec.Command("lsof", "-i", fmt.Sprintf(":%d", port), "-sTCP:LISTEN", "-t")
	output, err := cmd.Output()
	if err != nil {
		return PortUser{}, false
	}

	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return PortUser{}, false
	}
	pid := lines[0]

	cmd = exec.Command("ps", "-p", pid, "-o", "comm=")
	output, err = cmd.Output()
	if err != nil {
		return PortUser{ProcessPID: pid}, true
	}

	return PortUser{
		ProcessName: strings.TrimSpace(string(output)),
		ProcessPID:  pid,
	}, true
}

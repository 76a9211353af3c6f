// Package container wraps the Docker SDK for the rteqc-api deployment
// lifecycle.
//
// The package provides four groups of operations:
//
// 1. Client (docker.go)
//   - SDK client construction with a daemon availability probe
//   - Image removal (best-effort clean) and image build from a tar'd
//     directory context, streaming the daemon's build output
//
// 2. Lifecycle (lifecycle.go)
//   - Detached container launch with name, hostname, port binding and
//     bind mount
//   - Container status inspection (running state, uptime)
//
// 3. Discovery (discover.go)
//   - Resolution of the host port the daemon actually bound, by
//     inspecting the container ID returned at launch
//
// 4. Ports (ports.go)
//   - Advisory host-port-in-use detection before launch
//
// Every operation is a blocking call against the daemon; the launched
// container itself is detached and never waited on.
package container

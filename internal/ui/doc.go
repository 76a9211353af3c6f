// Package ui provides terminal output formatting for rteqc-deploy.
//
// All operator-facing messages go to ui.Out (defaults to os.Stderr) so that
// the final access URL, printed to stdout by the dispatcher, stays
// machine-readable.
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui

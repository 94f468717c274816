// Package cli holds Wilder's command-line layer.
//
//   - cli/cmd: the cobra commands
//   - cli/helpers: stream and flag plumbing shared by commands
//   - cli/ui: terminal interaction (confirm, errorhandler)
package cli

// Package helpers provides common CLI utilities for command handling.
//
// Key functionality:
//   - IO stream resolution from a cobra command (CommandStreams)
//   - Binding cobra flags into viper under explicit keys (BindFlags)
//   - Working directory resolution (WorkingDir)
package helpers

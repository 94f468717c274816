// Package utils provides small utility packages used across Wilder:
//
//   - notify: formatted user-facing messages with symbols and colors
//   - logging: logrus diagnostics on stderr
package utils

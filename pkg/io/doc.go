// Package io provides input and output helpers for Wilder's own settings and records.
//
// Subpackages:
//   - configstore: the .wilderrc registry record
//   - options: settings from WILDER_* environment variables and flags
//
// The package itself holds small string helpers shared by both.
package io

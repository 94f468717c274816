// Package svc provides the service layer between the CLI commands and the clients.
//
// Subpackages:
//   - registryresolver: set-registry state machine plus current and reset
//   - pkgmanager: locating and running npm, pnpm or yarn with --registry prepended
package svc

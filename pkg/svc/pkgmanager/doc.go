// Package pkgmanager locates the wrapped package manager and runs it with the resolved registry.
//
// The child process inherits the standard streams directly, so interactive package manager
// commands keep working, and its exit code becomes Wilder's exit code through [ExitError].
package pkgmanager

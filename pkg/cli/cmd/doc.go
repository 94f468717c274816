// Package cmd provides the command-line interface for Wilder.
//
// The root command forwards everything it does not recognise to the package manager
// with --registry=<registry> prepended. It owns these commands:
//   - set-registry: validate, probe and save a registry to .wilderrc
//   - get-registry: print the registry in use
//   - reset-registry: remove .wilderrc and fall back to the default registry
//   - help: print Wilder's commands, then the package manager's help
package cmd

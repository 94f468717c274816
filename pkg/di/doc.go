// Package di wires Wilder's services with samber/do.
//
// NewRuntime registers providers for options, logging, the registry record store, the
// reachability prober, the registry resolver and the package manager glue. Commands add
// modules such as WithStreams or WithOptions to point those services at their own IO and
// flags, then resolve what they need through the Resolve* helpers.
package di

// Package client contains the network clients Wilder uses to talk to registries.
//
//   - probe: bounded HEAD reachability check
//   - netfail: short, human readable reasons for transport failures
package client

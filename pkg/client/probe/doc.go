// Package probe checks whether a registry URL is reachable.
//
// A [Prober] selects a [Transport] by URL scheme and performs a bounded HEAD request.
// Any response with a status in [200, 500) counts as reachable, so client errors such as
// 401 or 404 still prove the host is up and speaking HTTP. Server errors, transport
// failures and timeouts count as unreachable. Probing never returns an error.
package probe

// Package registryresolver answers which registry should be used and whether a new one is accepted.
//
// Setting a registry runs a small state machine:
//
//	Start -> Normalizing -> Probing -> {Accepted | AwaitingConsent} -> {Persisted | Cancelled}
//
// An invalid URL fails in Normalizing and nothing is persisted. A reachable URL is accepted
// and persisted immediately. An unreachable URL waits for operator consent: an affirmative
// answer persists it anyway, anything else cancels.
package registryresolver

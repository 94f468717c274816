package registryresolver

// State is a step of the set-registry state machine.
type State int

// Set-registry states.
const (
	StateStart State = iota
	StateNormalizing
	StateProbing
	StateAccepted
	StateAwaitingConsent
	StatePersisted
	StateCancelled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateNormalizing:
		return "Normalizing"
	case StateProbing:
		return "Probing"
	case StateAccepted:
		return "Accepted"
	case StateAwaitingConsent:
		return "AwaitingConsent"
	case StatePersisted:
		return "Persisted"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

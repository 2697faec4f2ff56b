package models

// CircuitBreakerState is the state of a circuit breaker guarding an external dependency
type CircuitBreakerState int

// String returns the state label
func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half-open"
	default:
		return "unknown"
	}
}

package ports

import "transport-tycoon/internal/domain"

// Boundary for publishing the leg event stream of a simulation.
type EventRecorder interface {
	// Record one departure or arrival. Events arrive in simulation order.
	Record(e domain.Event) error
}

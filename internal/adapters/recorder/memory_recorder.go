package recorder

import "transport-tycoon/internal/domain"

// In-memory EventRecorder that keeps every event in order.
type MemoryRecorder struct {
	events []domain.Event
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (m *MemoryRecorder) Record(e domain.Event) error {
	m.events = append(m.events, e)
	return nil
}

func (m *MemoryRecorder) Events() []domain.Event {
	out := make([]domain.Event, len(m.events))
	copy(out, m.events)
	return out
}

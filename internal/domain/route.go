package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidDuration = errors.New("route duration must be positive")

// Immutable directed edge between two points with a fixed transit time in ticks.
type Route struct {
	source      *Point
	destination *Point
	duration    int
}

func NewRoute(source, destination *Point, duration int) (*Route, error) {
	if source == nil || destination == nil {
		return nil, errors.New("new route: endpoints must be non-nil")
	}

	if duration < 1 {
		return nil, fmt.Errorf("new route %s->%s: duration=%d: %w", source.Name, destination.Name, duration, ErrInvalidDuration)
	}

	return &Route{source: source, destination: destination, duration: duration}, nil
}

func (r *Route) Source() *Point      { return r.source }
func (r *Route) Destination() *Point { return r.destination }
func (r *Route) Duration() int       { return r.duration }

// Return the same edge travelled the other way.
func (r *Route) Reverse() *Route {
	return &Route{source: r.destination, destination: r.source, duration: r.duration}
}

func (r *Route) String() string {
	return fmt.Sprintf("%s->%s(%d)", r.source.Name, r.destination.Name, r.duration)
}

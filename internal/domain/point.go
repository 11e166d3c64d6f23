package domain

import (
	"errors"
	"fmt"
)

var ErrEmptyQueue = errors.New("unload from empty queue")

// ArrivalFunc observes cargo accepted by a reactive point.
type ArrivalFunc func(p *Point, now int) error

// A location on the map holding a FIFO queue of cargo.
// A reactive point (the port) notifies its observers after every accepted unit.
type Point struct {
	Name     string
	reactive bool
	queue    []*Cargo
	arrival  []ArrivalFunc
}

func NewPoint(name string, cargo ...*Cargo) *Point {
	queue := make([]*Cargo, 0, len(cargo))
	queue = append(queue, cargo...)

	return &Point{Name: name, queue: queue}
}

func NewPort(name string) *Point {
	return &Point{Name: name, reactive: true}
}

func (p *Point) Reactive() bool { return p.reactive }

// Register an observer called on every accepted unit. Ignored unless the point is reactive.
func (p *Point) OnArrival(fn ArrivalFunc) {
	p.arrival = append(p.arrival, fn)
}

// Append cargo to the tail of the queue, then notify observers.
// Observers see the unit already queued and may unload it right away.
func (p *Point) Accept(c *Cargo, now int) error {
	p.queue = append(p.queue, c)

	if !p.reactive {
		return nil
	}

	for _, fn := range p.arrival {
		if err := fn(p, now); err != nil {
			return fmt.Errorf("accept at %s: %w", p.Name, err)
		}
	}

	return nil
}

// Remove and return the head of the queue.
// Callers check Size first; an empty queue means the bookkeeping is broken.
func (p *Point) Unload() (*Cargo, error) {
	if len(p.queue) == 0 {
		return nil, fmt.Errorf("unload at %s: %w", p.Name, ErrEmptyQueue)
	}

	c := p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]

	return c, nil
}

func (p *Point) Size() int { return len(p.queue) }

// Return a snapshot of the queue in FIFO order.
func (p *Point) Cargo() []*Cargo {
	out := make([]*Cargo, len(p.queue))
	copy(out, p.queue)
	return out
}

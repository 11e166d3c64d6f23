package services

import (
	"fmt"
	"transport-tycoon/internal/domain"
)

const (
	FactoryName = "FACTORY"
	PortName    = "PORT"
	TerminalA   = "A"
	TerminalB   = "B"
)

// Transit times of the three fixed routes, in ticks.
type Durations struct {
	FactoryToPort int
	PortToA       int
	FactoryToB    int
}

func DefaultDurations() Durations {
	return Durations{FactoryToPort: 1, PortToA: 4, FactoryToB: 5}
}

// Fleet sizes. Trucks serve the factory, ships serve the port.
type Fleet struct {
	Trucks int
	Ships  int
}

func DefaultFleet() Fleet {
	return Fleet{Trucks: 2, Ships: 1}
}

// The fixed five-node map: factory, port and the two terminals.
type topology struct {
	factory *domain.Point
	port    *domain.Point
	a       *domain.Point
	b       *domain.Point

	factoryToB    *domain.Route
	portToA       *domain.Route
	factoryToPort *domain.Route
}

func buildTopology(cargo []*domain.Cargo, d Durations) (*topology, error) {
	t := &topology{
		factory: domain.NewPoint(FactoryName, cargo...),
		port:    domain.NewPort(PortName),
		a:       domain.NewPoint(TerminalA),
		b:       domain.NewPoint(TerminalB),
	}

	var err error
	if t.factoryToB, err = domain.NewRoute(t.factory, t.b, d.FactoryToB); err != nil {
		return nil, fmt.Errorf("build topology: %w", err)
	}
	if t.portToA, err = domain.NewRoute(t.port, t.a, d.PortToA); err != nil {
		return nil, fmt.Errorf("build topology: %w", err)
	}
	if t.factoryToPort, err = domain.NewRoute(t.factory, t.port, d.FactoryToPort); err != nil {
		return nil, fmt.Errorf("build topology: %w", err)
	}

	return t, nil
}

// Route the factory dispatches a unit on for a requested destination.
func (t *topology) firstLeg(d domain.Destination) (*domain.Route, error) {
	switch d {
	case domain.DestinationA:
		return t.factoryToPort, nil
	case domain.DestinationB:
		return t.factoryToB, nil
	}

	return nil, fmt.Errorf("first leg for %q: %w", d, domain.ErrInvalidDestination)
}

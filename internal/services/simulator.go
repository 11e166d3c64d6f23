package services

import (
	"context"
	"errors"
	"fmt"
	"transport-tycoon/internal/domain"
	"transport-tycoon/internal/platform/obs"
	"transport-tycoon/internal/ports"

	"github.com/rs/xid"
	"go.uber.org/zap"
)

// ErrBookkeeping reports that the dispatch schedule and the cargo queues disagree.
var ErrBookkeeping = errors.New("dispatch bookkeeping mismatch")

type Options struct {
	Durations Durations
	Fleet     Fleet
	// Optional sink for DEPART/ARRIVE events.
	Recorder ports.EventRecorder
	Logger   *zap.SugaredLogger
}

func DefaultOptions() Options {
	return Options{Durations: DefaultDurations(), Fleet: DefaultFleet()}
}

// Zero fields fall back to defaults; negative values are left for validation.
func (o Options) withDefaults() Options {
	def := DefaultOptions()

	if o.Durations.FactoryToPort == 0 {
		o.Durations.FactoryToPort = def.Durations.FactoryToPort
	}
	if o.Durations.PortToA == 0 {
		o.Durations.PortToA = def.Durations.PortToA
	}
	if o.Durations.FactoryToB == 0 {
		o.Durations.FactoryToB = def.Durations.FactoryToB
	}
	if o.Fleet.Trucks == 0 {
		o.Fleet.Trucks = def.Fleet.Trucks
	}
	if o.Fleet.Ships == 0 {
		o.Fleet.Ships = def.Fleet.Ships
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}

	return o
}

// Outcome of a completed simulation run.
type Report struct {
	RunID string
	Ticks int
	// Cargo at each terminal in delivery order.
	DeliveredA []*domain.Cargo
	DeliveredB []*domain.Cargo
}

// Simulation owns the fixed map, the fleet and the clock of one run.
//
// Everything happens on the caller's goroutine: vehicles are ticked one after
// another and every observer runs to completion before the tick returns.
type Simulation struct {
	id   string
	topo *topology

	// First leg of every unit still waiting at the factory, in queue order.
	schedule []*domain.Route

	trucks []*domain.Vehicle
	ships  []*domain.Vehicle

	expectedA int
	expectedB int
	clock     int

	recorder ports.EventRecorder
	logger   *zap.SugaredLogger
}

// Build the map for the requested destination codes and arm the initial trucks.
// Every code is validated before any state is created.
func NewSimulation(codes []string, opts Options) (*Simulation, error) {
	dests := make([]domain.Destination, 0, len(codes))
	for i, code := range codes {
		d, err := domain.ParseDestination(code)
		if err != nil {
			return nil, fmt.Errorf("new simulation: request #%d: %w", i+1, err)
		}
		dests = append(dests, d)
	}

	opts = opts.withDefaults()
	if opts.Fleet.Trucks < 1 || opts.Fleet.Ships < 1 {
		return nil, fmt.Errorf("new simulation: fleet needs at least one truck and one ship (trucks=%d ships=%d)",
			opts.Fleet.Trucks, opts.Fleet.Ships)
	}

	cargo := make([]*domain.Cargo, 0, len(dests))
	for i, d := range dests {
		cargo = append(cargo, &domain.Cargo{ID: i, Origin: FactoryName, Destination: d})
	}

	topo, err := buildTopology(cargo, opts.Durations)
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	s := &Simulation{
		id:       xid.New().String(),
		topo:     topo,
		schedule: make([]*domain.Route, 0, len(dests)),
		recorder: opts.Recorder,
		logger:   opts.Logger,
	}

	for _, d := range dests {
		leg, err := topo.firstLeg(d)
		if err != nil {
			return nil, fmt.Errorf("new simulation: %w", err)
		}
		s.schedule = append(s.schedule, leg)

		switch d {
		case domain.DestinationA:
			s.expectedA++
		case domain.DestinationB:
			s.expectedB++
		}
	}

	id := 0
	for i := 0; i < opts.Fleet.Trucks; i++ {
		truck := domain.NewVehicle(id, domain.KindTruck)
		truck.OnFinished(s.replenishTruck)
		s.trucks = append(s.trucks, truck)
		id++
	}
	for i := 0; i < opts.Fleet.Ships; i++ {
		ship := domain.NewVehicle(id, domain.KindShip)
		ship.OnFinished(s.replenishShip)
		s.ships = append(s.ships, ship)
		id++
	}
	if s.recorder != nil {
		for _, v := range s.vehicles() {
			v.OnEvent(s.recorder.Record)
		}
	}

	topo.port.OnArrival(s.dispatchShips)

	for _, truck := range s.trucks {
		if topo.factory.Size() == 0 {
			break
		}
		if err := s.loadTruck(truck, 0); err != nil {
			return nil, fmt.Errorf("new simulation: %w", err)
		}
	}

	return s, nil
}

func (s *Simulation) ID() string { return s.id }

// Ticks elapsed so far.
func (s *Simulation) Clock() int { return s.clock }

func (s *Simulation) vehicles() []*domain.Vehicle {
	out := make([]*domain.Vehicle, 0, len(s.trucks)+len(s.ships))
	out = append(out, s.trucks...)
	return append(out, s.ships...)
}

// Both terminals hold exactly the cargo requested for them.
func (s *Simulation) Done() bool {
	return s.topo.a.Size() == s.expectedA && s.topo.b.Size() == s.expectedB
}

// Advance the clock by one tick: all trucks first, then all ships.
func (s *Simulation) Step() error {
	s.clock++

	for _, v := range s.vehicles() {
		if err := v.Tick(s.clock); err != nil {
			return fmt.Errorf("step %d: %w", s.clock, err)
		}
	}

	return nil
}

// Step until every unit reached its terminal.
// ctx is only consulted between steps; a valid request always terminates.
func (s *Simulation) Run(ctx context.Context) (_ *Report, err error) {
	ctx = obs.WithRunID(ctx, s.id)
	defer obs.Time(ctx, s.logger, "simulation.Run")(&err)

	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run simulation at tick %d: %w", s.clock, err)
		}
		if err := s.Step(); err != nil {
			return nil, fmt.Errorf("run simulation: %w", err)
		}
	}

	s.logger.Infow("simulation finished",
		"run_id", s.id,
		"ticks", s.clock,
		"delivered_a", s.expectedA,
		"delivered_b", s.expectedB,
	)

	return &Report{
		RunID:      s.id,
		Ticks:      s.clock,
		DeliveredA: s.topo.a.Cargo(),
		DeliveredB: s.topo.b.Cargo(),
	}, nil
}

// Run a full simulation for the requested destination codes.
func Simulate(ctx context.Context, codes []string, opts Options) (*Report, error) {
	sim, err := NewSimulation(codes, opts)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	report, err := sim.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	return report, nil
}

// Return the number of ticks needed to deliver every requested unit.
func Calculate(ctx context.Context, codes []string, opts Options) (int, error) {
	report, err := Simulate(ctx, codes, opts)
	if err != nil {
		return 0, err
	}

	return report.Ticks, nil
}

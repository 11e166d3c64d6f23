package domain

import "fmt"

type VehicleKind string

const (
	KindTruck VehicleKind = "TRUCK"
	KindShip  VehicleKind = "SHIP"
)

type VehicleState int

const (
	StateIdle VehicleState = iota
	StateOutbound
	StateReturning
)

func (s VehicleState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOutbound:
		return "outbound"
	case StateReturning:
		return "returning"
	default:
		return fmt.Sprintf("VehicleState(%d)", int(s))
	}
}

// FinishedFunc observes a vehicle that came back empty to the start of its last leg.
type FinishedFunc func(v *Vehicle, now int) error

// EventFunc observes departures and arrivals of a vehicle.
type EventFunc func(e Event) error

// Transport state machine advanced one tick at a time.
//
// A vehicle carries at most one unit outbound, unloads it on arrival and returns
// empty over the reversed route within the same tick. When the return leg completes
// it parks and notifies its finished observers, which may arm it again.
type Vehicle struct {
	ID   int
	Kind VehicleKind

	route   *Route
	cargo   *Cargo
	elapsed int
	armedAt int

	finished []FinishedFunc
	events   []EventFunc
}

func NewVehicle(id int, kind VehicleKind) *Vehicle {
	return &Vehicle{ID: id, Kind: kind}
}

func (v *Vehicle) OnFinished(fn FinishedFunc) { v.finished = append(v.finished, fn) }
func (v *Vehicle) OnEvent(fn EventFunc)       { v.events = append(v.events, fn) }

func (v *Vehicle) Route() *Route { return v.route }
func (v *Vehicle) Cargo() *Cargo { return v.cargo }

// Ticks counted against the current leg.
func (v *Vehicle) Elapsed() int { return v.elapsed }

func (v *Vehicle) IsFree() bool { return v.route == nil && v.cargo == nil }

func (v *Vehicle) State() VehicleState {
	switch {
	case v.route == nil:
		return StateIdle
	case v.cargo != nil:
		return StateOutbound
	default:
		return StateReturning
	}
}

// Arm a new leg departing at tick now. The first tick counted against it is now+1.
func (v *Vehicle) Assign(route *Route, cargo *Cargo, now int) error {
	if route == nil {
		return fmt.Errorf("assign vehicle %d: route must be non-nil", v.ID)
	}

	v.route = route
	v.cargo = cargo
	v.elapsed = 0
	v.armedAt = now

	var load []*Cargo
	if cargo != nil {
		load = []*Cargo{cargo}
	}

	return v.emit(Event{
		Kind:        EventDepart,
		Time:        now,
		Location:    route.Source().Name,
		Destination: route.Destination().Name,
		Cargo:       load,
	})
}

// Leave the vehicle idle with no route and no cargo.
func (v *Vehicle) Park() {
	v.route = nil
	v.cargo = nil
	v.elapsed = 0
}

// Advance the vehicle by one tick of simulated time.
func (v *Vehicle) Tick(now int) error {
	if v.route == nil || now <= v.armedAt {
		return nil
	}

	v.elapsed++
	if v.elapsed != v.route.Duration() {
		return nil
	}

	if v.cargo == nil {
		return v.finish(now)
	}

	return v.deliver(now)
}

func (v *Vehicle) finish(now int) error {
	if err := v.emitArrive(now, nil); err != nil {
		return err
	}

	v.Park()

	for _, fn := range v.finished {
		if err := fn(v, now); err != nil {
			return fmt.Errorf("vehicle %d finished: %w", v.ID, err)
		}
	}

	return nil
}

// Hand the cargo to the destination and start the empty return leg.
func (v *Vehicle) deliver(now int) error {
	route := v.route
	cargo := v.cargo

	if err := v.emitArrive(now, cargo); err != nil {
		return err
	}

	if err := route.Destination().Accept(cargo, now); err != nil {
		return fmt.Errorf("vehicle %d deliver cargo %d: %w", v.ID, cargo.ID, err)
	}
	v.cargo = nil

	return v.Assign(route.Reverse(), nil, now)
}

func (v *Vehicle) emitArrive(now int, cargo *Cargo) error {
	var load []*Cargo
	if cargo != nil {
		load = []*Cargo{cargo}
	}

	return v.emit(Event{
		Kind:     EventArrive,
		Time:     now,
		Location: v.route.Destination().Name,
		Cargo:    load,
	})
}

func (v *Vehicle) emit(e Event) error {
	e.VehicleID = v.ID
	e.VehicleKind = v.Kind

	for _, fn := range v.events {
		if err := fn(e); err != nil {
			return fmt.Errorf("vehicle %d %s event: %w", v.ID, e.Kind, err)
		}
	}

	return nil
}

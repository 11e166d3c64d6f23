package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeg(t *testing.T, duration int) (*Point, *Point, *Route) {
	t.Helper()

	src := NewPoint("FACTORY")
	dst := NewPoint("B")
	r, err := NewRoute(src, dst, duration)
	require.NoError(t, err)

	return src, dst, r
}

func TestVehicleIdleTickIsNoop(t *testing.T) {
	v := NewVehicle(0, KindShip)

	for now := 1; now <= 10; now++ {
		require.NoError(t, v.Tick(now))
	}

	assert.True(t, v.IsFree())
	assert.Equal(t, StateIdle, v.State())
	assert.Equal(t, 0, v.Elapsed())
}

func TestVehicleDeliversAndReturns(t *testing.T) {
	_, dst, r := newLeg(t, 2)
	v := NewVehicle(1, KindTruck)
	cargo := &Cargo{ID: 5}
	require.NoError(t, v.Assign(r, cargo, 0))
	assert.Equal(t, StateOutbound, v.State())

	require.NoError(t, v.Tick(1))
	assert.Equal(t, 1, v.Elapsed())
	assert.Equal(t, 0, dst.Size())

	// Arrival unloads and re-arms for the way back within the same tick.
	require.NoError(t, v.Tick(2))
	assert.Equal(t, 1, dst.Size())
	assert.Equal(t, StateReturning, v.State())
	assert.Equal(t, 0, v.Elapsed())
	assert.Same(t, dst, v.Route().Source())
	assert.Nil(t, v.Cargo())
}

func TestVehicleFinishedFiresOnceAndStaysIdle(t *testing.T) {
	_, _, r := newLeg(t, 1)
	v := NewVehicle(1, KindTruck)
	require.NoError(t, v.Assign(r, &Cargo{}, 0))

	finished := 0
	v.OnFinished(func(got *Vehicle, now int) error {
		finished++
		assert.Same(t, v, got)
		assert.Equal(t, 2, now)
		assert.True(t, got.IsFree())
		return nil
	})

	for now := 1; now <= 20; now++ {
		require.NoError(t, v.Tick(now))
	}

	assert.Equal(t, 1, finished)
	assert.True(t, v.IsFree())
}

func TestVehicleRearmedByObserverStartsNextTick(t *testing.T) {
	src, dst, r := newLeg(t, 1)
	v := NewVehicle(1, KindTruck)
	require.NoError(t, v.Assign(r, &Cargo{ID: 1}, 0))

	rearmed := false
	v.OnFinished(func(got *Vehicle, now int) error {
		if rearmed {
			return nil
		}
		rearmed = true
		return got.Assign(r, &Cargo{ID: 2}, now)
	})

	require.NoError(t, v.Tick(1)) // at B
	require.NoError(t, v.Tick(2)) // back at FACTORY, re-armed
	assert.Equal(t, StateOutbound, v.State())
	assert.Equal(t, 0, v.Elapsed())

	require.NoError(t, v.Tick(3))
	assert.Equal(t, 2, dst.Size())
	assert.Equal(t, 0, src.Size())
}

func TestVehicleArmedMidStepWaitsForNextStep(t *testing.T) {
	_, _, r := newLeg(t, 4)
	v := NewVehicle(0, KindShip)

	require.NoError(t, v.Assign(r, &Cargo{}, 3))
	require.NoError(t, v.Tick(3))
	assert.Equal(t, 0, v.Elapsed())

	require.NoError(t, v.Tick(4))
	assert.Equal(t, 1, v.Elapsed())
}

func TestVehicleEmitsLegEvents(t *testing.T) {
	_, _, r := newLeg(t, 1)
	v := NewVehicle(3, KindTruck)

	var events []Event
	v.OnEvent(func(e Event) error {
		events = append(events, e)
		return nil
	})

	cargo := &Cargo{ID: 0, Origin: "FACTORY", Destination: DestinationB}
	require.NoError(t, v.Assign(r, cargo, 0))
	require.NoError(t, v.Tick(1))
	require.NoError(t, v.Tick(2))

	require.Len(t, events, 4)
	assert.Equal(t, Event{Kind: EventDepart, Time: 0, VehicleID: 3, VehicleKind: KindTruck, Location: "FACTORY", Destination: "B", Cargo: []*Cargo{cargo}}, events[0])
	assert.Equal(t, Event{Kind: EventArrive, Time: 1, VehicleID: 3, VehicleKind: KindTruck, Location: "B", Cargo: []*Cargo{cargo}}, events[1])
	assert.Equal(t, Event{Kind: EventDepart, Time: 1, VehicleID: 3, VehicleKind: KindTruck, Location: "B", Destination: "FACTORY"}, events[2])
	assert.Equal(t, Event{Kind: EventArrive, Time: 2, VehicleID: 3, VehicleKind: KindTruck, Location: "FACTORY"}, events[3])
}

func TestVehicleKeepsCargoWhenArrivalFails(t *testing.T) {
	_, dst, r := newLeg(t, 1)
	v := NewVehicle(1, KindTruck)
	cargo := &Cargo{ID: 9}
	require.NoError(t, v.Assign(r, cargo, 0))

	boom := errors.New("recorder down")
	v.OnEvent(func(e Event) error {
		if e.Kind == EventArrive {
			return boom
		}
		return nil
	})

	err := v.Tick(1)
	require.ErrorIs(t, err, boom)
	assert.Same(t, cargo, v.Cargo())
	assert.Equal(t, 0, dst.Size())
}

package services

import (
	"fmt"
	"transport-tycoon/internal/domain"
)

// Re-arm a truck that came back to the factory with the next scheduled unit.
// With nothing left to ship the truck stays parked for good.
func (s *Simulation) replenishTruck(truck *domain.Vehicle, now int) error {
	if s.topo.factory.Size() == 0 {
		if len(s.schedule) != 0 {
			return fmt.Errorf(
				"replenish truck %d: %d routes scheduled for an empty factory: %w",
				truck.ID, len(s.schedule), ErrBookkeeping,
			)
		}

		s.logger.Debugw("truck parked", "truck_id", truck.ID, "tick", now)
		return nil
	}

	return s.loadTruck(truck, now)
}

func (s *Simulation) loadTruck(truck *domain.Vehicle, now int) error {
	if len(s.schedule) == 0 {
		return fmt.Errorf(
			"load truck %d: factory holds %d units but the schedule is empty: %w",
			truck.ID, s.topo.factory.Size(), ErrBookkeeping,
		)
	}

	route := s.schedule[0]
	s.schedule = s.schedule[1:]

	cargo, err := s.topo.factory.Unload()
	if err != nil {
		return fmt.Errorf("load truck %d: %w", truck.ID, err)
	}

	return truck.Assign(route, cargo, now)
}

// Re-arm a ship that came back to the port if cargo is waiting there.
func (s *Simulation) replenishShip(ship *domain.Vehicle, now int) error {
	if s.topo.port.Size() == 0 {
		s.logger.Debugw("ship parked", "ship_id", ship.ID, "tick", now)
		return nil
	}

	return s.loadShip(ship, now)
}

// Drain the port into every free ship as soon as cargo lands there.
func (s *Simulation) dispatchShips(port *domain.Point, now int) error {
	for _, ship := range s.ships {
		if port.Size() == 0 {
			break
		}
		if !ship.IsFree() {
			continue
		}

		if err := s.loadShip(ship, now); err != nil {
			return fmt.Errorf("dispatch ships: %w", err)
		}
	}

	return nil
}

func (s *Simulation) loadShip(ship *domain.Vehicle, now int) error {
	cargo, err := s.topo.port.Unload()
	if err != nil {
		return fmt.Errorf("load ship %d: %w", ship.ID, err)
	}

	return ship.Assign(s.topo.portToA, cargo, now)
}

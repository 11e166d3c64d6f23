package domain

type EventKind string

const (
	EventDepart EventKind = "DEPART"
	EventArrive EventKind = "ARRIVE"
)

// Represents one end of a leg travelled by a vehicle.
// DEPART is stamped with the tick the leg was armed, ARRIVE with the tick it completed.
type Event struct {
	Kind        EventKind
	Time        int
	VehicleID   int
	VehicleKind VehicleKind
	Location    string
	Destination string
	Cargo       []*Cargo
}

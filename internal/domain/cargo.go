package domain

// Represents a single unit of freight moved through the network.
// Cargo has no behavior; ID records creation order so deliveries can be traced.
type Cargo struct {
	ID          int
	Origin      string
	Destination Destination
}

package config

import "transport-tycoon/internal/services"

// Translate the loaded settings into simulation options.
func (c Config) SimulationOptions() services.Options {
	return services.Options{
		Durations: services.Durations{
			FactoryToPort: c.FactoryToPortTicks,
			PortToA:       c.PortToATicks,
			FactoryToB:    c.FactoryToBTicks,
		},
		Fleet: services.Fleet{
			Trucks: c.TruckCount,
			Ships:  c.ShipCount,
		},
	}
}

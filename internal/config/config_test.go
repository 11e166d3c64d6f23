package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "FACTORY_TO_PORT_TICKS", "PORT_TO_A_TICKS", "FACTORY_TO_B_TICKS", "TRUCK_COUNT", "SHIP_COUNT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:               "8080",
		LogLevel:           "info",
		FactoryToPortTicks: 1,
		PortToATicks:       4,
		FactoryToBTicks:    5,
		TruckCount:         2,
		ShipCount:          1,
	}, cfg)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT_TO_A_TICKS", " 6 ")
	t.Setenv("SHIP_COUNT", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.PortToATicks)
	assert.Equal(t, 3, cfg.ShipCount)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("TRUCK_COUNT", "two")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TRUCK_COUNT", "0")
	_, err = Load()
	assert.Error(t, err)
}

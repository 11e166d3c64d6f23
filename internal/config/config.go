package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Runtime settings shared by the CLI and the server.
type Config struct {
	Port     string
	LogLevel string

	FactoryToPortTicks int
	PortToATicks       int
	FactoryToBTicks    int

	TruckCount int
	ShipCount  int
}

// Return the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}

// Load reads the configuration from the environment.
// Callers load .env beforehand with godotenv.
func Load() (Config, error) {
	cfg := Config{
		Port:     Get("PORT", "8080"),
		LogLevel: Get("LOG_LEVEL", "info"),
	}

	ints := []struct {
		key      string
		fallback int
		dst      *int
	}{
		{"FACTORY_TO_PORT_TICKS", 1, &cfg.FactoryToPortTicks},
		{"PORT_TO_A_TICKS", 4, &cfg.PortToATicks},
		{"FACTORY_TO_B_TICKS", 5, &cfg.FactoryToBTicks},
		{"TRUCK_COUNT", 2, &cfg.TruckCount},
		{"SHIP_COUNT", 1, &cfg.ShipCount},
	}

	for _, it := range ints {
		n, err := GetInt(it.key, it.fallback)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if n < 1 {
			return Config{}, fmt.Errorf("load config: %s must be positive, got %d", it.key, n)
		}
		*it.dst = n
	}

	return cfg, nil
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDestination = errors.New("invalid destination")

// Destination is a requested final delivery code.
type Destination string

const (
	DestinationA Destination = "A"
	DestinationB Destination = "B"
)

// Parse a single destination code (case-insensitive).
func ParseDestination(code string) (Destination, error) {
	d := Destination(strings.ToUpper(strings.TrimSpace(code)))
	switch d {
	case DestinationA, DestinationB:
		return d, nil
	}

	return "", fmt.Errorf("parse destination: code %q: %w", code, ErrInvalidDestination)
}

// Parse an input line where every character is one destination code.
// Only the surrounding whitespace of the line is ignored.
func ParseDestinations(line string) ([]Destination, error) {
	line = strings.TrimSpace(line)

	out := make([]Destination, 0, len(line))
	for _, r := range line {
		d, err := ParseDestination(string(r))
		if err != nil {
			return nil, fmt.Errorf("parse destinations: character %d: %w", len(out)+1, err)
		}
		out = append(out, d)
	}

	return out, nil
}

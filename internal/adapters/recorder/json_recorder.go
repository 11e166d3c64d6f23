package recorder

import (
	"encoding/json"
	"fmt"
	"io"
	"transport-tycoon/internal/domain"
)

type CargoRecord struct {
	CargoID     int    `json:"cargo_id"`
	Destination string `json:"destination"`
	Origin      string `json:"origin"`
}

// Wire shape of one event line.
type EventRecord struct {
	Event       string        `json:"event"`
	Time        int           `json:"time"`
	TransportID int           `json:"transport_id"`
	Kind        string        `json:"kind"`
	Location    string        `json:"location"`
	Destination string        `json:"destination,omitempty"`
	Cargo       []CargoRecord `json:"cargo,omitempty"`
}

func ToRecord(e domain.Event) EventRecord {
	rec := EventRecord{
		Event:       string(e.Kind),
		Time:        e.Time,
		TransportID: e.VehicleID,
		Kind:        string(e.VehicleKind),
		Location:    e.Location,
		Destination: e.Destination,
	}

	for _, c := range e.Cargo {
		rec.Cargo = append(rec.Cargo, CargoRecord{
			CargoID:     c.ID,
			Destination: string(c.Destination),
			Origin:      c.Origin,
		})
	}

	return rec
}

// Writes one JSON object per event line.
type JSONRecorder struct {
	enc *json.Encoder
}

func NewJSONRecorder(w io.Writer) *JSONRecorder {
	return &JSONRecorder{enc: json.NewEncoder(w)}
}

func (j *JSONRecorder) Record(e domain.Event) error {
	if err := j.enc.Encode(ToRecord(e)); err != nil {
		return fmt.Errorf("json recorder: encode %s at %d: %w", e.Kind, e.Time, err)
	}
	return nil
}

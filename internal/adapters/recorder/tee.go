package recorder

import (
	"transport-tycoon/internal/domain"
	"transport-tycoon/internal/ports"
)

type tee []ports.EventRecorder

// Fan events out to several recorders in order. Nil recorders are skipped.
func Tee(recorders ...ports.EventRecorder) ports.EventRecorder {
	out := make(tee, 0, len(recorders))
	for _, r := range recorders {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (t tee) Record(e domain.Event) error {
	for _, r := range t {
		if err := r.Record(e); err != nil {
			return err
		}
	}
	return nil
}

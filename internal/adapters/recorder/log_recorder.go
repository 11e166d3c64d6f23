package recorder

import (
	"transport-tycoon/internal/domain"

	"go.uber.org/zap"
)

// Logs every event at debug level.
type LogRecorder struct {
	logger *zap.SugaredLogger
}

func NewLogRecorder(logger *zap.SugaredLogger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (l *LogRecorder) Record(e domain.Event) error {
	ids := make([]int, 0, len(e.Cargo))
	for _, c := range e.Cargo {
		ids = append(ids, c.ID)
	}

	l.logger.Debugw("leg event",
		"event", e.Kind,
		"tick", e.Time,
		"vehicle_id", e.VehicleID,
		"kind", e.VehicleKind,
		"location", e.Location,
		"destination", e.Destination,
		"cargo_ids", ids,
	)
	return nil
}

package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RunIDKey ctxKey = "run_id"

func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RunIDKey, id)
}

// Time returns a func to defer that logs how long the named operation took.
func Time(ctx context.Context, logger *zap.SugaredLogger, name string) func(errp *error) {
	start := time.Now()

	runID, _ := ctx.Value(RunIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warnw("op failed", "run_id", runID, "op", name, "dur", dur, "err", *errp)
			return
		}
		logger.Debugw("op done", "run_id", runID, "op", name, "dur", dur)
	}
}

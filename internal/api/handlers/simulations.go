package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"transport-tycoon/internal/adapters/recorder"
	"transport-tycoon/internal/api/dto"
	"transport-tycoon/internal/domain"
	"transport-tycoon/internal/ports"
	"transport-tycoon/internal/services"

	"go.uber.org/zap"
)

// Each request gets its own simulation; nothing is shared between runs.
type SimulationHandler struct {
	Options services.Options
	Logger  *zap.SugaredLogger
}

// Run simulates the requested destinations and returns the tick count.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req dto.SimulationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		WriteError(w, r, h.Logger, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		WriteError(w, r, h.Logger, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	dests, err := domain.ParseDestinations(req.Destinations)
	if err != nil {
		WriteError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}

	codes := make([]string, 0, len(dests))
	for _, d := range dests {
		codes = append(codes, string(d))
	}

	opts := h.Options
	opts.Logger = h.Logger

	var mem *recorder.MemoryRecorder
	recorders := []ports.EventRecorder{recorder.NewLogRecorder(h.Logger)}
	if req.IncludeEvents {
		mem = recorder.NewMemoryRecorder()
		recorders = append(recorders, mem)
	}
	opts.Recorder = recorder.Tee(recorders...)

	report, err := services.Simulate(r.Context(), codes, opts)
	if err != nil {
		h.Logger.Errorw("simulation failed", "destinations", strings.Join(codes, ""), "err", err)
		if errors.Is(err, domain.ErrInvalidDestination) || errors.Is(err, domain.ErrInvalidDuration) {
			WriteError(w, r, h.Logger, http.StatusBadRequest, err.Error())
			return
		}
		WriteError(w, r, h.Logger, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.SimulationResponse{
		RunID: report.RunID,
		Ticks: report.Ticks,
		Delivered: map[string][]int{
			services.TerminalA: cargoIDs(report.DeliveredA),
			services.TerminalB: cargoIDs(report.DeliveredB),
		},
	}
	if mem != nil {
		for _, e := range mem.Events() {
			res.Events = append(res.Events, recorder.ToRecord(e))
		}
	}

	writeJSON(w, r, h.Logger, http.StatusOK, res)
}

func cargoIDs(cargo []*domain.Cargo) []int {
	ids := make([]int, 0, len(cargo))
	for _, c := range cargo {
		ids = append(ids, c.ID)
	}
	return ids
}

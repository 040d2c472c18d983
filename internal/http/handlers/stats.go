package handlers

import (
	"net/http"

	"github.com/tinashecee/lab-center-request/internal/logx"
)

// StatsHandlers serves the request aggregates endpoint.
type StatsHandlers struct {
	usecase statsUsecase
	logger  logx.Logger
}

// NewStatsHandlers creates StatsHandlers.
func NewStatsHandlers(usecase statsUsecase, logger logx.Logger) *StatsHandlers {
	return &StatsHandlers{usecase: usecase, logger: logger}
}

// Summary handles GET /stats.
func (h *StatsHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	stats, err := h.usecase.Stats(r.Context())
	if err != nil {
		h.logger.Error("stats usecase error",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toStatsDTO(stats))
}

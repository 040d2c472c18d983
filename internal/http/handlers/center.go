package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tinashecee/lab-center-request/internal/apperr"
	"github.com/tinashecee/lab-center-request/internal/logx"
)

// CenterHandlers serves the center directory endpoints.
type CenterHandlers struct {
	usecase centerUsecase
	logger  logx.Logger
}

// NewCenterHandlers creates CenterHandlers.
func NewCenterHandlers(usecase centerUsecase, logger logx.Logger) *CenterHandlers {
	return &CenterHandlers{usecase: usecase, logger: logger}
}

// Get handles GET /centers/{id}.
func (h *CenterHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := h.usecase.GetCenter(r.Context(), id)
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid center id")
		return
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "center not found")
		return
	default:
		h.logger.Error("center usecase error",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toCenterDTO(c))
}

// List handles GET /centers.
func (h *CenterHandlers) List(w http.ResponseWriter, r *http.Request) {
	centers, err := h.usecase.ListCenters(r.Context())
	if err != nil {
		h.logger.Error("center usecase error",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toCenterDTOs(centers))
}

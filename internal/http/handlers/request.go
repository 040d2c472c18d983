package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tinashecee/lab-center-request/internal/apperr"
	"github.com/tinashecee/lab-center-request/internal/domain"
	"github.com/tinashecee/lab-center-request/internal/logx"
)

// RequestHandlers serves the collection-request endpoints.
type RequestHandlers struct {
	usecase requestUsecase
	logger  logx.Logger
}

// NewRequestHandlers creates RequestHandlers.
func NewRequestHandlers(usecase requestUsecase, logger logx.Logger) *RequestHandlers {
	return &RequestHandlers{usecase: usecase, logger: logger}
}

func (h *RequestHandlers) writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid request")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "request not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "conflict")
	default:
		h.logger.Error("request usecase error",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Create handles POST /requests.
func (h *RequestHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var dto createRequestDTO
	if !decodeJSON(h.logger, w, r, &dto) {
		return
	}

	id, err := h.usecase.CreateRequest(r.Context(), toNewRequestData(dto))
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, createdDTO{ID: id})
}

// Get handles GET /requests/{id}.
func (h *RequestHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toRequestDTO(req))
}

// List handles GET /requests filtered by center_id or center_name.
func (h *RequestHandlers) List(w http.ResponseWriter, r *http.Request) {
	var (
		reqs []domain.CollectionRequest
		err  error
	)

	query := r.URL.Query()
	switch {
	case query.Get("center_id") != "":
		reqs, err = h.usecase.ListByCenterID(r.Context(), query.Get("center_id"))
	case query.Get("center_name") != "":
		reqs, err = h.usecase.ListByCenterName(r.Context(), query.Get("center_name"))
	default:
		writeError(h.logger, w, r, http.StatusBadRequest, "center_id or center_name query parameter is required")
		return
	}
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toRequestDTOs(reqs))
}

// UpdateStatus handles PATCH /requests/{id}/status.
func (h *RequestHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto updateStatusDTO
	if !decodeJSON(h.logger, w, r, &dto) {
		return
	}

	status := domain.NormalizeStatus(dto.Status)
	if err := h.usecase.UpdateStatus(r.Context(), id, status); err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]string{
		"id":     id,
		"status": string(status),
	})
}

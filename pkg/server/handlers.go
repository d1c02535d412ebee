package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/dedekind/pkg/classify"
	"github.com/matzehuels/dedekind/pkg/errors"
	"github.com/matzehuels/dedekind/pkg/group"
	"github.com/matzehuels/dedekind/pkg/report"
)

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

func (w *WebAPI) handleHealth(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Set("Content-Type", "application/json")
	_, _ = rw.Write([]byte(`{"status":"ok"}` + "\n"))
}

// handleReport analyzes the group named by the descriptor path segment,
// e.g. GET /api/v1/report/q8xc2. The refresh query parameter bypasses the
// report cache.
func (w *WebAPI) handleReport(rw http.ResponseWriter, r *http.Request) {
	descriptor := chi.URLParam(r, "descriptor")

	g, err := group.FromDescriptor(descriptor)
	if err != nil {
		w.writeError(rw, err)
		return
	}

	opts := w.opts
	if r.URL.Query().Get("refresh") == "true" {
		opts.Refresh = true
	}

	res, err := w.runner.Analyze(r.Context(), g, opts)
	if err != nil {
		w.writeError(rw, err)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	if err := report.WriteJSON(rw, res); err != nil {
		w.logger.Error("write response failed", "error", err)
	}
}

// handleCatalog lists the recognized non-abelian groups.
func (w *WebAPI) handleCatalog(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Set("Content-Type", "application/json")
	if err := report.WriteJSON(rw, classify.Catalog()); err != nil {
		w.logger.Error("write response failed", "error", err)
	}
}

func (w *WebAPI) writeError(rw http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		w.logger.Error("request failed", "code", code, "error", err)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_ = report.WriteJSON(rw, errorResponse{Error: errors.UserMessage(err), Code: code})
}

// statusFor maps domain error codes to HTTP statuses.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidArgument,
		errors.ErrCodeInvalidOrder,
		errors.ErrCodeInvalidTable,
		errors.ErrCodeInvalidDescriptor,
		errors.ErrCodeInvalidManifest,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeIntegrityViolation:
		return http.StatusBadRequest
	case errors.ErrCodeResourceExceeded:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

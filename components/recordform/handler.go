package recordform

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/goliatone/go-adminforms/pkg/backend"
	"github.com/goliatone/go-adminforms/pkg/orchestrator"
)

type handler struct {
	opts Options
}

// handleForm serves the derived form definition for a collection, encoded in
// the requested export format.
func (h handler) handleForm(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	definition, err := h.opts.Pipeline.Definition(r.Context(), collection)
	if err != nil {
		h.opts.Logger.Warn("form definition failed",
			zap.String("collection", collection), zap.Error(err))
		writeError(w, http.StatusBadGateway, "schema unavailable")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = h.opts.DefaultFormat
	}
	encoder, err := h.opts.Encoders.Get(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown format "+format)
		return
	}

	payload, err := encoder.Encode(definition)
	if err != nil {
		h.opts.Logger.Error("encode form definition failed",
			zap.String("collection", collection), zap.String("format", format), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "encoding failed")
		return
	}

	w.Header().Set("Content-Type", encoder.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// handleCreate validates and submits a new record. Validation failures come
// back as 422 with the violation list; the record is stored only when clean.
func (h handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	data, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	record, err := h.opts.Pipeline.Create(r.Context(), collection, data)
	if err != nil {
		h.writeSubmitError(w, collection, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// handleUpdate validates and submits changes to an existing record.
func (h handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	data, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	record, err := h.opts.Pipeline.Update(r.Context(), collection, id, data)
	if err != nil {
		h.writeSubmitError(w, collection, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h handler) writeSubmitError(w http.ResponseWriter, collection string, err error) {
	var validationErr *orchestrator.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"violations": validationErr.Violations,
		})
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		writeError(w, apiErr.Status, apiErr.Message)
		return
	}

	h.opts.Logger.Error("record submission failed",
		zap.String("collection", collection), zap.Error(err))
	writeError(w, http.StatusBadGateway, "submission failed")
}

func decodeRecord(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	return data, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message, "code": status})
}

package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/mediashelf/mediashelf/internal/models"
	"github.com/mediashelf/mediashelf/internal/ports"
)

type MediaHandler struct {
	catalog ports.CatalogService
	log     *logger.ZapLogger
}

func NewMediaHandler(catalog ports.CatalogService, log *logger.ZapLogger) *MediaHandler {
	return &MediaHandler{
		catalog: catalog,
		log:     log,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// GET /media
func (h *MediaHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalog.ListAll(r.Context())
	if err != nil {
		h.logError("list media failed", err)
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}

// GET /media/category/{category}
func (h *MediaHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	filtered, err := h.catalog.ListByCategory(r.Context(), category)
	if err != nil {
		h.logError("filter media failed", err)
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	writeJSON(w, http.StatusOK, filtered)
}

// GET /media/search/{name}
func (h *MediaHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	matched, err := h.catalog.SearchByName(r.Context(), name)
	if err != nil {
		h.logError("search media failed", err)
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	writeJSON(w, http.StatusOK, matched)
}

// GET /media/details/{id}
func (h *MediaHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	media, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.logError("get media failed", err)
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	writeJSON(w, http.StatusOK, media)
}

// POST /media/create
func (h *MediaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	media, err := h.catalog.Create(r.Context(), req)
	if err != nil {
		var vErr *ports.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, "Missing field: "+vErr.Field)
			return
		}
		if errors.Is(err, ports.ErrAlreadyExists) {
			writeError(w, http.StatusConflict, "Item already exists")
			return
		}
		h.logError("create media failed", err)
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "media created",
		Fields: map[string]any{
			"id":       media.ID,
			"name":     media.Name,
			"category": media.Category,
		},
	})

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":    media.ID,
		"media": media,
	})
}

// DELETE /media/delete/{id}
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.logError("delete media failed", err)
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "media deleted",
		Fields:  map[string]any{"id": id},
	})

	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (h *MediaHandler) logError(msg string, err error) {
	h.log.Log(logger.LogEntry{
		Level:   "error",
		Message: msg,
		Error:   err,
	})
}

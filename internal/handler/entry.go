package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"minitwit/internal/httputil"
	"minitwit/internal/model"
	"minitwit/internal/service"
)

type EntryHandler struct {
	entryService *service.EntryService
}

func NewEntryHandler(entryService *service.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// List handles GET /entries
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entryService.List(r.Context())
	if err != nil {
		logrus.WithError(err).Error("List entries handler failed")
		httputil.WriteInternalError(w, "Failed to list entries")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string][]model.Entry{"entries": entries})
}

// Create handles POST /entries
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	entry, err := h.entryService.Add(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmptyEntryTitle) {
			httputil.WriteBadRequest(w, err.Error())
			return
		}
		logrus.WithError(err).Error("Create entry handler failed")
		httputil.WriteInternalError(w, "Failed to create entry")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, entry)
}

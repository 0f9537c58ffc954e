package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"minitwit/internal/httputil"
	"minitwit/internal/metrics"
	"minitwit/internal/model"
	"minitwit/internal/service"
	"minitwit/internal/transport/http/middleware"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// Post handles POST /messages
// Records a new message for the authenticated user.
func (h *MessageHandler) Post(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	msg, err := h.messageService.Post(r.Context(), authorID, req.Text)
	if err != nil {
		if errors.Is(err, model.ErrEmptyMessage) {
			httputil.WriteBadRequest(w, err.Error())
			return
		}
		logrus.WithError(err).Error("Post message handler failed")
		httputil.WriteInternalError(w, "Failed to post message")
		return
	}

	metrics.MessagesPosted.Inc()
	httputil.WriteJSON(w, http.StatusCreated, msg)
}

// Timeline handles GET /timeline
// Returns the authenticated user's own messages plus those of followed users.
func (h *MessageHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	messages, err := h.messageService.TimelineFor(r.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("Timeline handler failed")
		httputil.WriteInternalError(w, "Failed to fetch timeline")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.TimelineResponse{Messages: messages})
}

// PublicTimeline handles GET /public
// Returns the latest messages of all users.
func (h *MessageHandler) PublicTimeline(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.PublicTimeline(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Public timeline handler failed")
		httputil.WriteInternalError(w, "Failed to fetch public timeline")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.TimelineResponse{Messages: messages})
}

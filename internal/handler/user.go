package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"minitwit/internal/httputil"
	"minitwit/internal/model"
	"minitwit/internal/service"
	"minitwit/internal/transport/http/middleware"
)

type UserHandler struct {
	userService    *service.UserService
	messageService *service.MessageService
	followService  *service.FollowService
}

func NewUserHandler(userService *service.UserService, messageService *service.MessageService, followService *service.FollowService) *UserHandler {
	return &UserHandler{
		userService:    userService,
		messageService: messageService,
		followService:  followService,
	}
}

// GetProfile handles GET /users/{username}
// Returns the user's profile with their messages. When the request carries a
// valid token, the followed flag reflects whether the viewer follows them.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.userService.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		logrus.WithError(err).Error("GetProfile handler failed")
		httputil.WriteInternalError(w, "Failed to get profile")
		return
	}

	messages, err := h.messageService.UserTimeline(r.Context(), user.ID)
	if err != nil {
		logrus.WithError(err).Error("GetProfile handler failed")
		httputil.WriteInternalError(w, "Failed to get profile")
		return
	}

	followed := false
	if viewerID, ok := middleware.GetUserIDFromContext(r.Context()); ok && viewerID != user.ID {
		isFollowing, err := h.followService.IsFollowing(r.Context(), viewerID, user.ID)
		if err == nil {
			followed = isFollowing
		}
	}

	httputil.WriteJSON(w, http.StatusOK, model.ProfileResponse{
		User:     user,
		Messages: messages,
		Followed: followed,
	})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"minitwit/internal/httputil"
	"minitwit/internal/metrics"
	"minitwit/internal/model"
	"minitwit/internal/service"
	"minitwit/internal/transport/http/middleware"
)

type FollowHandler struct {
	followService *service.FollowService
	userService   *service.UserService
}

func NewFollowHandler(followService *service.FollowService, userService *service.UserService) *FollowHandler {
	return &FollowHandler{
		followService: followService,
		userService:   userService,
	}
}

// Follow handles POST /users/{username}/follow
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	who, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	username := chi.URLParam(r, "username")
	whom, err := h.userService.GetIDByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		logrus.WithError(err).Error("Follow handler failed")
		httputil.WriteInternalError(w, "Failed to follow user")
		return
	}

	if err := h.followService.Follow(r.Context(), who, whom); err != nil {
		switch {
		case errors.Is(err, model.ErrCannotFollowSelf):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrAlreadyFollowing):
			httputil.WriteConflict(w, err.Error())
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, err.Error())
		default:
			logrus.WithError(err).Error("Follow handler failed")
			httputil.WriteInternalError(w, "Failed to follow user")
		}
		return
	}

	metrics.FollowsCreated.Inc()
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "You are now following " + username,
	})
}

// Unfollow handles DELETE /users/{username}/follow
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	who, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	username := chi.URLParam(r, "username")
	whom, err := h.userService.GetIDByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		logrus.WithError(err).Error("Unfollow handler failed")
		httputil.WriteInternalError(w, "Failed to unfollow user")
		return
	}

	if err := h.followService.Unfollow(r.Context(), who, whom); err != nil {
		if errors.Is(err, model.ErrNotFollowing) {
			httputil.WriteNotFound(w, err.Error())
			return
		}
		logrus.WithError(err).Error("Unfollow handler failed")
		httputil.WriteInternalError(w, "Failed to unfollow user")
		return
	}

	metrics.FollowsRemoved.Inc()
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "You are no longer following " + username,
	})
}

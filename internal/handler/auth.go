package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"minitwit/internal/config"
	"minitwit/internal/httputil"
	"minitwit/internal/metrics"
	"minitwit/internal/model"
	"minitwit/internal/service"
	"minitwit/internal/transport/http/middleware"
)

// AuthHandler groups auth-related HTTP endpoints and their dependencies.
type AuthHandler struct {
	userService *service.UserService
	authService *service.AuthService
	config      *config.Config
}

// NewAuthHandler wires dependencies for authentication endpoints.
func NewAuthHandler(userService *service.UserService, authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		config:      cfg,
	}
}

// Register handles user registration
// POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if req.Username == "" {
		httputil.WriteBadRequest(w, "You have to enter a username")
		return
	}
	if req.Email == "" {
		httputil.WriteBadRequest(w, "You have to enter a valid email address")
		return
	}
	if req.Password == "" {
		httputil.WriteBadRequest(w, "You have to enter a password")
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameExists):
			httputil.WriteConflict(w, "The username is already taken")
		case errors.Is(err, model.ErrInvalidEmail):
			httputil.WriteBadRequest(w, "You have to enter a valid email address")
		default:
			logrus.WithError(err).Error("Register handler failed")
			httputil.WriteInternalError(w, "Failed to register user")
		}
		return
	}

	metrics.RegisterSuccess.Inc()
	httputil.WriteJSON(w, http.StatusCreated, user)
}

// Login handles user login
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if req.Username == "" {
		httputil.WriteBadRequest(w, "Username is required")
		return
	}
	if req.Password == "" {
		httputil.WriteBadRequest(w, "Password is required")
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			metrics.LoginFailure.WithLabelValues("invalid_credentials").Inc()
			httputil.WriteUnauthorized(w, "Invalid username or password")
			return
		}
		metrics.LoginFailure.WithLabelValues("internal").Inc()
		logrus.WithError(err).Error("Login handler failed")
		httputil.WriteInternalError(w, "Failed to login")
		return
	}

	accessToken, err := h.authService.IssueToken(user.ID)
	if err != nil {
		logrus.WithError(err).Error("Token issuance failed")
		httputil.WriteInternalError(w, "Failed to generate token")
		return
	}

	metrics.LoginSuccess.Inc()
	response := model.LoginResponse{
		User:        user,
		AccessToken: accessToken,
		ExpiresIn:   h.config.AccessTokenMaxAge,
	}
	httputil.WriteJSON(w, http.StatusOK, response)
}

// Me returns the currently authenticated user
// GET /me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		logrus.WithError(err).Error("Me handler failed")
		httputil.WriteInternalError(w, "Failed to get user")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"tasktrackr/internal/api/shared"
	"tasktrackr/internal/domain"
	"tasktrackr/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userService: userService,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// CreateUser handles POST /users requests.
// Creation is idempotent by email: a duplicate is silently skipped
// with an empty 204 response rather than a conflict error.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := shared.DecodeJSON(r, &body); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	email := popString(body, "email")
	delete(body, "id")
	delete(body, "createdAt")

	user, created, err := h.userService.CreateUser(r.Context(), email, body)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyUserEmail) {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	if !created {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// ListUsers handles GET /users requests.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to fetch users", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

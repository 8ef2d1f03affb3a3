package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/hub-accounts/internal/logger"
	"github.com/sbilibin2017/hub-accounts/internal/middlewares"
	"github.com/sbilibin2017/hub-accounts/internal/models"
	"github.com/sbilibin2017/hub-accounts/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// PublicHubUserResponse is the public view of a profile
// swagger:model PublicHubUserResponse
type PublicHubUserResponse struct {
	UUID        string             `json:"uuid"`
	Slug        string             `json:"slug"`
	DisplayName string             `json:"display_name"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	MiddleName  *string            `json:"middle_name,omitempty"`
	ProfileType models.ProfileType `json:"profile_type"`
	CreatedAt   time.Time          `json:"created_at"`
}

// HubUserResponse is the owner's view of a profile
// swagger:model HubUserResponse
type HubUserResponse struct {
	PublicHubUserResponse
	Username          string     `json:"username"`
	Email             string     `json:"email"`
	IsHidden          bool       `json:"is_hidden"`
	IsDisabled        bool       `json:"is_disabled"`
	IsPasswordChanged bool       `json:"is_password_changed"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
	ModifiedAt        time.Time  `json:"modified_at"`
}

// HubUserListResponse is one page of public profiles
// swagger:model HubUserListResponse
type HubUserListResponse struct {
	Count   int                     `json:"count"`
	Pages   int                     `json:"pages"`
	Page    int                     `json:"page"`
	Results []PublicHubUserResponse `json:"results"`
}

func newPublicHubUserResponse(h *models.HubUser) PublicHubUserResponse {
	resp := PublicHubUserResponse{
		UUID:        h.UUID.String(),
		Slug:        h.Slug,
		DisplayName: h.DisplayName(),
		MiddleName:  h.MiddleName,
		ProfileType: h.ProfileType,
		CreatedAt:   h.CreatedAt,
	}
	if h.User != nil {
		resp.FirstName = h.User.FirstName
		resp.LastName = h.User.LastName
	}
	return resp
}

func newHubUserResponse(h *models.HubUser) HubUserResponse {
	resp := HubUserResponse{
		PublicHubUserResponse: newPublicHubUserResponse(h),
		IsHidden:              h.IsHidden,
		IsDisabled:            h.IsDisabled,
		IsPasswordChanged:     h.IsPasswordChanged,
		ModifiedAt:            h.ModifiedAt,
	}
	if h.User != nil {
		resp.Username = h.User.Username
		resp.Email = h.User.Email
		resp.LastLogin = h.User.LastLogin
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps account service errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidProfileType):
		writeError(w, http.StatusBadRequest, "Invalid profile type")
	case errors.Is(err, services.ErrHubUserAlreadyExists):
		writeError(w, http.StatusConflict, "User with this username, email or slug already exists")
	case errors.Is(err, services.ErrHubUserNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrInvalidPage):
		writeError(w, http.StatusNotFound, "Invalid page")
	case errors.Is(err, services.ErrTransient):
		writeError(w, http.StatusServiceUnavailable, "Service temporarily unavailable, retry later")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

var errNoUser = errors.New("no authenticated user in request context")

// currentUserID returns the user id AuthMiddleware stored for the request.
func currentUserID(r *http.Request) (int64, error) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		return 0, errNoUser
	}
	return userID, nil
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	logger.Log.Errorw("unauthorized request", "error", err)
	writeError(w, http.StatusUnauthorized, "Unauthorized")
}

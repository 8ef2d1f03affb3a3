package handlers

//go:generate mockgen -source=token.go -destination=mock_token.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/hub-accounts/internal/logger"
	"github.com/sbilibin2017/hub-accounts/internal/services"
)

// Refresher issues access tokens from refresh tokens.
type Refresher interface {
	Refresh(ctx context.Context, refresh string) (string, error)
}

// Logouter revokes refresh tokens.
type Logouter interface {
	Logout(ctx context.Context, refresh string) error
}

// RefreshRequest carries a refresh token
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Refresh token
	// required: true
	// default: REFRESH_TOKEN
	Refresh string `json:"refresh"`
}

// RefreshResponse represents a successful refresh response
// swagger:model RefreshResponse
type RefreshResponse struct {
	// Access token
	// default: ACCESS_TOKEN
	Access string `json:"access"`
}

func decodeRefresh(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return "", false
	}
	return req.Refresh, true
}

func writeTokenError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrTokenBlacklisted):
		writeError(w, http.StatusUnauthorized, "Token is invalid or expired")
	case errors.Is(err, services.ErrAccountDisabled):
		writeError(w, http.StatusForbidden, "Account is disabled")
	case errors.Is(err, services.ErrTransient):
		writeError(w, http.StatusServiceUnavailable, "Service temporarily unavailable, retry later")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// NewRefreshHandler returns an HTTP handler issuing a new access token.
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh Request"
// @Success 200 {object} handlers.RefreshResponse "New access token"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Token is invalid or expired"
// @Failure 403 {object} handlers.ErrorResponse "Account is disabled"
// @Failure 503 {object} handlers.ErrorResponse "Storage temporarily unavailable"
// @Router /token/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refresh, ok := decodeRefresh(w, r)
		if !ok {
			return
		}

		access, err := svc.Refresh(r.Context(), refresh)
		if err != nil {
			writeTokenError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, RefreshResponse{Access: access})
	}
}

// NewLogoutHandler returns an HTTP handler blacklisting a refresh token.
// @Summary Logout
// @Description Blacklist the refresh token until it expires
// @Tags auth
// @Accept json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh Request"
// @Success 204 "Token blacklisted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Token is invalid or expired"
// @Router /token/blacklist [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refresh, ok := decodeRefresh(w, r)
		if !ok {
			return
		}

		if err := svc.Logout(r.Context(), refresh); err != nil {
			writeTokenError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

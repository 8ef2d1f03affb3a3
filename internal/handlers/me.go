package handlers

//go:generate mockgen -source=me.go -destination=mock_me.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/hub-accounts/internal/models"
)

// MeGetter returns the profile owned by an identity.
type MeGetter interface {
	GetByUserID(ctx context.Context, userID int64) (*models.HubUser, error)
}

// ProfileSaver updates the profile owned by an identity.
type ProfileSaver interface {
	GetByUserID(ctx context.Context, userID int64) (*models.HubUser, error)
	SaveProfile(ctx context.Context, hubUserID int64, update models.ProfileUpdate) (*models.HubUser, error)
}

// AccountDeleter deletes an identity and its profile.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID int64) error
}

// UpdateMeRequest represents the JSON body for updating the caller's own profile.
// Profile type and account flags are not self-service.
// swagger:model UpdateMeRequest
type UpdateMeRequest struct {
	// Middle name
	MiddleName *string `json:"middle_name,omitempty"`

	// Hide the profile from public listings
	IsHidden *bool `json:"is_hidden,omitempty"`
}

// NewGetMeHandler returns an HTTP handler for the caller's own profile.
// @Summary Get own profile
// @Tags accounts
// @Produce json
// @Success 200 {object} handlers.HubUserResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /accounts/me [get]
// @Security BearerAuth
func NewGetMeHandler(svc MeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			writeUnauthorized(w, err)
			return
		}

		hubUser, err := svc.GetByUserID(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newHubUserResponse(hubUser))
	}
}

// NewPatchMeHandler returns an HTTP handler updating the caller's own profile.
// @Summary Update own profile
// @Description Update middle name and visibility. Unknown fields are rejected. The slug never changes.
// @Tags accounts
// @Accept json
// @Produce json
// @Param updateMeRequest body handlers.UpdateMeRequest true "Profile fields"
// @Success 200 {object} handlers.HubUserResponse "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /accounts/me [patch]
// @Security BearerAuth
func NewPatchMeHandler(svc ProfileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			writeUnauthorized(w, err)
			return
		}

		var req UpdateMeRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		update := models.ProfileUpdate{MiddleName: req.MiddleName, IsHidden: req.IsHidden}

		ctx := r.Context()
		current, err := svc.GetByUserID(ctx, userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		hubUser, err := svc.SaveProfile(ctx, current.ID, update)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if hubUser.User == nil {
			hubUser.User = current.User
		}

		writeJSON(w, http.StatusOK, newHubUserResponse(hubUser))
	}
}

// NewDeleteMeHandler returns an HTTP handler deleting the caller's account.
// @Summary Delete own account
// @Tags accounts
// @Success 204 "Account deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /accounts/me [delete]
// @Security BearerAuth
func NewDeleteMeHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			writeUnauthorized(w, err)
			return
		}

		if err := svc.DeleteAccount(r.Context(), userID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

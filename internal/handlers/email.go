package handlers

//go:generate mockgen -source=email.go -destination=mock_email.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/sbilibin2017/hub-accounts/internal/models"
)

// EmailUpdater changes the email of the identity owning a profile.
type EmailUpdater interface {
	GetByUserID(ctx context.Context, userID int64) (*models.HubUser, error)
	UpdateEmail(ctx context.Context, hubUser *models.HubUser, email string) (*models.User, error)
}

// UpdateEmailRequest carries the new email
// swagger:model UpdateEmailRequest
type UpdateEmailRequest struct {
	// New email
	// required: true
	// default: new@example.com
	Email string `json:"email"`
}

// UpdateEmailResponse represents a successful email update
// swagger:model UpdateEmailResponse
type UpdateEmailResponse struct {
	// Stored email
	// default: new@example.com
	Email string `json:"email"`
}

// NewUpdateEmailHandler returns an HTTP handler changing the caller's email.
// @Summary Update email
// @Tags accounts
// @Accept json
// @Produce json
// @Param updateEmailRequest body handlers.UpdateEmailRequest true "New email"
// @Success 200 {object} handlers.UpdateEmailResponse "Email updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid email"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 409 {object} handlers.ErrorResponse "Email already used"
// @Failure 503 {object} handlers.ErrorResponse "Storage temporarily unavailable"
// @Router /accounts/me/email [put]
// @Security BearerAuth
func NewUpdateEmailHandler(svc EmailUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			writeUnauthorized(w, err)
			return
		}

		var req UpdateEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
			writeError(w, http.StatusBadRequest, "invalid email")
			return
		}

		ctx := r.Context()
		hubUser, err := svc.GetByUserID(ctx, userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		user, err := svc.UpdateEmail(ctx, hubUser, req.Email)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UpdateEmailResponse{Email: user.Email})
	}
}

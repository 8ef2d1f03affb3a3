package handlers

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/hub-accounts/internal/models"
)

// Registerer defines the interface that the account service must implement.
type Registerer interface {
	CreateHubUser(ctx context.Context, params models.CreateHubUserParams) (*models.HubUser, error)
}

// RegisterRequest represents the JSON body for account registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: jane@doe.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Username, generated when empty
	Username string `json:"username,omitempty"`

	// First name
	// default: Jane
	FirstName string `json:"first_name"`

	// Last name
	// default: Doe
	LastName string `json:"last_name"`

	// Middle name
	MiddleName *string `json:"middle_name,omitempty"`
}

// NewRegisterHandler returns an HTTP handler for account registration.
// Self-registered accounts always get the default profile type.
// @Summary Register account
// @Description Create an identity and its hub user profile
// @Tags accounts
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.HubUserResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Username, email or slug already exists"
// @Failure 503 {object} handlers.ErrorResponse "Storage temporarily unavailable"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /accounts/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		hubUser, err := svc.CreateHubUser(r.Context(), models.CreateHubUserParams{
			Email:     req.Email,
			Password:  req.Password,
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Profile: models.ProfileFields{
				MiddleName: req.MiddleName,
			},
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, newHubUserResponse(hubUser))
	}
}

package handlers

//go:generate mockgen -source=hub_users.go -destination=mock_hub_users.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/hub-accounts/internal/models"
	"github.com/sbilibin2017/hub-accounts/internal/services"
)

// HubUserLister lists visible profiles page by page.
type HubUserLister interface {
	ListVisible(ctx context.Context, page int) (models.Page[models.HubUser], error)
}

// HubUserGetter looks a profile up by slug.
type HubUserGetter interface {
	GetBySlug(ctx context.Context, slug string) (*models.HubUser, error)
}

// NewListHubUsersHandler returns an HTTP handler listing visible profiles.
// @Summary List profiles
// @Tags hub-users
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} handlers.HubUserListResponse "Page of profiles"
// @Failure 404 {object} handlers.ErrorResponse "Invalid page"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /hub-users [get]
func NewListHubUsersHandler(svc HubUserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if raw := r.URL.Query().Get("page"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeServiceError(w, services.ErrInvalidPage)
				return
			}
			page = n
		}

		result, err := svc.ListVisible(r.Context(), page)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := HubUserListResponse{
			Count:   result.Count,
			Pages:   result.Pages,
			Page:    result.Page,
			Results: make([]PublicHubUserResponse, 0, len(result.Results)),
		}
		for i := range result.Results {
			resp.Results = append(resp.Results, newPublicHubUserResponse(&result.Results[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewGetHubUserHandler returns an HTTP handler for a single public profile.
// @Summary Get profile by slug
// @Tags hub-users
// @Produce json
// @Param slug path string true "Profile slug"
// @Success 200 {object} handlers.PublicHubUserResponse "Profile"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /hub-users/{slug} [get]
func NewGetHubUserHandler(svc HubUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hubUser, err := svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newPublicHubUserResponse(hubUser))
	}
}

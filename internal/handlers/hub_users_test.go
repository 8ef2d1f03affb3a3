package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/hub-accounts/internal/models"
	"github.com/sbilibin2017/hub-accounts/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListHubUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHubUserLister(ctrl)

	t.Run("first page by default", func(t *testing.T) {
		page := models.NewPage([]models.HubUser{*testHubUser()}, 21, 1, 20)
		mockSvc.EXPECT().ListVisible(gomock.Any(), 1).Return(page, nil)

		w := httptest.NewRecorder()
		NewListHubUsersHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hub-users", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp HubUserListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 21, resp.Count)
		assert.Equal(t, 2, resp.Pages)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "ann-0123456789ab", resp.Results[0].Slug)
		// в публичном списке нет email
		assert.NotContains(t, w.Body.String(), "ann@example.com")
	})

	t.Run("explicit page", func(t *testing.T) {
		mockSvc.EXPECT().ListVisible(gomock.Any(), 3).Return(models.NewPage[models.HubUser](nil, 41, 3, 20), nil)

		w := httptest.NewRecorder()
		NewListHubUsersHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hub-users?page=3", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":41,"pages":3,"page":3,"results":[]}`, w.Body.String())
	})

	t.Run("non numeric page", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewListHubUsersHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hub-users?page=abc", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("page out of range", func(t *testing.T) {
		mockSvc.EXPECT().ListVisible(gomock.Any(), 9).Return(models.Page[models.HubUser]{}, services.ErrInvalidPage)

		w := httptest.NewRecorder()
		NewListHubUsersHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hub-users?page=9", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetHubUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHubUserGetter(ctrl)

	newRequest := func(slug string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("slug", slug)
		req := httptest.NewRequest(http.MethodGet, "/hub-users/"+slug, nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	mockSvc.EXPECT().GetBySlug(gomock.Any(), "ann-0123456789ab").Return(testHubUser(), nil)
	w := httptest.NewRecorder()
	NewGetHubUserHandler(mockSvc).ServeHTTP(w, newRequest("ann-0123456789ab"))
	require.Equal(t, http.StatusOK, w.Code)
	var resp PublicHubUserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ann - Lee", resp.DisplayName)

	mockSvc.EXPECT().GetBySlug(gomock.Any(), "missing").Return(nil, services.ErrHubUserNotFound)
	w = httptest.NewRecorder()
	NewGetHubUserHandler(mockSvc).ServeHTTP(w, newRequest("missing"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

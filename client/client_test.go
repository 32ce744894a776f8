package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talento/internal/models"
)

func TestFetchBoard(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/posts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Post{
			{ID: 1, EventName: "Garden Wedding", Comments: []models.Comment{
				{ID: 5, PostID: 1, Content: "hi", User: models.User{Name: "Ana Reyes"}},
			}},
			{ID: 2, EventName: "Birthday Bash"},
		})
	}))
	defer ts.Close()

	c := New(ts.URL)
	posts, err := c.FetchBoard(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Garden Wedding", posts[0].EventName)
	assert.Equal(t, "Ana Reyes", posts[0].Comments[0].User.Name)
}

func TestCreatePost_RefetchesBoard(t *testing.T) {
	var fetches atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/posts":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			var in PostInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "Garden Wedding", in.EventName)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(models.Post{ID: 9})
		case r.Method == http.MethodGet && r.URL.Path == "/api/posts":
			fetches.Add(1)
			_ = json.NewEncoder(w).Encode([]models.Post{{ID: 9, EventName: "Garden Wedding"}})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer ts.Close()

	c := New(ts.URL, WithToken("tok"))
	posts, err := c.CreatePost(context.Background(), PostInput{
		ClientName:  "Maria Santos",
		EventName:   "Garden Wedding",
		Description: "desc",
		Talents:     []string{"Singer"},
	})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int32(1), fetches.Load(), "mutation must be followed by a board re-fetch")
}

func TestDeletePost_RefetchesBoard(t *testing.T) {
	var deleted atomic.Bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodDelete && r.URL.Path == "/api/posts/4":
			deleted.Store(true)
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodGet && r.URL.Path == "/api/posts":
			_ = json.NewEncoder(w).Encode([]models.Post{})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer ts.Close()

	c := New(ts.URL, WithToken("tok"))
	posts, err := c.DeletePost(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, deleted.Load())
	assert.Empty(t, posts)
}

func TestCreateComment_RefetchesThread(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/comments":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(models.Comment{ID: 1})
		case r.Method == http.MethodGet && r.URL.Path == "/api/posts/7/comments":
			_ = json.NewEncoder(w).Encode([]models.Comment{
				{ID: 1, PostID: 7, Content: "hello", User: models.User{Name: "Ana Reyes"}},
			})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer ts.Close()

	c := New(ts.URL, WithToken("tok"))
	comments, err := c.CreateComment(context.Background(), CommentInput{PostID: 7, Content: "hello"})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Ana Reyes", comments[0].User.Name)
}

func TestValidationErrorSurfacesFieldMap(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: "The given data was invalid",
			Code:  "VALIDATION_ERROR",
			Fields: map[string]string{
				"client_name": "Client name is required",
			},
		})
	}))
	defer ts.Close()

	c := New(ts.URL, WithToken("tok"))
	_, err := c.CreatePost(context.Background(), PostInput{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Client name is required", apiErr.FieldErrors()["client_name"])
}

func TestLogin_StoresToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"token": "issued-token",
				"user":  models.User{ID: 3, Name: "Ana Reyes"},
			})
		case "/api/posts":
			assert.Equal(t, "Bearer issued-token", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode([]models.Post{})
		}
	}))
	defer ts.Close()

	c := New(ts.URL)
	user, err := c.Login(context.Background(), "ana@example.com", "SecurePass12")
	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes", user.Name)

	_, err = c.FetchBoard(context.Background())
	require.NoError(t, err)
}

func TestFetchPerformer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/performer/3", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PerformerProfile{
			User:      &models.User{ID: 3, Name: "Ana Reyes"},
			Portfolio: &models.Portfolio{UserID: 3},
		})
	}))
	defer ts.Close()

	c := New(ts.URL)
	profile, err := c.FetchPerformer(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes", profile.User.Name)
	assert.Zero(t, profile.Portfolio.ID, "unsaved portfolio comes back as an empty shape")
}

func TestSavePortfolio_SendsMultipartAndRefetches(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPost:
			require.Equal(t, "/api/performer/3", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "Acoustic Duo", r.FormValue("talent_name"))
			assert.Equal(t, "1500", r.FormValue("rate"))
			_ = json.NewEncoder(w).Encode(models.PerformerProfile{})
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(models.PerformerProfile{
				User:      &models.User{ID: 3},
				Portfolio: &models.Portfolio{ID: 1, UserID: 3, TalentName: "Acoustic Duo"},
			})
		}
	}))
	defer ts.Close()

	c := New(ts.URL, WithToken("tok"))
	profile, err := c.SavePortfolio(context.Background(), 3, PortfolioInput{
		TalentName: "Acoustic Duo",
		Rate:       1500,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acoustic Duo", profile.Portfolio.TalentName)
}

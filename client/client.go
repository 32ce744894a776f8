// Package client is a Go consumer of the Talento API. It mirrors the web
// client's behavior: after every mutation it re-fetches the affected
// collections from the server instead of patching local state, so its view
// always matches what the server stored.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"talento/internal/models"
)

const defaultTimeout = 15 * time.Second

// Client talks to a Talento API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer token used on protected endpoints.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:8000").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, e.g. after login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-2xx response from the server, carrying the decoded
// error body when one was present.
type APIError struct {
	StatusCode int
	Body       models.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Body.Error != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Body.Error)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// FieldErrors returns the per-field validation messages, if any.
func (e *APIError) FieldErrors() map[string]string {
	return e.Body.Fields
}

// PostInput is the payload for creating or replacing a post.
type PostInput struct {
	ClientName  string   `json:"client_name"`
	EventName   string   `json:"event_name"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Description string   `json:"description"`
	Talents     []string `json:"talents"`
}

// CommentInput is the payload for creating a comment.
type CommentInput struct {
	PostID  uint   `json:"post_id"`
	UserID  uint   `json:"user_id,omitempty"`
	Content string `json:"content"`
}

// PortfolioInput is the payload for saving a performer portfolio. Image is
// optional; when nil the server keeps the stored profile picture.
type PortfolioInput struct {
	EventName   string
	ThemeName   string
	TalentName  string
	Location    string
	Description string
	Rate        float64
	Image       []byte
	ImageName   string
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr.Body)
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType, out)
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	in := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", in, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return resp.User, nil
}

// FetchBoard returns the full customer board: every post, oldest first, with
// comment threads and comment authors attached.
func (c *Client) FetchBoard(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.doJSON(ctx, http.MethodGet, "/api/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FetchPost returns a single post with its comment thread.
func (c *Client) FetchPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d", id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// FetchComments returns a post's comment thread, oldest first.
func (c *Client) FetchComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", postID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreatePost submits a new event request and returns the refreshed board.
func (c *Client) CreatePost(ctx context.Context, in PostInput) ([]models.Post, error) {
	if err := c.doJSON(ctx, http.MethodPost, "/api/posts", in, nil); err != nil {
		return nil, err
	}
	return c.FetchBoard(ctx)
}

// UpdatePost replaces a post's fields and returns the refreshed board.
func (c *Client) UpdatePost(ctx context.Context, id uint, in PostInput) ([]models.Post, error) {
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/posts/%d", id), in, nil); err != nil {
		return nil, err
	}
	return c.FetchBoard(ctx)
}

// DeletePost removes a post (and its comments) and returns the refreshed
// board.
func (c *Client) DeletePost(ctx context.Context, id uint) ([]models.Post, error) {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/posts/%d", id), nil, nil); err != nil {
		return nil, err
	}
	return c.FetchBoard(ctx)
}

// CreateComment posts a comment and returns the post's refreshed thread.
func (c *Client) CreateComment(ctx context.Context, in CommentInput) ([]models.Comment, error) {
	if err := c.doJSON(ctx, http.MethodPost, "/api/comments", in, nil); err != nil {
		return nil, err
	}
	return c.FetchComments(ctx, in.PostID)
}

// FetchPerformer returns a performer's combined profile. A performer who has
// never saved a portfolio comes back with an empty portfolio shape.
func (c *Client) FetchPerformer(ctx context.Context, userID uint) (*models.PerformerProfile, error) {
	var profile models.PerformerProfile
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/performer/%d", userID), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SavePortfolio submits a portfolio save as multipart form data and returns
// the re-fetched profile rather than trusting the mutation response.
func (c *Client) SavePortfolio(ctx context.Context, userID uint, in PortfolioInput) (*models.PerformerProfile, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"event_name":  in.EventName,
		"theme_name":  in.ThemeName,
		"talent_name": in.TalentName,
		"location":    in.Location,
		"description": in.Description,
		"rate":        fmt.Sprintf("%g", in.Rate),
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if len(in.Image) > 0 {
		name := in.ImageName
		if name == "" {
			name = "profile.jpg"
		}
		part, err := writer.CreateFormFile("profile_image", name)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(in.Image); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/api/performer/%d", userID)
	if err := c.do(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), nil); err != nil {
		return nil, err
	}
	return c.FetchPerformer(ctx, userID)
}

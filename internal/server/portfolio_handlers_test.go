package server

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talento/internal/models"
)

func doForm(t *testing.T, app *fiber.App, path, token string, fields map[string]string, imageField string, imageBytes []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if imageField != "" {
		part, err := writer.CreateFormFile(imageField, "profile.png")
		require.NoError(t, err)
		_, err = part.Write(imageBytes)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func performerPath(userID uint) string {
	return fmt.Sprintf("/api/performer/%d", userID)
}

func portfolioFields() map[string]string {
	return map[string]string{
		"event_name":  "Weddings",
		"theme_name":  "Rustic",
		"talent_name": "Acoustic Duo",
		"location":    "Manila",
		"description": "Two-piece acoustic act",
		"rate":        "1500",
	}
}

func TestGetPerformer_EmptyShapeBeforeFirstSave(t *testing.T) {
	app, _, db := setupTestApp(t)
	user := createTestUser(t, db, "Ana Reyes", "ana@example.com")

	resp := doJSON(t, app, http.MethodGet, performerPath(user.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	profile := decodeBody[models.PerformerProfile](t, resp)
	assert.Equal(t, "Ana Reyes", profile.User.Name)
	require.NotNil(t, profile.Portfolio)
	assert.Zero(t, profile.Portfolio.ID)
	assert.Empty(t, profile.Portfolio.TalentName)
}

func TestGetPerformer_UnknownUser(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/performer/999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSavePerformer_CreateThenOverwrite(t *testing.T) {
	app, srv, db := setupTestApp(t)
	user := createTestUser(t, db, "Ana Reyes", "ana@example.com")
	token := authToken(t, srv, user.ID)

	resp := doForm(t, app, performerPath(user.ID), token, portfolioFields(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := decodeBody[models.PerformerProfile](t, resp)
	assert.Equal(t, "Acoustic Duo", first.Portfolio.TalentName)

	// A second save replaces the row rather than adding another.
	updated := portfolioFields()
	updated["talent_name"] = "Full Band"
	updated["rate"] = "5000"

	resp = doForm(t, app, performerPath(user.ID), token, updated, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decodeBody[models.PerformerProfile](t, resp)
	assert.Equal(t, "Full Band", second.Portfolio.TalentName)
	assert.Equal(t, 5000.0, second.Portfolio.Rate)

	var count int64
	require.NoError(t, db.Model(&models.Portfolio{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSavePerformer_WithImage(t *testing.T) {
	app, srv, db := setupTestApp(t)
	user := createTestUser(t, db, "Ana Reyes", "ana@example.com")
	token := authToken(t, srv, user.ID)

	resp := doForm(t, app, performerPath(user.ID), token, portfolioFields(), "profile_image", testPNG(t))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	profile := decodeBody[models.PerformerProfile](t, resp)
	assert.Contains(t, profile.User.ImageProfile, "/media/")

	// Saving again without an image keeps the stored reference.
	resp = doForm(t, app, performerPath(user.ID), token, portfolioFields(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	again := decodeBody[models.PerformerProfile](t, resp)
	assert.Equal(t, profile.User.ImageProfile, again.User.ImageProfile)
}

func TestSavePerformer_OwnerOnly(t *testing.T) {
	app, srv, db := setupTestApp(t)
	user := createTestUser(t, db, "Ana Reyes", "ana@example.com")
	other := createTestUser(t, db, "Jon Cruz", "jon@example.com")
	token := authToken(t, srv, user.ID)

	resp := doForm(t, app, performerPath(other.ID), token, portfolioFields(), "", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSavePerformer_Validation(t *testing.T) {
	app, srv, db := setupTestApp(t)
	user := createTestUser(t, db, "Ana Reyes", "ana@example.com")
	token := authToken(t, srv, user.ID)

	fields := portfolioFields()
	fields["talent_name"] = ""
	fields["rate"] = "-5"

	resp := doForm(t, app, performerPath(user.ID), token, fields, "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	errBody := decodeBody[models.ErrorResponse](t, resp)
	assert.Contains(t, errBody.Fields, "talent_name")
	assert.Contains(t, errBody.Fields, "rate")
}

func TestSavePerformer_RequiresAuth(t *testing.T) {
	app, _, db := setupTestApp(t)
	user := createTestUser(t, db, "Ana Reyes", "ana@example.com")

	resp := doForm(t, app, performerPath(user.ID), "", portfolioFields(), "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

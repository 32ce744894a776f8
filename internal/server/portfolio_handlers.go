package server

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"talento/internal/models"
	"talento/internal/service"
)

// GetPerformer handles GET /api/performer/:userId. Public: anyone can view a
// performer's profile. A performer without a saved portfolio gets an empty
// shape, not a 404.
func (s *Server) GetPerformer(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	profile, err := s.portfolioService.GetPerformer(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// SavePerformer handles POST /api/performer/:userId. The form arrives as
// multipart so it can carry an optional profile image; performers may only
// save their own portfolio.
func (s *Server) SavePerformer(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	authUserID, _ := c.Locals("userID").(uint)
	if authUserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("You can only edit your own portfolio"))
	}

	rate := 0.0
	if rateStr := c.FormValue("rate"); rateStr != "" {
		parsed, err := strconv.ParseFloat(rateStr, 64)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
				models.NewFieldValidationError(map[string]string{"rate": "Rate must be a number"}))
		}
		rate = parsed
	}

	in := service.SavePortfolioInput{
		UserID:      userID,
		EventName:   c.FormValue("event_name"),
		ThemeName:   c.FormValue("theme_name"),
		TalentName:  c.FormValue("talent_name"),
		Location:    c.FormValue("location"),
		Description: c.FormValue("description"),
		Rate:        rate,
	}

	if fileHeader, err := c.FormFile("profile_image"); err == nil && fileHeader != nil {
		f, err := fileHeader.Open()
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		in.Image = &service.UploadImageInput{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Content:     content,
		}
	}

	profile, err := s.portfolioService.SavePerformer(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

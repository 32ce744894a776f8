package server

import (
	"github.com/gofiber/fiber/v2"

	"talento/internal/models"
	"talento/internal/service"
)

type createCommentRequest struct {
	PostID  uint   `json:"post_id"`
	UserID  uint   `json:"user_id"`
	Content string `json:"content"`
}

// CreateComment handles POST /api/comments. The body may echo the author's
// user_id; when present it must match the access token.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	authUserID, _ := c.Locals("userID").(uint)

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		PostID:     req.PostID,
		UserID:     req.UserID,
		AuthUserID: authUserID,
		Content:    req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/posts/:id/comments.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return c.JSON(comments)
}

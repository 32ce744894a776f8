package server

import (
	"github.com/gofiber/fiber/v2"

	"talento/internal/models"
	"talento/internal/service"
)

// CreatePost handles POST /api/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var in service.PostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts. Every post carries its comment thread so
// the customer board renders in a single round trip.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id. The submitted body fully replaces
// the stored fields.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in service.PostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), id, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id. The post's comments go with it.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Package service contains the application's business logic.
package service

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"talento/internal/cache"
	"talento/internal/models"
	"talento/internal/observability"
	"talento/internal/repository"
)

type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	redisClient *redis.Client
}

// PostInput carries the post fields a client submits. The same shape serves
// create and update since updates are full replacements.
type PostInput struct {
	ClientName  string   `json:"client_name"`
	EventName   string   `json:"event_name"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Description string   `json:"description"`
	Talents     []string `json:"talents"`
}

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	redisClient *redis.Client,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		redisClient: redisClient,
	}
}

const (
	maxClientNameLen  = 255
	maxEventNameLen   = 255
	maxDescriptionLen = 10000
)

// validatePostInput accumulates per-field messages instead of failing on the
// first problem, so a form client can mark every offending input at once.
func validatePostInput(in PostInput) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(in.ClientName) == "" {
		fields["client_name"] = "Client name is required"
	} else if len(in.ClientName) > maxClientNameLen {
		fields["client_name"] = "Client name is too long (max 255 characters)"
	}

	if strings.TrimSpace(in.EventName) == "" {
		fields["event_name"] = "Event name is required"
	} else if len(in.EventName) > maxEventNameLen {
		fields["event_name"] = "Event name is too long (max 255 characters)"
	}

	if strings.TrimSpace(in.Description) == "" {
		fields["description"] = "Description is required"
	} else if len(in.Description) > maxDescriptionLen {
		fields["description"] = "Description is too long (max 10000 characters)"
	}

	if len(in.Talents) == 0 {
		fields["talents"] = "At least one talent is required"
	} else {
		for _, talent := range in.Talents {
			if strings.TrimSpace(talent) == "" {
				fields["talents"] = "Talent entries cannot be blank"
				break
			}
		}
	}

	return fields
}

// CreatePost validates and stores a new event request.
// Start and end times are stored as submitted; an end before the start is a
// legitimate overnight booking, so no ordering check is applied.
func (s *PostService) CreatePost(ctx context.Context, in PostInput) (*models.Post, error) {
	if fields := validatePostInput(in); len(fields) > 0 {
		observability.ValidationFailures.WithLabelValues("post").Inc()
		return nil, models.NewFieldValidationError(fields)
	}

	post := &models.Post{
		ClientName:  in.ClientName,
		EventName:   in.EventName,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Description: in.Description,
		Talents:     models.Talents(in.Talents),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	observability.PostsCreated.Inc()
	cache.InvalidatePostList(ctx, s.redisClient)
	return post, nil
}

// ListPosts returns all posts oldest first, each with its comment thread and
// comment authors attached.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	var cached []models.Post
	if cache.GetJSON(ctx, s.redisClient, cache.PostListKey(), &cached) {
		return cached, nil
	}

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	for i := range posts {
		comments, err := s.commentRepo.ListByPost(ctx, posts[i].ID)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		posts[i].Comments = comments
	}

	cache.SetJSON(ctx, s.redisClient, cache.PostListKey(), posts, cache.PostListTTL)
	return posts, nil
}

// GetPost returns a single post with its comment thread.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	post.Comments = comments
	return post, nil
}

// UpdatePost replaces all client-provided fields of an existing post.
// Partial updates are not supported; a caller sending only a subset of
// fields blanks the rest, and that blanking must pass validation first.
func (s *PostService) UpdatePost(ctx context.Context, id uint, in PostInput) (*models.Post, error) {
	if fields := validatePostInput(in); len(fields) > 0 {
		observability.ValidationFailures.WithLabelValues("post").Inc()
		return nil, models.NewFieldValidationError(fields)
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}

	post.ClientName = in.ClientName
	post.EventName = in.EventName
	post.StartTime = in.StartTime
	post.EndTime = in.EndTime
	post.Description = in.Description
	post.Talents = models.Talents(in.Talents)

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	cache.InvalidatePostList(ctx, s.redisClient)
	return post, nil
}

// DeletePost removes a post and its entire comment thread atomically.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	exists, err := s.postRepo.Exists(ctx, id)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !exists {
		return models.NewNotFoundError("Post", id)
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}

	observability.PostsDeleted.Inc()
	cache.InvalidatePostList(ctx, s.redisClient)
	return nil
}

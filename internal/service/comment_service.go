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

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	redisClient *redis.Client
}

// CreateCommentInput carries a new comment. AuthUserID is the identity from
// the access token; UserID is the optional identity echoed in the body and
// must agree with the token when present.
type CreateCommentInput struct {
	PostID     uint
	UserID     uint
	AuthUserID uint
	Content    string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	redisClient *redis.Client,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
	}
}

const maxCommentLen = 5000

// CreateComment validates and stores a comment, returning it with the author
// record attached so the client can render it immediately.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(in.Content) == "" {
		fields["content"] = "Content is required"
	} else if len(in.Content) > maxCommentLen {
		fields["content"] = "Content is too long (max 5000 characters)"
	}
	if in.PostID == 0 {
		fields["post_id"] = "Post ID is required"
	}
	if in.UserID != 0 && in.UserID != in.AuthUserID {
		fields["user_id"] = "User ID does not match the authenticated user"
	}
	if len(fields) > 0 {
		observability.ValidationFailures.WithLabelValues("comment").Inc()
		return nil, models.NewFieldValidationError(fields)
	}

	// Comments must never point at a missing post or author.
	postExists, err := s.postRepo.Exists(ctx, in.PostID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !postExists {
		return nil, models.NewReferentialError("post_id", "The selected post does not exist")
	}

	userExists, err := s.userRepo.Exists(ctx, in.AuthUserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !userExists {
		return nil, models.NewReferentialError("user_id", "The selected user does not exist")
	}

	comment := &models.Comment{
		PostID:  in.PostID,
		UserID:  in.AuthUserID,
		Content: in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	// Re-read with the author preloaded.
	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	observability.CommentsCreated.Inc()
	cache.InvalidatePostList(ctx, s.redisClient)
	return created, nil
}

// ListComments returns a post's comments oldest first with authors attached.
// The post must exist; an empty thread on a real post is an empty list.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

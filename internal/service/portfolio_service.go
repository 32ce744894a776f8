package service

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"talento/internal/cache"
	"talento/internal/models"
	"talento/internal/observability"
	"talento/internal/repository"
	"talento/internal/validation"
)

type PortfolioService struct {
	portfolioRepo repository.PortfolioRepository
	userRepo      repository.UserRepository
	imageService  *ImageService
	redisClient   *redis.Client
}

// SavePortfolioInput carries a full portfolio save. Image is nil when the
// performer did not pick a new picture; the existing reference is then kept.
type SavePortfolioInput struct {
	UserID      uint
	EventName   string
	ThemeName   string
	TalentName  string
	Location    string
	Description string
	Rate        float64
	Image       *UploadImageInput
}

func NewPortfolioService(
	portfolioRepo repository.PortfolioRepository,
	userRepo repository.UserRepository,
	imageService *ImageService,
	redisClient *redis.Client,
) *PortfolioService {
	return &PortfolioService{
		portfolioRepo: portfolioRepo,
		userRepo:      userRepo,
		imageService:  imageService,
		redisClient:   redisClient,
	}
}

// GetPerformer returns a user's combined profile. A user who has never saved
// a portfolio gets an empty portfolio shape, not an error, so profile pages
// render a blank form instead of failing.
func (s *PortfolioService) GetPerformer(ctx context.Context, userID uint) (*models.PerformerProfile, error) {
	var cached models.PerformerProfile
	if cache.GetJSON(ctx, s.redisClient, cache.PerformerKey(userID), &cached) {
		return &cached, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("User", userID)
		}
		return nil, models.NewInternalError(err)
	}

	portfolio, err := s.portfolioRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if portfolio == nil {
		portfolio = &models.Portfolio{UserID: userID}
	}

	profile := &models.PerformerProfile{User: user, Portfolio: portfolio}
	cache.SetJSON(ctx, s.redisClient, cache.PerformerKey(userID), profile, cache.PerformerTTL)
	return profile, nil
}

// SavePerformer creates or fully replaces a user's portfolio. Repeated saves
// keep a single row per user; the latest submission wins. A new profile
// image replaces the stored reference, otherwise the old one is preserved.
func (s *PortfolioService) SavePerformer(ctx context.Context, in SavePortfolioInput) (*models.PerformerProfile, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(in.TalentName) == "" {
		fields["talent_name"] = "Talent name is required"
	}
	if err := validation.ValidateRate(in.Rate); err != nil {
		fields["rate"] = "Rate cannot be negative"
	}
	if len(fields) > 0 {
		observability.ValidationFailures.WithLabelValues("portfolio").Inc()
		return nil, models.NewFieldValidationError(fields)
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("User", in.UserID)
		}
		return nil, models.NewInternalError(err)
	}

	imageRef := ""
	if in.Image != nil {
		ref, err := s.imageService.SaveProfileImage(*in.Image)
		if err != nil {
			return nil, err
		}
		imageRef = ref
	}

	portfolio := &models.Portfolio{
		UserID:      in.UserID,
		EventName:   in.EventName,
		ThemeName:   in.ThemeName,
		TalentName:  in.TalentName,
		Location:    in.Location,
		Description: in.Description,
		Rate:        in.Rate,
	}
	// The portfolio row and the image reference change together or not at
	// all; a failed save must leave the old image reference in place.
	if err := s.portfolioRepo.Save(ctx, portfolio, imageRef); err != nil {
		return nil, models.NewInternalError(err)
	}
	if imageRef != "" {
		user.ImageProfile = imageRef
	}

	// Re-read so the response reflects what is actually stored.
	saved, err := s.portfolioRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	observability.PortfolioSaves.Inc()
	cache.InvalidatePerformer(ctx, s.redisClient, in.UserID)
	return &models.PerformerProfile{User: user, Portfolio: saved}, nil
}

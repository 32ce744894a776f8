package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talento/internal/models"
)

// PortfolioRepository defines data access for performer portfolios.
type PortfolioRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Portfolio, error)
	Save(ctx context.Context, portfolio *models.Portfolio, imageRef string) error
}

type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a new portfolio repository.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

// GetByUserID returns the user's portfolio, or nil without error when the
// user has not created one yet.
func (r *portfolioRepository) GetByUserID(ctx context.Context, userID uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&portfolio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &portfolio, nil
}

// Save inserts the portfolio, or overwrites the existing row for the same
// user. One row per user; the latest save wins in full. When imageRef is
// non-empty the owner's image_profile is replaced in the same transaction,
// so a failed upsert never strands a half-applied save.
func (r *portfolioRepository) Save(ctx context.Context, portfolio *models.Portfolio, imageRef string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if imageRef != "" {
			if err := tx.Model(&models.User{}).
				Where("id = ?", portfolio.UserID).
				Update("image_profile", imageRef).Error; err != nil {
				return err
			}
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"event_name", "theme_name", "talent_name", "location", "description", "rate", "updated_at",
			}),
		}).Create(portfolio).Error
	})
}

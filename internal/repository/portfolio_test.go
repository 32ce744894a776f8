package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"talento/internal/models"
)

func TestPortfolioRepository_GetByUserID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPortfolioRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "portfolios"`)).
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "talent_name", "rate"}).
			AddRow(1, 3, "Acoustic Duo", 1500.0))

	portfolio, err := repo.GetByUserID(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, "Acoustic Duo", portfolio.TalentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolioRepository_GetByUserID_AbsentIsNotAnError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPortfolioRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "portfolios"`)).
		WithArgs(9, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	portfolio, err := repo.GetByUserID(ctx, 9)
	assert.NoError(t, err)
	assert.Nil(t, portfolio)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolioRepository_Save(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPortfolioRepository(db)
	ctx := context.Background()

	portfolio := &models.Portfolio{
		UserID:     3,
		EventName:  "Weddings",
		TalentName: "Acoustic Duo",
		Rate:       1500,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT ("user_id") DO UPDATE`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Save(ctx, portfolio, "")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolioRepository_Save_WithImageRefSharesTransaction(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPortfolioRepository(db)
	ctx := context.Background()

	portfolio := &models.Portfolio{UserID: 3, TalentName: "Acoustic Duo"}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "image_profile"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT ("user_id") DO UPDATE`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Save(ctx, portfolio, "/media/new/profile.jpg")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolioRepository_Save_RollsBackImageRefOnUpsertFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPortfolioRepository(db)
	ctx := context.Background()

	portfolio := &models.Portfolio{UserID: 3, TalentName: "Acoustic Duo"}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "image_profile"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT ("user_id") DO UPDATE`)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.Save(ctx, portfolio, "/media/new/profile.jpg")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

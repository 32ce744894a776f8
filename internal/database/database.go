// Package database provides database connectivity and migration helpers.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"talento/internal/config"
	"talento/internal/models"
)

// CustomGormLogger adapts GORM's logging to slog so database logs share the
// application's structured output.
type CustomGormLogger struct {
	SlowThreshold time.Duration
	LogLevel      logger.LogLevel
}

func NewCustomGormLogger() *CustomGormLogger {
	return &CustomGormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      logger.Warn,
	}
}

func (l *CustomGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *CustomGormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Info {
		slog.InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *CustomGormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Warn {
		slog.WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *CustomGormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Error {
		slog.ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *CustomGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && err != gorm.ErrRecordNotFound && l.LogLevel >= logger.Error:
		slog.ErrorContext(ctx, "database query failed",
			"error", err,
			"duration_ms", elapsed.Milliseconds(),
			"rows", rows,
			"sql", sql,
		)
	case elapsed > l.SlowThreshold && l.SlowThreshold != 0 && l.LogLevel >= logger.Warn:
		slog.WarnContext(ctx, "slow database query",
			"duration_ms", elapsed.Milliseconds(),
			"rows", rows,
			"sql", sql,
		)
	case l.LogLevel >= logger.Info:
		slog.InfoContext(ctx, "database query",
			"duration_ms", elapsed.Milliseconds(),
			"rows", rows,
			"sql", sql,
		)
	}
}

// Connect establishes a database connection using the provided configuration.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: NewCustomGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	slog.Info("Database connection established", "host", cfg.DBHost, "database", cfg.DBName)

	if cfg.Env != "production" && cfg.Env != "prod" {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate runs schema auto-migration for all application models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Portfolio{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	slog.Info("Database migration completed")
	return nil
}

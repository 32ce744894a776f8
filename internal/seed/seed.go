package seed

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"talento/internal/models"
)

// Options controls how much demo data to create.
type Options struct {
	Users           int
	Posts           int
	CommentsPerPost int
	Password        string
}

// DefaultOptions returns a small demo dataset suitable for local development.
func DefaultOptions() Options {
	return Options{
		Users:           10,
		Posts:           25,
		CommentsPerPost: 3,
		Password:        "TalentoDemo1",
	}
}

// Run populates the database with demo users, event posts, comments and
// performer portfolios.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser(opts.Password)
		if err != nil {
			return fmt.Errorf("seeding user %d: %w", i, err)
		}
		users = append(users, user)

		// Roughly half the users are performers with portfolios.
		if i%2 == 0 {
			if _, err := f.CreatePortfolio(user); err != nil {
				return fmt.Errorf("seeding portfolio for user %d: %w", user.ID, err)
			}
		}
	}

	for i := 0; i < opts.Posts; i++ {
		post, err := f.CreatePost()
		if err != nil {
			return fmt.Errorf("seeding post %d: %w", i, err)
		}

		for j := 0; j < opts.CommentsPerPost && len(users) > 0; j++ {
			author := users[f.r.Intn(len(users))]
			if _, err := f.CreateComment(post, author); err != nil {
				return fmt.Errorf("seeding comment on post %d: %w", post.ID, err)
			}
		}
	}

	slog.Info("Seed complete",
		"users", opts.Users,
		"posts", opts.Posts,
		"comments_per_post", opts.CommentsPerPost,
	)
	return nil
}

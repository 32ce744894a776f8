// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"talento/internal/models"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var talentPool = []string{
	"Singer", "DJ", "Band", "Guitarist", "Host", "Magician",
	"Dancer", "Comedian", "Violinist", "Photographer",
}

var eventThemes = []string{
	"Garden Wedding", "Corporate Gala", "Birthday Bash", "Debut Night",
	"Anniversary Dinner", "Product Launch", "Christmas Party", "Reunion",
}

// CreateUser persists a user with a hashed password.
func (f *Factory) CreateUser(password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:       gofakeit.Name(),
		Email:      gofakeit.Email(),
		Password:   string(hashed),
		Profession: gofakeit.JobTitle(),
		Location:   gofakeit.City(),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs an event request with a realistic created_at spread
// over the last 60 days. It does not persist.
func (f *Factory) BuildPost() *models.Post {
	count := 1 + f.r.Intn(3)
	talents := make(models.Talents, 0, count)
	seen := make(map[string]bool, count)
	for len(talents) < count {
		talent := talentPool[f.r.Intn(len(talentPool))]
		if !seen[talent] {
			seen[talent] = true
			talents = append(talents, talent)
		}
	}

	startHour := 8 + f.r.Intn(12)
	post := &models.Post{
		ClientName:  gofakeit.Name(),
		EventName:   eventThemes[f.r.Intn(len(eventThemes))],
		StartTime:   fmt.Sprintf("%02d:00", startHour),
		EndTime:     fmt.Sprintf("%02d:00", (startHour+4)%24),
		Description: gofakeit.Paragraph(1, 3, 8, " "),
		Talents:     talents,
	}

	daysBack := f.r.Intn(60)
	post.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(f.r.Intn(24))*time.Hour -
			time.Duration(f.r.Intn(60))*time.Minute)
	return post
}

// CreatePost persists a generated event request.
func (f *Factory) CreatePost() (*models.Post, error) {
	post := f.BuildPost()
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment by user on post.
func (f *Factory) CreateComment(post *models.Post, user *models.User) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: gofakeit.Sentence(8 + f.r.Intn(10)),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreatePortfolio persists a portfolio for user.
func (f *Factory) CreatePortfolio(user *models.User) (*models.Portfolio, error) {
	portfolio := &models.Portfolio{
		UserID:      user.ID,
		EventName:   eventThemes[f.r.Intn(len(eventThemes))],
		ThemeName:   gofakeit.AdjectiveDescriptive() + " " + gofakeit.NounConcrete(),
		TalentName:  talentPool[f.r.Intn(len(talentPool))],
		Location:    gofakeit.City(),
		Description: gofakeit.Paragraph(1, 2, 8, " "),
		Rate:        float64(500 + f.r.Intn(50)*100),
	}
	if err := f.db.Create(portfolio).Error; err != nil {
		return nil, err
	}
	return portfolio, nil
}

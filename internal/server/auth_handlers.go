package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"talento/internal/models"
	"talento/internal/repository"
	"talento/internal/validation"
)

type SignupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Profession string `json:"profession"`
	Location   string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Signup registers a new account and returns an access token.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fields := make(map[string]string)
	if err := validation.ValidateName(req.Name); err != nil {
		fields["name"] = err.Error()
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		fields["email"] = err.Error()
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		fields["password"] = err.Error()
	}
	if len(fields) > 0 {
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewFieldValidationError(fields))
	}

	if _, err := s.userRepo.GetByEmail(c.UserContext(), req.Email); err == nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewValidationError("Email already registered"))
	} else if !repository.IsNotFound(err) {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
		Profession: req.Profession,
		Location:   req.Location,
	}
	if err := s.userRepo.Create(c.UserContext(), user); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(AuthResponse{Token: token, User: user})
}

// Login exchanges credentials for an access token.
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid credentials"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(AuthResponse{Token: token, User: user})
}

func (s *Server) generateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": fmt.Sprintf("%d", userID),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

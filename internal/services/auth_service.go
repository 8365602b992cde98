package services

import (
	"context"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	hasher PasswordHasher
	tokens *TokenService
}

func NewAuthService(db *gorm.DB, hasher PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{
		db:     db,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (uuid.UUID, error) {
	if req.Email == "" || req.Password == "" {
		return uuid.Nil, ErrMissingFields
	}

	if _, err := s.FindByEmail(ctx, req.Email); err == nil {
		return uuid.Nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return uuid.Nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return uuid.Nil, err
		}
		return uuid.Nil, errors.Wrap(err, "hash password")
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: hash,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, errors.Wrap(err, "create user")
	}

	return user.ID, nil
}

func (s *AuthService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

// VerifyCredentials returns ErrInvalidCredentials for both an unknown email
// and a wrong password. The two cases are only told apart in the logs.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			slog.Warn("login rejected", "reason", "user not found", "email", email)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Check(password, user.Password) {
		slog.Warn("login rejected", "reason", "invalid password", "email", email)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", ErrMissingFields
	}

	user, err := s.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return "", err
	}

	return s.tokens.Issue(user.ID, user.Email)
}

// Package users handles registration and profile lookup. There is no
// authentication layer; the phone number is the identity.
package users

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"tajiri/internal/models"
	"tajiri/internal/repositories"
)

var (
	ErrInvalidPhone = errors.New("phone must be a Kenyan mobile number")
	ErrMissingName  = errors.New("name is required")

	// 07XXXXXXXX, 2547XXXXXXXX or +2547XXXXXXXX.
	phonePattern = regexp.MustCompile(`^(?:\+?254|0)7\d{8}$`)
)

type Service struct {
	users repositories.UserRepository
}

func NewService(users repositories.UserRepository) *Service {
	return &Service{users: users}
}

// Register creates a user starting at the trust-score floor with the phone
// marked verified, since registration itself proves control of the number.
func (s *Service) Register(ctx context.Context, phone, name, email string) (*models.User, error) {
	phone = strings.TrimSpace(phone)
	name = strings.TrimSpace(name)

	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}
	if name == "" {
		return nil, ErrMissingName
	}

	user := &models.User{
		Phone:         phone,
		Name:          name,
		Email:         strings.TrimSpace(email),
		TrustScore:    models.TrustScoreFloor,
		PhoneVerified: true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByPhone fetches a user profile.
func (s *Service) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	return s.users.GetByPhone(strings.TrimSpace(phone))
}

package users

import (
	"context"
	"testing"

	"tajiri/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(user *models.User) error { return m.Called(user).Error(0) }

func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByPhone(phone string) (*models.User, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) Update(user *models.User) error { return m.Called(user).Error(0) }

func (m *MockUserRepo) UpdateTrustScore(userID uint, score int) error {
	return m.Called(userID, score).Error(0)
}

func TestService_Register(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Phone == "254712345678" &&
			u.TrustScore == models.TrustScoreFloor &&
			u.PhoneVerified && !u.IDVerified
	})).Return(nil)

	user, err := NewService(repo).Register(context.Background(), " 254712345678 ", "Wanjiku M", "w@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Wanjiku M", user.Name)
	repo.AssertExpectations(t)
}

func TestService_Register_Validation(t *testing.T) {
	svc := NewService(new(MockUserRepo))

	tests := []struct {
		name    string
		phone   string
		user    string
		wantErr error
	}{
		{"landline-style number", "0201234567", "Ann", ErrInvalidPhone},
		{"too short", "07123", "Ann", ErrInvalidPhone},
		{"empty phone", "", "Ann", ErrInvalidPhone},
		{"missing name", "0712345678", "  ", ErrMissingName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.phone, tt.user, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Register_AcceptedFormats(t *testing.T) {
	for _, phone := range []string{"0712345678", "254712345678", "+254712345678"} {
		repo := new(MockUserRepo)
		repo.On("Create", mock.Anything).Return(nil)

		_, err := NewService(repo).Register(context.Background(), phone, "Ann", "")
		assert.NoError(t, err, phone)
	}
}

package dashboard

import (
	"context"
	"testing"
	"time"

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

type MockTxRepo struct{ mock.Mock }

func (m *MockTxRepo) Create(tx *models.Transaction) error { return m.Called(tx).Error(0) }

func (m *MockTxRepo) GetByUser(userID uint, limit int) ([]models.Transaction, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTxRepo) GetByUserSince(userID uint, since time.Time) ([]models.Transaction, error) {
	args := m.Called(userID, since)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func TestService_GetSummary(t *testing.T) {
	users := new(MockUserRepo)
	txs := new(MockTxRepo)

	user := &models.User{TrustScore: 512}
	user.ID = 4
	users.On("GetByID", uint(4)).Return(user, nil)
	txs.On("GetByUser", uint(4), recentTransactionLimit).Return([]models.Transaction{
		{Amount: 1200, Type: models.TransactionTypeCredit},
		{Amount: 800, Type: models.TransactionTypeCredit},
		{Amount: 300, Type: models.TransactionTypeDebit},
		{Amount: -200, Type: models.TransactionTypeDebit},
		{Amount: 5000, Type: models.TransactionTypeUnknown},
	}, nil)

	summary, err := NewService(users, txs).GetSummary(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, 2000.0, summary.TotalIncome)
	// Debits count by magnitude regardless of sign.
	assert.Equal(t, 500.0, summary.TotalExpenses)
	assert.Equal(t, 1500.0, summary.Balance)
	assert.Equal(t, 512, summary.TrustScore)
	assert.Len(t, summary.Transactions, 5)
}

func TestService_GetTaxSummary(t *testing.T) {
	users := new(MockUserRepo)
	txs := new(MockTxRepo)

	user := &models.User{}
	user.ID = 4
	users.On("GetByID", uint(4)).Return(user, nil)
	txs.On("GetByUserSince", uint(4), mock.AnythingOfType("time.Time")).Return([]models.Transaction{
		{Amount: 10000, Type: models.TransactionTypeCredit},
		{Amount: 4000, Type: models.TransactionTypeDebit},
	}, nil)

	summary, err := NewService(users, txs).GetTaxSummary(context.Background(), 4, "Q2 2026")

	require.NoError(t, err)
	assert.Equal(t, "Q2 2026", summary.Period)
	assert.Equal(t, 10000.0, summary.TotalIncome)
	assert.Equal(t, 4000.0, summary.TotalExpenses)
	assert.Equal(t, 6000.0, summary.NetIncome)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestDefaultPeriod(t *testing.T) {
	assert.Equal(t, "Q1 2026", defaultPeriod(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Q3 2026", defaultPeriod(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Q4 2025", defaultPeriod(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}

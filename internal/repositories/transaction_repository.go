package repositories

import (
	"time"

	"tajiri/internal/models"

	"gorm.io/gorm"
)

// TransactionRepository provides access to transaction records.
type TransactionRepository interface {
	Create(tx *models.Transaction) error
	GetByUser(userID uint, limit int) ([]models.Transaction, error)
	GetByUserSince(userID uint, since time.Time) ([]models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *transactionRepository) GetByUser(userID uint, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&transactions).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return transactions, nil
}

func (r *transactionRepository) GetByUserSince(userID uint, since time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").Find(&transactions).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return transactions, nil
}

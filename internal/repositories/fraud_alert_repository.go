package repositories

import (
	"tajiri/internal/models"

	"gorm.io/gorm"
)

// FraudAlertRepository provides access to fraud alert records. Alerts are
// never deleted; user action only moves them through statuses.
type FraudAlertRepository interface {
	Create(alert *models.FraudAlert) error
	GetByID(id uint) (*models.FraudAlert, error)
	GetByUser(userID uint) ([]models.FraudAlert, error)
	UpdateStatus(id uint, status string) error
}

type fraudAlertRepository struct {
	db *gorm.DB
}

func NewFraudAlertRepository(db *gorm.DB) FraudAlertRepository {
	return &fraudAlertRepository{db: db}
}

func (r *fraudAlertRepository) Create(alert *models.FraudAlert) error {
	if err := r.db.Create(alert).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *fraudAlertRepository) GetByID(id uint) (*models.FraudAlert, error) {
	var alert models.FraudAlert
	if err := r.db.First(&alert, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAlertNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &alert, nil
}

func (r *fraudAlertRepository) GetByUser(userID uint) ([]models.FraudAlert, error) {
	var alerts []models.FraudAlert
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return alerts, nil
}

func (r *fraudAlertRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&models.FraudAlert{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

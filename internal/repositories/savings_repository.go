package repositories

import (
	"tajiri/internal/models"

	"gorm.io/gorm"
)

// MonthlyTotal is one month of summed savings contributions.
type MonthlyTotal struct {
	Month  string
	Amount float64
}

// SavingsRepository provides access to savings goals and contributions.
type SavingsRepository interface {
	CreateGoal(goal *models.SavingsGoal) error
	GetGoal(id uint) (*models.SavingsGoal, error)
	GetGoals(userID uint) ([]models.SavingsGoal, error)
	UpdateGoal(goal *models.SavingsGoal) error
	CreateContribution(contribution *models.SavingsContribution) error
	GetMonthlyTotals(userID uint, months int) ([]MonthlyTotal, error)
	GetTotalSaved(userID uint) (float64, error)
}

type savingsRepository struct {
	db *gorm.DB
}

func NewSavingsRepository(db *gorm.DB) SavingsRepository {
	return &savingsRepository{db: db}
}

func (r *savingsRepository) CreateGoal(goal *models.SavingsGoal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *savingsRepository) GetGoal(id uint) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := r.db.First(&goal, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrGoalNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &goal, nil
}

func (r *savingsRepository) GetGoals(userID uint) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	if err := r.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return goals, nil
}

func (r *savingsRepository) UpdateGoal(goal *models.SavingsGoal) error {
	if err := r.db.Save(goal).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *savingsRepository) CreateContribution(contribution *models.SavingsContribution) error {
	if err := r.db.Create(contribution).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *savingsRepository) GetMonthlyTotals(userID uint, months int) ([]MonthlyTotal, error) {
	var totals []MonthlyTotal
	err := r.db.Model(&models.SavingsContribution{}).
		Select("to_char(created_at, 'YYYY-MM') as month, COALESCE(SUM(amount), 0) as amount").
		Where("user_id = ? AND created_at >= NOW() - (? * INTERVAL '1 month')", userID, months).
		Group("month").
		Order("month").
		Scan(&totals).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return totals, nil
}

func (r *savingsRepository) GetTotalSaved(userID uint) (float64, error) {
	var total float64
	err := r.db.Model(&models.SavingsContribution{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, ErrDatabaseOperation
	}
	return total, nil
}

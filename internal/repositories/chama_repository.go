package repositories

import (
	"tajiri/internal/models"

	"gorm.io/gorm"
)

// UserChama is a chama joined with the member's own contribution.
type UserChama struct {
	models.ChamaGroup
	Contribution float64 `json:"contribution"`
	Role         string  `json:"role"`
}

// ChamaStats aggregates a user's community savings activity for the trust
// score.
type ChamaStats struct {
	ChamasJoined       int
	TotalContributions float64
	LeadershipRoles    int
	HelpedMembers      int
}

// ChamaRepository provides access to chama groups and memberships.
type ChamaRepository interface {
	CreateGroup(group *models.ChamaGroup) error
	GetGroup(id uint) (*models.ChamaGroup, error)
	AddMember(member *models.ChamaMember) error
	GetUserChamas(userID uint) ([]UserChama, error)
	GetStats(userID uint) (*ChamaStats, error)
}

type chamaRepository struct {
	db *gorm.DB
}

func NewChamaRepository(db *gorm.DB) ChamaRepository {
	return &chamaRepository{db: db}
}

func (r *chamaRepository) CreateGroup(group *models.ChamaGroup) error {
	if err := r.db.Create(group).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *chamaRepository) GetGroup(id uint) (*models.ChamaGroup, error) {
	var group models.ChamaGroup
	if err := r.db.First(&group, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrChamaNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &group, nil
}

func (r *chamaRepository) AddMember(member *models.ChamaMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *chamaRepository) GetUserChamas(userID uint) ([]UserChama, error) {
	var chamas []UserChama
	err := r.db.Model(&models.ChamaGroup{}).
		Select("chama_groups.*, chama_members.contribution, chama_members.role").
		Joins("JOIN chama_members ON chama_members.chama_id = chama_groups.id").
		Where("chama_members.user_id = ?", userID).
		Scan(&chamas).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return chamas, nil
}

func (r *chamaRepository) GetStats(userID uint) (*ChamaStats, error) {
	var members []models.ChamaMember
	if err := r.db.Where("user_id = ?", userID).Find(&members).Error; err != nil {
		return nil, ErrDatabaseOperation
	}

	stats := &ChamaStats{ChamasJoined: len(members)}
	for _, m := range members {
		stats.TotalContributions += m.Contribution
		if m.Role == models.ChamaRoleLeader {
			stats.LeadershipRoles++
		}
		stats.HelpedMembers += m.HelpedMembers
	}
	return stats, nil
}

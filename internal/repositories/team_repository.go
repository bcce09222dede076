package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	model "taskflow.com/taskflow/internal/models"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *TeamRepository) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).Preload("Users").Find(&teams).Error
	return teams, err
}

// ExistsByName backs the creation-time uniqueness check; the name match is
// case-insensitive.
func (r *TeamRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Team{}).
		Where("LOWER(teamname) = ?", strings.ToLower(name)).
		Count(&count).Error
	return count > 0, err
}

func (r *TeamRepository) Search(ctx context.Context, term string, limit int) ([]model.Team, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var teams []model.Team
	err := r.db.WithContext(ctx).
		Preload("Users").
		Where("LOWER(teamname) LIKE ?", pattern).
		Limit(limit).
		Find(&teams).Error
	return teams, err
}

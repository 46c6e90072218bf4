package repo

import (
	"context"

	"gorm.io/gorm"

	"go-users-api/internal/domain"
)

type StateRepo struct{ db *gorm.DB }

func NewStateRepo(db *gorm.DB) *StateRepo { return &StateRepo{db: db} }

func (r *StateRepo) Create(ctx context.Context, s *domain.State) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StateRepo) List(ctx context.Context) ([]domain.State, error) {
	var states []domain.State
	err := r.db.WithContext(ctx).Order("id").Find(&states).Error
	return states, err
}

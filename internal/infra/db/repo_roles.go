package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fenixAlex88/technical-support/internal/domain"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model RoleModel
	err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return &domain.Role{ID: model.ID, Name: model.Name}, nil
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []RoleModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	roles := make([]domain.Role, 0, len(models))
	for _, model := range models {
		roles = append(roles, domain.Role{ID: model.ID, Name: model.Name})
	}
	return roles, nil
}

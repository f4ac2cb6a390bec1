package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fenixAlex88/technical-support/internal/domain"
	"github.com/fenixAlex88/technical-support/internal/usecase"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model UserModel
	err := r.db.WithContext(ctx).Preload("Roles").First(&model, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	user := userFromModel(model)
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model UserModel
	err := r.db.WithContext(ctx).Preload("Roles").First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	user := userFromModel(model)
	return &user, nil
}

func (r *UserRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if r.db == nil {
		return false, errDBUnavailable
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&UserModel{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists the user together with its role associations. Role rows
// are looked up, never created here: registration resolved them already.
func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if r.db == nil {
		return domain.User{}, errDBUnavailable
	}
	var roles []RoleModel
	if len(user.Roles) > 0 {
		if err := r.db.WithContext(ctx).Where("name IN ?", user.Roles).Find(&roles).Error; err != nil {
			return domain.User{}, err
		}
		if len(roles) != len(user.Roles) {
			return domain.User{}, domain.ErrRoleNotFound
		}
	}
	model := UserModel{
		Name:       user.Name,
		Password:   user.PasswordHash,
		Email:      user.Email,
		TelegramID: user.TelegramID,
		Roles:      roles,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.User{}, err
	}
	return userFromModel(model), nil
}

func (r *UserRepository) List(ctx context.Context, query usecase.ListQuery) ([]domain.User, int64, error) {
	if r.db == nil {
		return nil, 0, errDBUnavailable
	}
	tx := r.db.WithContext(ctx).Model(&UserModel{})
	if len(query.Roles) > 0 {
		tx = tx.Joins("JOIN user_roles ON user_roles.user_model_id = users.id").
			Joins("JOIN roles ON roles.id = user_roles.role_model_id").
			Where("roles.name IN ?", query.Roles).
			Distinct("users.*")
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	order := "name asc"
	if query.Descending {
		order = "name desc"
	}
	var models []UserModel
	err := tx.Preload("Roles").
		Order(order).
		Offset(query.Page * query.Size).
		Limit(query.Size).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}
	users := make([]domain.User, 0, len(models))
	for _, model := range models {
		users = append(users, userFromModel(model))
	}
	return users, total, nil
}

func userFromModel(model UserModel) domain.User {
	roles := make([]string, 0, len(model.Roles))
	for _, role := range model.Roles {
		roles = append(roles, role.Name)
	}
	return domain.User{
		ID:           model.ID,
		Name:         model.Name,
		PasswordHash: model.Password,
		Email:        model.Email,
		TelegramID:   model.TelegramID,
		Roles:        roles,
	}
}

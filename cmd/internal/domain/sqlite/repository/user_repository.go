package repository

import (
	"errors"
	"schedulr/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (u *DefaultUserRepository) FindByID(id int) (*entity.User, error) {
	var user entity.User
	err := u.db.Preload("Roles").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (u *DefaultUserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := u.db.Preload("Roles").Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (u *DefaultUserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := u.db.Preload("Roles").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (u *DefaultUserRepository) FindAll() ([]*entity.User, error) {
	var users []*entity.User
	err := u.db.Preload("Roles").Find(&users).Error
	return users, err
}

func (u *DefaultUserRepository) Save(user *entity.User) error {
	return u.db.Save(user).Error
}

func (u *DefaultUserRepository) SetRoles(user *entity.User, roles []entity.Role) error {
	return u.db.Model(user).Association("Roles").Replace(roles)
}

func (u *DefaultUserRepository) Delete(user *entity.User) error {
	return u.db.Delete(user).Error
}

func (u *DefaultUserRepository) FindRole(id string) (*entity.Role, error) {
	var role entity.Role
	err := u.db.First(&role, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &role, err
}

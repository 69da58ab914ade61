package repository

import (
	"errors"
	"schedulr/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultEquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *DefaultEquipmentRepository {
	return &DefaultEquipmentRepository{db: db}
}

func (e *DefaultEquipmentRepository) FindByID(id int) (*entity.Equipment, error) {
	var equipment entity.Equipment
	err := e.db.First(&equipment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &equipment, err
}

func (e *DefaultEquipmentRepository) FindAll() ([]*entity.Equipment, error) {
	var equipment []*entity.Equipment
	err := e.db.Find(&equipment).Error
	return equipment, err
}

func (e *DefaultEquipmentRepository) Save(equipment *entity.Equipment) error {
	return e.db.Save(equipment).Error
}

func (e *DefaultEquipmentRepository) Delete(equipment *entity.Equipment) error {
	return e.db.Delete(equipment).Error
}

package repository

import (
	"errors"
	"schedulr/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultTimeSlotRepository struct {
	db *gorm.DB
}

func NewTimeSlotRepository(db *gorm.DB) *DefaultTimeSlotRepository {
	return &DefaultTimeSlotRepository{db: db}
}

func (t *DefaultTimeSlotRepository) FindByID(id int) (*entity.TimeSlot, error) {
	var slot entity.TimeSlot
	err := t.db.First(&slot, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &slot, err
}

func (t *DefaultTimeSlotRepository) FindAll() ([]*entity.TimeSlot, error) {
	var slots []*entity.TimeSlot
	err := t.db.Order("start_time asc").Find(&slots).Error
	return slots, err
}

func (t *DefaultTimeSlotRepository) Save(slot *entity.TimeSlot) error {
	return t.db.Save(slot).Error
}

func (t *DefaultTimeSlotRepository) Delete(slot *entity.TimeSlot) error {
	return t.db.Delete(slot).Error
}

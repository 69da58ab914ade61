package repository

import (
	"errors"
	"schedulr/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *DefaultReservationRepository {
	return &DefaultReservationRepository{db: db}
}

func (r *DefaultReservationRepository) FindByID(id int) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := r.db.
		Preload("User").
		Preload("Equipment").
		Preload("TimeSlot").
		First(&reservation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &reservation, err
}

// FindAll returns reservations in insertion order with their display
// relations loaded. An empty query matches everything; otherwise the query
// is matched against username, equipment name/description and timeslot
// description. page < 1 disables pagination.
func (r *DefaultReservationRepository) FindAll(query string, page, pageSize int) ([]*entity.Reservation, error) {
	tx := r.db.Model(&entity.Reservation{}).
		Preload("User.Roles").
		Preload("Equipment").
		Preload("TimeSlot").
		Order("reservations.id asc")

	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.
			Joins("JOIN users ON users.id = reservations.user_id").
			Joins("JOIN equipment ON equipment.id = reservations.equipment_id").
			Joins("JOIN timeslots ON timeslots.id = reservations.time_slot_id").
			Where(
				"users.username LIKE ? OR equipment.name LIKE ? OR equipment.description LIKE ? OR timeslots.description LIKE ?",
				pattern, pattern, pattern, pattern,
			)
	}

	if page > 0 {
		if pageSize < 1 {
			pageSize = 10
		}
		tx = tx.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	var reservations []*entity.Reservation
	err := tx.Find(&reservations).Error
	return reservations, err
}

func (r *DefaultReservationRepository) FindByUserID(id int) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	err := r.db.
		Preload("Equipment").
		Preload("TimeSlot").
		Where("user_id = ?", id).
		Find(&reservations).Error
	return reservations, err
}

func (r *DefaultReservationRepository) IsEquipmentAvailable(equipmentID, timeSlotID int) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Reservation{}).
		Where("equipment_id = ?", equipmentID).
		Where("time_slot_id = ?", timeSlotID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *DefaultReservationRepository) IsUserFree(userID, timeSlotID int) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Reservation{}).
		Where("user_id = ?", userID).
		Where("time_slot_id = ?", timeSlotID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *DefaultReservationRepository) Save(reservation *entity.Reservation) error {
	err := r.db.Save(reservation).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

func (r *DefaultReservationRepository) Delete(reservation *entity.Reservation) error {
	return r.db.Delete(reservation).Error
}

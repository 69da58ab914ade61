package service

// Rejection reasons surfaced to clients. The wording is part of the API
// surface and is asserted by tests.
const (
	MsgIDsRequired       = "User ID, equipment ID, and timeslot ID are required."
	MsgUserNotFound      = "User not found."
	MsgEquipmentNotFound = "Equipment not found."
	MsgTimeslotNotFound  = "Timeslot not found."
	MsgEquipmentConflict = "Equipment already reserved for this timeslot."
	MsgUserConflict      = "User already has a reservation for this timeslot."
	MsgReservationValid  = "Reservation is valid."
)

// ReservationValidator decides whether a proposed reservation is admissible
// given current store state. It is read-only: business-rule failures come
// back as (false, reason), only unexpected store errors are returned as
// errors.
type ReservationValidator struct {
	UserRepo        UserRepository
	EquipmentRepo   EquipmentRepository
	TimeSlotRepo    TimeSlotRepository
	ReservationRepo ReservationRepository
}

func NewReservationValidator(userRepo UserRepository, equipmentRepo EquipmentRepository, slotRepo TimeSlotRepository, reservationRepo ReservationRepository) *ReservationValidator {
	return &ReservationValidator{
		UserRepo:        userRepo,
		EquipmentRepo:   equipmentRepo,
		TimeSlotRepo:    slotRepo,
		ReservationRepo: reservationRepo,
	}
}

// Validate checks a reservation request. reservationID is zero for a new
// reservation; a non-zero id marks an update to an existing reservation, for
// which the conflict checks are skipped: an owner editing their own slot must
// not self-conflict, and the store's unique indexes still reject a genuine
// double-booking at write time.
func (v *ReservationValidator) Validate(userID, equipmentID, timeSlotID, reservationID int) (bool, string, error) {
	if userID == 0 || equipmentID == 0 || timeSlotID == 0 {
		return false, MsgIDsRequired, nil
	}

	user, err := v.UserRepo.FindByID(userID)
	if err != nil {
		return false, "", err
	}
	if user == nil {
		return false, MsgUserNotFound, nil
	}

	equipment, err := v.EquipmentRepo.FindByID(equipmentID)
	if err != nil {
		return false, "", err
	}
	if equipment == nil {
		return false, MsgEquipmentNotFound, nil
	}

	slot, err := v.TimeSlotRepo.FindByID(timeSlotID)
	if err != nil {
		return false, "", err
	}
	if slot == nil {
		return false, MsgTimeslotNotFound, nil
	}

	if reservationID != 0 {
		return true, MsgReservationValid, nil
	}

	available, err := v.ReservationRepo.IsEquipmentAvailable(equipmentID, timeSlotID)
	if err != nil {
		return false, "", err
	}
	if !available {
		return false, MsgEquipmentConflict, nil
	}

	free, err := v.ReservationRepo.IsUserFree(userID, timeSlotID)
	if err != nil {
		return false, "", err
	}
	if !free {
		return false, MsgUserConflict, nil
	}

	return true, MsgReservationValid, nil
}

package service

import (
	"errors"
	"fmt"
	"net/http"
	"schedulr/cmd/internal/domain/entity"
	"schedulr/cmd/internal/domain/sqlite/repository"
	"schedulr/cmd/internal/mailer"
	"schedulr/cmd/internal/utils"
	"schedulr/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ReservationRepository interface {
	FindByID(id int) (*entity.Reservation, error)
	FindAll(query string, page, pageSize int) ([]*entity.Reservation, error)
	FindByUserID(id int) ([]*entity.Reservation, error)
	IsEquipmentAvailable(equipmentID, timeSlotID int) (bool, error)
	IsUserFree(userID, timeSlotID int) (bool, error)
	Save(reservation *entity.Reservation) error
	Delete(reservation *entity.Reservation) error
}

type ReservationRequest struct {
	EquipmentID int `json:"equipment_id" validate:"required"`
	TimeSlotID  int `json:"time_slot_id" validate:"required"`
}

// ReservationResponse carries the persisted row plus the joined display
// fields clients render in listings.
type ReservationResponse struct {
	ID                   int    `json:"id"`
	UserID               int    `json:"user_id"`
	EquipmentID          int    `json:"equipment_id"`
	TimeSlotID           int    `json:"time_slot_id"`
	Username             string `json:"username"`
	EquipmentName        string `json:"equipment_name"`
	EquipmentDescription string `json:"equipment_description"`
	StartTime            string `json:"start_time"`
	EndTime              string `json:"end_time"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
}

type DefaultReservationService struct {
	ReservationRepo ReservationRepository
	Validator       *ReservationValidator
	Validate        *validator.Validate
	Mailer          *mailer.Mailer
}

func NewReservationService(reservationRepo ReservationRepository, resValidator *ReservationValidator, validate *validator.Validate, m *mailer.Mailer) *DefaultReservationService {
	return &DefaultReservationService{
		ReservationRepo: reservationRepo,
		Validator:       resValidator,
		Validate:        validate,
		Mailer:          m,
	}
}

func (s *DefaultReservationService) GetReservations(query string, page, pageSize int) ([]*ReservationResponse, apierror.ErrorResponse) {
	reservations, err := s.ReservationRepo.FindAll(query, page, pageSize)
	if err != nil {
		log.Errorf("failed to fetch reservations: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		response[i] = toReservationResponse(reservation)
	}
	return response, nil
}

func (s *DefaultReservationService) GetReservation(id int) (*ReservationResponse, apierror.ErrorResponse) {
	reservation, err := s.ReservationRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch reservation %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if reservation == nil {
		return nil, apierror.NewSimple(http.StatusNotFound, "Reservation not found.")
	}
	return toReservationResponse(reservation), nil
}

// CreateReservation books equipment for the caller. The validator pre-check
// produces the user-facing rejection, the unique indexes settle any race the
// pre-check missed.
func (s *DefaultReservationService) CreateReservation(req *ReservationRequest, caller *entity.User) (*ReservationResponse, apierror.ErrorResponse) {
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.NewSimple(http.StatusBadRequest, MsgIDsRequired)
	}

	valid, reason, err := s.Validator.Validate(caller.ID, req.EquipmentID, req.TimeSlotID, 0)
	if err != nil {
		log.Errorf("failed to validate reservation for user %d: %v", caller.ID, err)
		return nil, apierror.InternalServerError
	}
	if !valid {
		return nil, reasonToError(reason)
	}

	now := utils.NowUTC()
	reservation := &entity.Reservation{
		UserID:      caller.ID,
		EquipmentID: req.EquipmentID,
		TimeSlotID:  req.TimeSlotID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.ReservationRepo.Save(reservation); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, s.conflictError(caller.ID, req.EquipmentID, req.TimeSlotID)
		}
		log.Errorf("failed to save reservation: %v", err)
		return nil, apierror.InternalServerError
	}

	// Reload for the joined display fields.
	saved, err := s.ReservationRepo.FindByID(reservation.ID)
	if err != nil || saved == nil {
		log.Errorf("failed to reload reservation %d: %v", reservation.ID, err)
		return nil, apierror.InternalServerError
	}

	s.notifyConfirmation(saved, caller)
	return toReservationResponse(saved), nil
}

// UpdateReservation overwrites the equipment and timeslot of an existing
// reservation. Only existence is re-validated; see ReservationValidator.
func (s *DefaultReservationService) UpdateReservation(id int, req *ReservationRequest, caller *entity.User) (*ReservationResponse, apierror.ErrorResponse) {
	reservation, apierr := s.loadOwned(id, caller)
	if apierr != nil {
		return nil, apierr
	}

	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.NewSimple(http.StatusBadRequest, MsgIDsRequired)
	}

	valid, reason, err := s.Validator.Validate(reservation.UserID, req.EquipmentID, req.TimeSlotID, id)
	if err != nil {
		log.Errorf("failed to validate reservation %d update: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if !valid {
		return nil, reasonToError(reason)
	}

	reservation.EquipmentID = req.EquipmentID
	reservation.TimeSlotID = req.TimeSlotID
	reservation.UpdatedAt = utils.NowUTC()

	// Drop the preloaded relations so the stale structs cannot write the
	// old foreign keys back during Save.
	reservation.User = entity.User{}
	reservation.Equipment = entity.Equipment{}
	reservation.TimeSlot = entity.TimeSlot{}

	if err := s.ReservationRepo.Save(reservation); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, s.conflictError(reservation.UserID, req.EquipmentID, req.TimeSlotID)
		}
		log.Errorf("failed to update reservation %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	updated, err := s.ReservationRepo.FindByID(id)
	if err != nil || updated == nil {
		log.Errorf("failed to reload reservation %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toReservationResponse(updated), nil
}

func (s *DefaultReservationService) DeleteReservation(id int, caller *entity.User) apierror.ErrorResponse {
	reservation, apierr := s.loadOwned(id, caller)
	if apierr != nil {
		return apierr
	}

	if err := s.ReservationRepo.Delete(reservation); err != nil {
		log.Errorf("failed to delete reservation %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

// loadOwned fetches the reservation and enforces the owner gate: missing is
// a 404, and only the owner or an admin may touch it.
func (s *DefaultReservationService) loadOwned(id int, caller *entity.User) (*entity.Reservation, apierror.ErrorResponse) {
	reservation, err := s.ReservationRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch reservation %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if reservation == nil {
		return nil, apierror.NewSimple(http.StatusNotFound, "Reservation not found.")
	}
	if reservation.UserID != caller.ID && !caller.HasRole(entity.RoleAdmin) {
		log.Warnf("user %s attempted to modify reservation %d they do not own", caller.Username, id)
		return nil, apierror.NotOwnerError
	}
	return reservation, nil
}

// conflictError picks the user-facing message for a duplicate-key rejection
// by checking which side of the booking is taken.
func (s *DefaultReservationService) conflictError(userID, equipmentID, timeSlotID int) apierror.ErrorResponse {
	available, err := s.ReservationRepo.IsEquipmentAvailable(equipmentID, timeSlotID)
	if err == nil && !available {
		return apierror.NewSimple(http.StatusBadRequest, MsgEquipmentConflict)
	}
	return apierror.NewSimple(http.StatusBadRequest, MsgUserConflict)
}

func (s *DefaultReservationService) notifyConfirmation(reservation *entity.Reservation, caller *entity.User) {
	if s.Mailer == nil || caller.Email == nil {
		return
	}
	name := caller.Username
	if caller.FullName != nil {
		name = *caller.FullName
	}
	details := fmt.Sprintf("%s from %s to %s",
		reservation.Equipment.Name,
		utils.FormatEpoch(reservation.TimeSlot.StartTime),
		utils.FormatEpoch(reservation.TimeSlot.EndTime))
	s.Mailer.SendReservationConfirmation(*caller.Email, name, details)
}

// reasonToError maps validator rejections onto the HTTP error taxonomy:
// missing ids and conflicts are 400s, unknown references are 404s.
func reasonToError(reason string) apierror.ErrorResponse {
	switch reason {
	case MsgUserNotFound, MsgEquipmentNotFound, MsgTimeslotNotFound:
		return apierror.NewSimple(http.StatusNotFound, reason)
	default:
		return apierror.NewSimple(http.StatusBadRequest, reason)
	}
}

func toReservationResponse(reservation *entity.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                   reservation.ID,
		UserID:               reservation.UserID,
		EquipmentID:          reservation.EquipmentID,
		TimeSlotID:           reservation.TimeSlotID,
		Username:             reservation.User.Username,
		EquipmentName:        reservation.Equipment.Name,
		EquipmentDescription: reservation.Equipment.Description,
		StartTime:            utils.FormatEpoch(reservation.TimeSlot.StartTime),
		EndTime:              utils.FormatEpoch(reservation.TimeSlot.EndTime),
		CreatedAt:            utils.FormatEpoch(reservation.CreatedAt),
		UpdatedAt:            utils.FormatEpoch(reservation.UpdatedAt),
	}
}

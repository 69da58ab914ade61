package service

import (
	"net/http"
	"schedulr/cmd/internal/domain/entity"
	"schedulr/cmd/internal/utils"
	"schedulr/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type TimeSlotRepository interface {
	FindByID(id int) (*entity.TimeSlot, error)
	FindAll() ([]*entity.TimeSlot, error)
	Save(slot *entity.TimeSlot) error
	Delete(slot *entity.TimeSlot) error
}

type TimeSlotRequest struct {
	StartTime   string `json:"start_time" validate:"required,iso8601"`
	EndTime     string `json:"end_time" validate:"required,iso8601"`
	Description string `json:"description" validate:"max=512"`
}

type TimeSlotResponse struct {
	ID          int    `json:"id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

type DefaultTimeSlotService struct {
	TimeSlotRepo TimeSlotRepository
	Validate     *validator.Validate
}

func NewTimeSlotService(slotRepo TimeSlotRepository, validate *validator.Validate) *DefaultTimeSlotService {
	return &DefaultTimeSlotService{TimeSlotRepo: slotRepo, Validate: validate}
}

func (t *DefaultTimeSlotService) GetTimeSlots() ([]*TimeSlotResponse, apierror.ErrorResponse) {
	slots, err := t.TimeSlotRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch timeslots: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*TimeSlotResponse, len(slots))
	for i, slot := range slots {
		response[i] = toTimeSlotResponse(slot)
	}
	return response, nil
}

func (t *DefaultTimeSlotService) GetTimeSlot(id int) (*TimeSlotResponse, apierror.ErrorResponse) {
	slot, err := t.TimeSlotRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch timeslot %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if slot == nil {
		return nil, apierror.NewSimple(http.StatusNotFound, MsgTimeslotNotFound)
	}
	return toTimeSlotResponse(slot), nil
}

func (t *DefaultTimeSlotService) CreateTimeSlot(req *TimeSlotRequest) (*TimeSlotResponse, apierror.ErrorResponse) {
	slot, apierr := t.slotFromRequest(req)
	if apierr != nil {
		return nil, apierr
	}

	if err := t.TimeSlotRepo.Save(slot); err != nil {
		log.Errorf("failed to create timeslot: %v", err)
		return nil, apierror.InternalServerError
	}
	return toTimeSlotResponse(slot), nil
}

func (t *DefaultTimeSlotService) UpdateTimeSlot(id int, req *TimeSlotRequest) (*TimeSlotResponse, apierror.ErrorResponse) {
	parsed, apierr := t.slotFromRequest(req)
	if apierr != nil {
		return nil, apierr
	}

	slot, err := t.TimeSlotRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch timeslot %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if slot == nil {
		return nil, apierror.NewSimple(http.StatusNotFound, MsgTimeslotNotFound)
	}

	slot.StartTime = parsed.StartTime
	slot.EndTime = parsed.EndTime
	slot.Description = parsed.Description
	if err := t.TimeSlotRepo.Save(slot); err != nil {
		log.Errorf("failed to update timeslot %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toTimeSlotResponse(slot), nil
}

func (t *DefaultTimeSlotService) DeleteTimeSlot(id int) apierror.ErrorResponse {
	slot, err := t.TimeSlotRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch timeslot %d: %v", id, err)
		return apierror.InternalServerError
	}
	if slot == nil {
		return apierror.NewSimple(http.StatusNotFound, MsgTimeslotNotFound)
	}

	if err := t.TimeSlotRepo.Delete(slot); err != nil {
		log.Errorf("failed to delete timeslot %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (t *DefaultTimeSlotService) slotFromRequest(req *TimeSlotRequest) (*entity.TimeSlot, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := t.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	start, err := utils.FromEpoch(req.StartTime)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}
	end, err := utils.FromEpoch(req.EndTime)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}
	if start >= end {
		return nil, apierror.NewSimple(http.StatusBadRequest, "Start time must be before end time.")
	}

	return &entity.TimeSlot{
		StartTime:   start,
		EndTime:     end,
		Description: req.Description,
	}, nil
}

func toTimeSlotResponse(slot *entity.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:          slot.ID,
		StartTime:   utils.FormatEpoch(slot.StartTime),
		EndTime:     utils.FormatEpoch(slot.EndTime),
		Description: slot.Description,
	}
}

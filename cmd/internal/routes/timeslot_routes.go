package routes

import (
	"net/http"
	"schedulr/cmd/internal/service"
	"schedulr/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type TimeSlotService interface {
	GetTimeSlots() ([]*service.TimeSlotResponse, apierror.ErrorResponse)
	GetTimeSlot(id int) (*service.TimeSlotResponse, apierror.ErrorResponse)
	CreateTimeSlot(req *service.TimeSlotRequest) (*service.TimeSlotResponse, apierror.ErrorResponse)
	UpdateTimeSlot(id int, req *service.TimeSlotRequest) (*service.TimeSlotResponse, apierror.ErrorResponse)
	DeleteTimeSlot(id int) apierror.ErrorResponse
}

type DefaultTimeSlotRoute struct {
	TimeSlotService TimeSlotService
}

func NewTimeSlotDefault(slotService TimeSlotService) *DefaultTimeSlotRoute {
	return &DefaultTimeSlotRoute{TimeSlotService: slotService}
}

func (t *DefaultTimeSlotRoute) GetTimeSlots(c echo.Context) error {
	slots, apierr := t.TimeSlotService.GetTimeSlots()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"timeslots": slots}
	return c.JSON(http.StatusOK, &resp)
}

func (t *DefaultTimeSlotRoute) GetTimeSlot(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	slot, apierr := t.TimeSlotService.GetTimeSlot(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, slot)
}

func (t *DefaultTimeSlotRoute) CreateTimeSlot(c echo.Context) error {
	var req service.TimeSlotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	slot, apierr := t.TimeSlotService.CreateTimeSlot(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Timeslot successfully created.", "timeslot": slot}
	return c.JSON(http.StatusCreated, &resp)
}

func (t *DefaultTimeSlotRoute) UpdateTimeSlot(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.TimeSlotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	slot, apierr := t.TimeSlotService.UpdateTimeSlot(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Timeslot successfully updated.", "timeslot": slot}
	return c.JSON(http.StatusOK, &resp)
}

func (t *DefaultTimeSlotRoute) DeleteTimeSlot(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := t.TimeSlotService.DeleteTimeSlot(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Timeslot successfully deleted."}
	return c.JSON(http.StatusOK, &resp)
}

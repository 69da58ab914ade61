package routes

import (
	"net/http"
	"schedulr/cmd/internal/service"
	"schedulr/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type EquipmentService interface {
	GetEquipmentList() ([]*service.EquipmentResponse, apierror.ErrorResponse)
	GetEquipment(id int) (*service.EquipmentResponse, apierror.ErrorResponse)
	CreateEquipment(req *service.EquipmentRequest) (*service.EquipmentResponse, apierror.ErrorResponse)
	UpdateEquipment(id int, req *service.EquipmentRequest) (*service.EquipmentResponse, apierror.ErrorResponse)
	DeleteEquipment(id int) apierror.ErrorResponse
}

type DefaultEquipmentRoute struct {
	EquipmentService EquipmentService
}

func NewEquipmentDefault(equipmentService EquipmentService) *DefaultEquipmentRoute {
	return &DefaultEquipmentRoute{EquipmentService: equipmentService}
}

func (e *DefaultEquipmentRoute) GetEquipmentList(c echo.Context) error {
	equipment, apierr := e.EquipmentService.GetEquipmentList()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"equipment": equipment}
	return c.JSON(http.StatusOK, &resp)
}

func (e *DefaultEquipmentRoute) GetEquipment(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	equipment, apierr := e.EquipmentService.GetEquipment(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, equipment)
}

func (e *DefaultEquipmentRoute) CreateEquipment(c echo.Context) error {
	var req service.EquipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	equipment, apierr := e.EquipmentService.CreateEquipment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Equipment successfully created.", "equipment": equipment}
	return c.JSON(http.StatusCreated, &resp)
}

func (e *DefaultEquipmentRoute) UpdateEquipment(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.EquipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	equipment, apierr := e.EquipmentService.UpdateEquipment(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Equipment successfully updated.", "equipment": equipment}
	return c.JSON(http.StatusOK, &resp)
}

func (e *DefaultEquipmentRoute) DeleteEquipment(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := e.EquipmentService.DeleteEquipment(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Equipment successfully deleted."}
	return c.JSON(http.StatusOK, &resp)
}

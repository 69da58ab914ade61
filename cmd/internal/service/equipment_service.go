package service

import (
	"fmt"
	"net/http"
	"schedulr/cmd/internal/domain/entity"
	"schedulr/cmd/internal/utils"
	"schedulr/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type EquipmentRepository interface {
	FindByID(id int) (*entity.Equipment, error)
	FindAll() ([]*entity.Equipment, error)
	Save(equipment *entity.Equipment) error
	Delete(equipment *entity.Equipment) error
}

type EquipmentRequest struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description" validate:"required,max=512"`
}

type EquipmentResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type DefaultEquipmentService struct {
	EquipmentRepo EquipmentRepository
	Validate      *validator.Validate
}

func NewEquipmentService(equipmentRepo EquipmentRepository, validate *validator.Validate) *DefaultEquipmentService {
	return &DefaultEquipmentService{EquipmentRepo: equipmentRepo, Validate: validate}
}

func (e *DefaultEquipmentService) GetEquipmentList() ([]*EquipmentResponse, apierror.ErrorResponse) {
	equipment, err := e.EquipmentRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch equipment list: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*EquipmentResponse, len(equipment))
	for i, item := range equipment {
		response[i] = toEquipmentResponse(item)
	}
	return response, nil
}

func (e *DefaultEquipmentService) GetEquipment(id int) (*EquipmentResponse, apierror.ErrorResponse) {
	equipment, err := e.EquipmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch equipment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if equipment == nil {
		return nil, equipmentNotFound(id)
	}
	return toEquipmentResponse(equipment), nil
}

func (e *DefaultEquipmentService) CreateEquipment(req *EquipmentRequest) (*EquipmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if req.Name == "" || req.Description == "" {
		return nil, apierror.NewSimple(http.StatusBadRequest, "A name and description are required.")
	}
	if err := e.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	now := utils.NowUTC()
	equipment := &entity.Equipment{
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := e.EquipmentRepo.Save(equipment); err != nil {
		log.Errorf("failed to create equipment: %v", err)
		return nil, apierror.InternalServerError
	}
	return toEquipmentResponse(equipment), nil
}

func (e *DefaultEquipmentService) UpdateEquipment(id int, req *EquipmentRequest) (*EquipmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if req.Name == "" || req.Description == "" {
		return nil, apierror.NewSimple(http.StatusBadRequest, "A name and description are required.")
	}
	if err := e.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	equipment, err := e.EquipmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch equipment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if equipment == nil {
		return nil, equipmentNotFound(id)
	}

	equipment.Name = req.Name
	equipment.Description = req.Description
	equipment.UpdatedAt = utils.NowUTC()
	if err := e.EquipmentRepo.Save(equipment); err != nil {
		log.Errorf("failed to update equipment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toEquipmentResponse(equipment), nil
}

func (e *DefaultEquipmentService) DeleteEquipment(id int) apierror.ErrorResponse {
	equipment, err := e.EquipmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch equipment %d: %v", id, err)
		return apierror.InternalServerError
	}
	if equipment == nil {
		return equipmentNotFound(id)
	}

	if err := e.EquipmentRepo.Delete(equipment); err != nil {
		log.Errorf("failed to delete equipment %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func equipmentNotFound(id int) apierror.ErrorResponse {
	return apierror.NewSimple(http.StatusNotFound, fmt.Sprintf("Equipment with id %d does not exist.", id))
}

func toEquipmentResponse(equipment *entity.Equipment) *EquipmentResponse {
	return &EquipmentResponse{
		ID:          equipment.ID,
		Name:        equipment.Name,
		Description: equipment.Description,
		CreatedAt:   utils.FormatEpoch(equipment.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(equipment.UpdatedAt),
	}
}

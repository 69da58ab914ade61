package routes

import (
	"net/http"
	"schedulr/cmd/internal/domain/entity"
	"schedulr/cmd/internal/service"
	"schedulr/cmd/internal/utils/apierror"
	"strconv"

	"github.com/labstack/echo/v4"
)

type ReservationService interface {
	GetReservations(query string, page, pageSize int) ([]*service.ReservationResponse, apierror.ErrorResponse)
	GetReservation(id int) (*service.ReservationResponse, apierror.ErrorResponse)
	CreateReservation(req *service.ReservationRequest, caller *entity.User) (*service.ReservationResponse, apierror.ErrorResponse)
	UpdateReservation(id int, req *service.ReservationRequest, caller *entity.User) (*service.ReservationResponse, apierror.ErrorResponse)
	DeleteReservation(id int, caller *entity.User) apierror.ErrorResponse
}

type DefaultReservationRoute struct {
	ReservationService ReservationService
}

func NewReservationDefault(reservationService ReservationService) *DefaultReservationRoute {
	return &DefaultReservationRoute{ReservationService: reservationService}
}

func (r *DefaultReservationRoute) GetReservations(c echo.Context) error {
	query := c.QueryParam("q")
	page := intQueryParam(c, "page", 0)
	pageSize := intQueryParam(c, "page_size", 10)

	reservations, apierr := r.ReservationService.GetReservations(query, page, pageSize)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"reservations": reservations}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultReservationRoute) GetReservation(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	reservation, apierr := r.ReservationService.GetReservation(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, reservation)
}

func (r *DefaultReservationRoute) CreateReservation(c echo.Context) error {
	var req service.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	caller, ok := CallerFromCtx(c)
	if !ok {
		return c.JSON(apierror.NotLoggedInError.Code(), apierror.NotLoggedInError)
	}

	reservation, apierr := r.ReservationService.CreateReservation(&req, caller)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Reservation successfully created.", "reservation": reservation}
	return c.JSON(http.StatusCreated, &resp)
}

func (r *DefaultReservationRoute) UpdateReservation(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	caller, ok := CallerFromCtx(c)
	if !ok {
		return c.JSON(apierror.NotLoggedInError.Code(), apierror.NotLoggedInError)
	}

	reservation, apierr := r.ReservationService.UpdateReservation(id, &req, caller)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Reservation successfully updated.", "reservation": reservation}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultReservationRoute) DeleteReservation(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	caller, ok := CallerFromCtx(c)
	if !ok {
		return c.JSON(apierror.NotLoggedInError.Code(), apierror.NotLoggedInError)
	}

	if apierr := r.ReservationService.DeleteReservation(id, caller); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Reservation successfully deleted."}
	return c.JSON(http.StatusOK, &resp)
}

func pathID(c echo.Context) (int, apierror.ErrorResponse) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, apierror.NewInvalidParamTypeError("id", "int")
	}
	return id, nil
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

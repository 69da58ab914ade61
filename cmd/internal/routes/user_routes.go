package routes

import (
	"net/http"
	"schedulr/cmd/internal/service"
	"schedulr/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	Register(req *service.RegisterRequest) apierror.ErrorResponse
	GetUsers() ([]*service.UserResponse, apierror.ErrorResponse)
	GetUser(id int) (*service.UserResponse, apierror.ErrorResponse)
	UpdateUser(id int, req *service.UpdateUserRequest) (*service.UserResponse, apierror.ErrorResponse)
	DeleteUser(id int) apierror.ErrorResponse
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserDefault(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

func (u *DefaultUserRoute) GetUsers(c echo.Context) error {
	users, apierr := u.UserService.GetUsers()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"users": users}
	return c.JSON(http.StatusOK, &resp)
}

func (u *DefaultUserRoute) GetUser(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	user, apierr := u.UserService.GetUser(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser is the admin-gated variant of registration.
func (u *DefaultUserRoute) CreateUser(c echo.Context) error {
	var req service.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := u.UserService.Register(&req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusCreated)
}

func (u *DefaultUserRoute) UpdateUser(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	user, apierr := u.UserService.UpdateUser(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, user)
}

func (u *DefaultUserRoute) DeleteUser(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := u.UserService.DeleteUser(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "User successfully deleted."}
	return c.JSON(http.StatusOK, &resp)
}

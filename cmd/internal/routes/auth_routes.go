package routes

import (
	"net/http"
	"schedulr/cmd/internal/service"
	"schedulr/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type AuthService interface {
	Register(req *service.RegisterRequest) apierror.ErrorResponse
	Login(req *service.LoginRequest) (*service.LoginResponse, apierror.ErrorResponse)
}

type DefaultAuthRoute struct {
	AuthService AuthService
}

func NewAuthDefault(authService AuthService) *DefaultAuthRoute {
	return &DefaultAuthRoute{AuthService: authService}
}

func (a *DefaultAuthRoute) Register(c echo.Context) error {
	var req service.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := a.AuthService.Register(&req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	log.Infof("user %s successfully registered", req.Username)
	resp := echo.Map{"message": "Successfully registered."}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAuthRoute) Login(c echo.Context) error {
	var req service.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AuthService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout exists for surface compatibility: the bearer token is the session
// credential and discarding it is the client's job.
func (a *DefaultAuthRoute) Logout(c echo.Context) error {
	caller, _ := CallerFromCtx(c)
	if caller != nil {
		log.Infof("user %s logged out", caller.Username)
	}
	resp := echo.Map{"message": "Successfully logged out."}
	return c.JSON(http.StatusOK, &resp)
}

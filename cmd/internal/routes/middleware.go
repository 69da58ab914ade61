package routes

import (
	"schedulr/cmd/internal/domain/entity"
	"schedulr/cmd/internal/utils"
	"schedulr/cmd/internal/utils/apierror"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const callerContextKey = "schedulr.caller"

type CallerLoader interface {
	FindByID(id int) (*entity.User, error)
}

// AuthGuard resolves the caller identity once per request and injects it
// into the echo context, so handlers and services receive it by parameter
// instead of reading ambient global state.
type AuthGuard struct {
	Users  CallerLoader
	Secret []byte
}

func NewAuthGuard(users CallerLoader, secret []byte) *AuthGuard {
	return &AuthGuard{Users: users, Secret: secret}
}

// RequireAuth rejects the request unless a valid bearer token maps to a
// stored user.
func (g *AuthGuard) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.JSON(apierror.NotLoggedInError.Code(), apierror.NotLoggedInError)
		}

		data, err := utils.ParseTokenData(token, g.Secret)
		if err != nil {
			return c.JSON(apierror.InvalidAuthTokenError.Code(), apierror.InvalidAuthTokenError)
		}

		caller, err := g.Users.FindByID(data.UserID)
		if err != nil {
			log.Errorf("failed to load caller %d: %v", data.UserID, err)
			return c.JSON(apierror.InternalServerError.Code(), apierror.InternalServerError)
		}
		if caller == nil {
			return c.JSON(apierror.InvalidAuthTokenError.Code(), apierror.InvalidAuthTokenError)
		}

		c.Set(callerContextKey, caller)
		return next(c)
	}
}

// RequireAdmin composes on RequireAuth and additionally demands the admin
// role.
func (g *AuthGuard) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return g.RequireAuth(func(c echo.Context) error {
		caller, ok := CallerFromCtx(c)
		if !ok || !caller.HasRole(entity.RoleAdmin) {
			if ok {
				log.Warnf("user %s attempted to access an admin resource", caller.Username)
			}
			return c.JSON(apierror.NotAdminError.Code(), apierror.NotAdminError)
		}
		return next(c)
	})
}

// CallerFromCtx returns the authenticated user placed by RequireAuth.
func CallerFromCtx(c echo.Context) (*entity.User, bool) {
	caller, ok := c.Get(callerContextKey).(*entity.User)
	return caller, ok
}

func bearerToken(c echo.Context) (string, bool) {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

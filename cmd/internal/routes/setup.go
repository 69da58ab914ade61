package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Setup builds the echo server and mounts every route. Shared between the
// binary and the route tests so both exercise the same surface.
func Setup(guard *AuthGuard, auth *DefaultAuthRoute, users *DefaultUserRoute, equipment *DefaultEquipmentRoute, slots *DefaultTimeSlotRoute, reservations *DefaultReservationRoute) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())

	// Auth
	e.POST("/auth/register", auth.Register)
	e.POST("/auth/login", auth.Login)
	e.POST("/auth/logout", auth.Logout, guard.RequireAuth)

	// Equipment
	e.GET("/equipment", equipment.GetEquipmentList)
	e.GET("/equipment/:id", equipment.GetEquipment)
	e.POST("/equipment", equipment.CreateEquipment, guard.RequireAdmin)
	e.PUT("/equipment/:id", equipment.UpdateEquipment, guard.RequireAdmin)
	e.DELETE("/equipment/:id", equipment.DeleteEquipment, guard.RequireAdmin)

	// Timeslots
	e.GET("/timeslots", slots.GetTimeSlots)
	e.GET("/timeslots/:id", slots.GetTimeSlot)
	e.POST("/timeslots", slots.CreateTimeSlot, guard.RequireAdmin)
	e.PUT("/timeslots/:id", slots.UpdateTimeSlot, guard.RequireAdmin)
	e.DELETE("/timeslots/:id", slots.DeleteTimeSlot, guard.RequireAdmin)

	// Reservations. The static /reservations/timeslots route lists the
	// bookable slots and wins over the :id match.
	e.GET("/reservations", reservations.GetReservations)
	e.GET("/reservations/timeslots", slots.GetTimeSlots)
	e.GET("/reservations/:id", reservations.GetReservation)
	e.POST("/reservations", reservations.CreateReservation, guard.RequireAuth)
	e.PUT("/reservations/:id", reservations.UpdateReservation, guard.RequireAuth)
	e.DELETE("/reservations/:id", reservations.DeleteReservation, guard.RequireAuth)

	// Users
	e.GET("/users", users.GetUsers, guard.RequireAuth)
	e.GET("/users/:id", users.GetUser, guard.RequireAuth)
	e.POST("/users", users.CreateUser, guard.RequireAdmin)
	e.PUT("/users/:id", users.UpdateUser, guard.RequireAdmin)
	e.DELETE("/users/:id", users.DeleteUser, guard.RequireAdmin)

	return e
}

package main

import (
	"fmt"
	"schedulr/cmd/internal/config"
	"schedulr/cmd/internal/domain/sqlite"
	"schedulr/cmd/internal/domain/sqlite/repository"
	"schedulr/cmd/internal/mailer"
	"schedulr/cmd/internal/routes"
	"schedulr/cmd/internal/service"
	"schedulr/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

func main() {
	cfg := config.Load()

	validate := validator.New()
	registerValidators(validate)

	db, err := sqlite.Init(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	if err := sqlite.Seed(db, cfg.AdminPassword); err != nil {
		log.Fatal("failed to seed database", err)
	}

	// Confirmation mail worker pool
	mail := mailer.New(cfg.MailFrom, cfg.MailWorkers, nil)
	defer mail.Shutdown()

	// Getting repositories
	userRepo := repository.NewUserRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	slotRepo := repository.NewTimeSlotRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// Getting services
	resValidator := service.NewReservationValidator(userRepo, equipmentRepo, slotRepo, reservationRepo)
	userService := service.NewUserService(userRepo, validate, []byte(cfg.JWTSecret), cfg.TokenTTL)
	equipmentService := service.NewEquipmentService(equipmentRepo, validate)
	slotService := service.NewTimeSlotService(slotRepo, validate)
	reservationService := service.NewReservationService(reservationRepo, resValidator, validate, mail)

	// Getting routes
	guard := routes.NewAuthGuard(userRepo, []byte(cfg.JWTSecret))
	authRoutes := routes.NewAuthDefault(userService)
	userRoutes := routes.NewUserDefault(userService)
	equipmentRoutes := routes.NewEquipmentDefault(equipmentService)
	slotRoutes := routes.NewTimeSlotDefault(slotService)
	reservationRoutes := routes.NewReservationDefault(reservationService)

	e := routes.Setup(guard, authRoutes, userRoutes, equipmentRoutes, slotRoutes, reservationRoutes)

	err = e.Start(fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("iso8601", validators.IsIso8601)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
}

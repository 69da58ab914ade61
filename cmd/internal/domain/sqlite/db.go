package sqlite

import (
	"errors"
	"schedulr/cmd/internal/domain/entity"
	"schedulr/cmd/internal/utils"
	"time"

	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Init(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Role{},
		&entity.Equipment{},
		&entity.TimeSlot{},
		&entity.Reservation{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Seed creates the fixed roles and an initial admin account when absent.
func Seed(db *gorm.DB, adminPassword string) error {
	roles := []entity.Role{
		{ID: entity.RoleAdmin, Description: "Administrator with full access"},
		{ID: entity.RoleUser, Description: "Standard user"},
	}

	for _, role := range roles {
		var existing entity.Role
		err := db.First(&existing, "id = ?", role.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
			log.Infof("seeded role %s", role.ID)
		} else if err != nil {
			return err
		}
	}

	var admin entity.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := utils.NowUTC()
	adminEmail := "admin@example.com"
	admin = entity.User{
		Username:  "admin",
		Email:     &adminEmail,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
		Roles:     []entity.Role{{ID: entity.RoleAdmin}},
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info("seeded initial admin user")
	return nil
}

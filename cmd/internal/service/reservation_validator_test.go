package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schedulr/cmd/internal/domain/entity"
	"schedulr/cmd/internal/domain/sqlite"
	"schedulr/cmd/internal/domain/sqlite/repository"
	"schedulr/cmd/internal/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sqlite.Init(dsn)
	require.NoError(t, err)
	return db
}

func newTestValidator(db *gorm.DB) *ReservationValidator {
	return NewReservationValidator(
		repository.NewUserRepository(db),
		repository.NewEquipmentRepository(db),
		repository.NewTimeSlotRepository(db),
		repository.NewReservationRepository(db),
	)
}

func seedBookingFixtures(t *testing.T, db *gorm.DB) (*entity.User, *entity.Equipment, *entity.TimeSlot) {
	t.Helper()
	now := utils.NowUTC()

	user := &entity.User{Username: "alice", Password: "x", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(user).Error)

	equipment := &entity.Equipment{Name: "Laser cutter", Description: "80W CO2 laser", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(equipment).Error)

	slot := &entity.TimeSlot{StartTime: now, EndTime: now + 3600_000, Description: "Morning slot"}
	require.NoError(t, db.Create(slot).Error)

	return user, equipment, slot
}

func TestValidateReservation(t *testing.T) {
	t.Run("missing ids", func(t *testing.T) {
		db := setupTestDB(t)
		v := newTestValidator(db)

		for _, ids := range [][3]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}, {0, 0, 0}} {
			valid, reason, err := v.Validate(ids[0], ids[1], ids[2], 0)
			assert.NoError(t, err)
			assert.False(t, valid)
			assert.Equal(t, "User ID, equipment ID, and timeslot ID are required.", reason)
		}
	})

	t.Run("unknown references short-circuit in order", func(t *testing.T) {
		db := setupTestDB(t)
		v := newTestValidator(db)
		user, equipment, slot := seedBookingFixtures(t, db)

		valid, reason, err := v.Validate(999, equipment.ID, slot.ID, 0)
		assert.NoError(t, err)
		assert.False(t, valid)
		assert.Equal(t, MsgUserNotFound, reason)

		valid, reason, err = v.Validate(user.ID, 999, slot.ID, 0)
		assert.NoError(t, err)
		assert.False(t, valid)
		assert.Equal(t, MsgEquipmentNotFound, reason)

		valid, reason, err = v.Validate(user.ID, equipment.ID, 999, 0)
		assert.NoError(t, err)
		assert.False(t, valid)
		assert.Equal(t, MsgTimeslotNotFound, reason)

		// Unknown user wins even when everything else is also unknown.
		valid, reason, err = v.Validate(999, 998, 997, 0)
		assert.NoError(t, err)
		assert.False(t, valid)
		assert.Equal(t, MsgUserNotFound, reason)
	})

	t.Run("valid reservation", func(t *testing.T) {
		db := setupTestDB(t)
		v := newTestValidator(db)
		user, equipment, slot := seedBookingFixtures(t, db)

		valid, reason, err := v.Validate(user.ID, equipment.ID, slot.ID, 0)
		assert.NoError(t, err)
		assert.True(t, valid)
		assert.Equal(t, MsgReservationValid, reason)
	})

	t.Run("equipment conflict checked before user conflict", func(t *testing.T) {
		db := setupTestDB(t)
		v := newTestValidator(db)
		user, equipment, slot := seedBookingFixtures(t, db)

		now := utils.NowUTC()
		require.NoError(t, db.Create(&entity.Reservation{
			UserID: user.ID, EquipmentID: equipment.ID, TimeSlotID: slot.ID,
			CreatedAt: now, UpdatedAt: now,
		}).Error)

		// Same user, same equipment, same slot: both sides conflict but the
		// equipment message comes first.
		valid, reason, err := v.Validate(user.ID, equipment.ID, slot.ID, 0)
		assert.NoError(t, err)
		assert.False(t, valid)
		assert.Equal(t, MsgEquipmentConflict, reason)
	})

	t.Run("user conflict on second equipment", func(t *testing.T) {
		db := setupTestDB(t)
		v := newTestValidator(db)
		user, equipment, slot := seedBookingFixtures(t, db)

		now := utils.NowUTC()
		other := &entity.Equipment{Name: "3D printer", Description: "FDM printer", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, db.Create(other).Error)

		require.NoError(t, db.Create(&entity.Reservation{
			UserID: user.ID, EquipmentID: equipment.ID, TimeSlotID: slot.ID,
			CreatedAt: now, UpdatedAt: now,
		}).Error)

		valid, reason, err := v.Validate(user.ID, other.ID, slot.ID, 0)
		assert.NoError(t, err)
		assert.False(t, valid)
		assert.Equal(t, MsgUserConflict, reason)
	})

	t.Run("update skips conflict checks", func(t *testing.T) {
		db := setupTestDB(t)
		v := newTestValidator(db)
		user, equipment, slot := seedBookingFixtures(t, db)

		now := utils.NowUTC()
		reservation := &entity.Reservation{
			UserID: user.ID, EquipmentID: equipment.ID, TimeSlotID: slot.ID,
			CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, db.Create(reservation).Error)

		// An owner editing their existing reservation must not self-conflict.
		valid, reason, err := v.Validate(user.ID, equipment.ID, slot.ID, reservation.ID)
		assert.NoError(t, err)
		assert.True(t, valid)
		assert.Equal(t, MsgReservationValid, reason)
	})

	t.Run("update still checks existence", func(t *testing.T) {
		db := setupTestDB(t)
		v := newTestValidator(db)
		user, _, slot := seedBookingFixtures(t, db)

		valid, reason, err := v.Validate(user.ID, 999, slot.ID, 1)
		assert.NoError(t, err)
		assert.False(t, valid)
		assert.Equal(t, MsgEquipmentNotFound, reason)
	})
}

package entity

// Reservation binds one user to one equipment item for one timeslot.
// The composite unique indexes are the authoritative double-booking guard:
// a read-then-write availability check alone would race under concurrent
// requests, so the store rejects the loser with a duplicate-key error.
type Reservation struct {
	ID          int   `gorm:"primaryKey"`
	UserID      int   `gorm:"not null;uniqueIndex:idx_user_slot"`
	EquipmentID int   `gorm:"not null;uniqueIndex:idx_equipment_slot"`
	TimeSlotID  int   `gorm:"not null;uniqueIndex:idx_equipment_slot;uniqueIndex:idx_user_slot"`
	CreatedAt   int64 `gorm:"not null"`
	UpdatedAt   int64 `gorm:"not null"`

	// Relations
	User      User      `gorm:"foreignKey:UserID;references:ID"`
	Equipment Equipment `gorm:"foreignKey:EquipmentID;references:ID"`
	TimeSlot  TimeSlot  `gorm:"foreignKey:TimeSlotID;references:ID"`
}

package entity

type TimeSlot struct {
	ID          int   `gorm:"primaryKey"`
	StartTime   int64 `gorm:"not null"`
	EndTime     int64 `gorm:"not null"`
	Description string
}

func (TimeSlot) TableName() string {
	return "timeslots"
}

package entity

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Role id is the role name itself ("admin", "user").
type Role struct {
	ID          string `gorm:"primaryKey"`
	Description string `gorm:"not null"`

	// Relations
	Users []User `gorm:"many2many:user_roles;"`
}

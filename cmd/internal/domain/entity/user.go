package entity

type User struct {
	ID        int    `gorm:"primaryKey"`
	Username  string  `gorm:"uniqueIndex;not null"`
	Email     *string `gorm:"uniqueIndex"`
	Password  string  `gorm:"not null"` // bcrypt hash, never serialized
	FullName  *string
	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null"`

	// Relations
	Roles []Role `gorm:"many2many:user_roles;"`
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(roleID string) bool {
	for _, role := range u.Roles {
		if role.ID == roleID {
			return true
		}
	}
	return false
}

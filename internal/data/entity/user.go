package entity

import (
	"strings"
	"time"
)

type User struct {
	BaseNoDelete
	Name               string     `db:"name"`
	Email              string     `db:"email"`
	Phone              string     `db:"phone"`
	PasswordHash       string     `db:"password"`
	IsEmailVerified    bool       `db:"is_email_verified"`
	IsActive           bool       `db:"is_active"`
	VerificationToken  *string    `db:"verification_token"`
	PasswordResetToken *string    `db:"password_reset_token"`
	PasswordChangedAt  *time.Time `db:"password_changed_at"`

	// Roles are loaded through the user_roles join table.
	Roles []Role
}

// HasAnyRole reports whether the user holds at least one of the given role
// names. The comparison is case-insensitive.
func (u *User) HasAnyRole(names ...string) bool {
	for _, role := range u.Roles {
		for _, name := range names {
			if strings.EqualFold(role.Name, name) {
				return true
			}
		}
	}
	return false
}

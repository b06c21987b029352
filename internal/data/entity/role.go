package entity

import "github.com/google/uuid"

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

type Role struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

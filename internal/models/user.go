package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleResident Role = "RESIDENT"
	RoleManager  Role = "MANAGER"
)

type User struct {
	ID              uuid.UUID `db:"id"                json:"id"`
	Name            string    `db:"name"              json:"name"`
	Password        string    `db:"password"          json:"-"`
	Email           string    `db:"email"             json:"email"`
	Role            Role      `db:"role"              json:"role"`
	IsEmailVerified bool      `db:"is_email_verified" json:"isEmailVerified"`
	Devices         []Device  `db:"devices"           json:"devices,omitempty"`
	CreatedAt       time.Time `db:"created_at"        json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at"        json:"updatedAt"`
}

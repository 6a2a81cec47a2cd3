package models

import "time"

// Role distinguishes regular users from administrators.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is an identity record: credential for login, profile fields shown
// to counterparties. ContactInfo is revealed only through the
// express-interest flow, never to the user themself.
type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Credential  string    `json:"credential"`
	DisplayName string    `json:"display_name"`
	ContactInfo string    `json:"contact_info"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordID implements store.Record.
func (u User) RecordID() int64 { return u.ID }

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

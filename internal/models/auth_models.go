package models

import "time"

// User is a login account for the console. Passwords are bcrypt hashes;
// this is operational convenience, not a hard security boundary.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	FullName     string       `json:"full_name"`
	Role         string       `json:"role"` // Admin, Manager, Staff
	Unit         BusinessUnit `json:"bu"`
	CreatedAt    time.Time    `json:"created_at"`
}

package entity

import "time"

// User represents an author or commenter.
// PasswordHash holds a bcrypt hash; plaintext passwords are never stored.
type User struct {
	ID           int64
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

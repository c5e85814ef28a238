package entities

import "time"

// User is a directory entry keyed by normalized email.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

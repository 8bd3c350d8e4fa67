package models

import "time"

// Admin is an operator allowed to create boxes and accounts and to move
// users in and out of slots.
type Admin struct {
	AdminID   string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

package models

import "time"

// ProfileDB represents a profile row in the database
type ProfileDB struct {
	WalletAddress string    `json:"wallet_address" db:"wallet_address"` // Primary key
	Name          string    `json:"name" db:"name"`                     // Display name, '' when unset
	Email         string    `json:"email" db:"email"`                   // Contact email, '' when unset
	Company       string    `json:"company" db:"company"`               // Optional company
	Location      string    `json:"location" db:"location"`             // Optional location
	AvatarImage   *string   `json:"avatar_image" db:"avatar_image"`     // Data URI or URL, NULL when unset
	Username      *string   `json:"username" db:"username"`             // Lower-cased handle, NULL when unset
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Set once at first insert
	LastUpdated   time.Time `json:"last_updated" db:"last_updated"`     // Refreshed on every write
}

// ProfileInput carries the caller-supplied fields of a profile upsert.
// Nil pointers mean "not supplied".
type ProfileInput struct {
	WalletAddress string
	Name          string
	Email         string
	Company       string
	Location      string
	AvatarImage   *string
	Username      *string
}

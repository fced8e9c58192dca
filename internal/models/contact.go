package models

import "time"

// ContactDB represents a contacts row in the database
type ContactDB struct {
	ID                   int64     `json:"id" db:"id"`                                         // Surrogate key
	UserWalletAddress    string    `json:"user_wallet_address" db:"user_wallet_address"`       // Owner of the contact list
	ContactWalletAddress string    `json:"contact_wallet_address" db:"contact_wallet_address"` // Wallet the owner saved
	Name                 string    `json:"name" db:"name"`
	Email                string    `json:"email" db:"email"`
	Company              string    `json:"company" db:"company"`
	Location             string    `json:"location" db:"location"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
}

// ContactInput is the contact payload of an add-contact request.
type ContactInput struct {
	WalletAddress string
	Name          string
	Email         string
	Company       string
	Location      string
}

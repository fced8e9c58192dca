package services

import "errors"

// Kind classifies service errors so transports can pick a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
)

// Error is a caller-safe service error. Message is meant to be shown to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the kind of err, or KindInternal for anything that is not an *Error.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

// Error variables
var (
	ErrWalletRequired   = &Error{Kind: KindValidation, Message: "Wallet address is required"}
	ErrInvalidWallet    = &Error{Kind: KindValidation, Message: "Invalid wallet address"}
	ErrInvalidUsername  = &Error{Kind: KindValidation, Message: "Username must be 3-20 characters and contain only letters, numbers, underscores, and hyphens"}
	ErrUsernameRequired = &Error{Kind: KindValidation, Message: "Username is required"}
	ErrUsernameTaken    = &Error{Kind: KindConflict, Message: "Username already taken"}
	ErrProfileNotFound  = &Error{Kind: KindNotFound, Message: "Profile not found"}

	ErrOwnerRequired          = &Error{Kind: KindValidation, Message: "User wallet address is required"}
	ErrContactDataRequired    = &Error{Kind: KindValidation, Message: "User wallet and contact data are required"}
	ErrContactFieldsRequired  = &Error{Kind: KindValidation, Message: "Contact wallet address, name, and email are required"}
	ErrContactWalletsRequired = &Error{Kind: KindValidation, Message: "User wallet and contact wallet are required"}
	ErrSelfContact            = &Error{Kind: KindConflict, Message: "Cannot add yourself as a contact"}
	ErrContactExists          = &Error{Kind: KindConflict, Message: "Contact already exists"}
	ErrContactNotFound        = &Error{Kind: KindNotFound, Message: "Contact not found"}
)

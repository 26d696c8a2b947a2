package domain

import "errors"

// Sentinel errors shared by services and adapters. The API layer maps each
// one to an HTTP status and a stable client-facing message.
var (
	ErrUserExists          = errors.New("user already exists")
	ErrEmailExists         = errors.New("email already exists")
	ErrInvalidLogin        = errors.New("email or password is incorrect")
	ErrInvalidUserOrRole   = errors.New("invalid user id or role name")
	ErrRoleAlreadyAssigned = errors.New("user already has this role")
	ErrAuthorNotFound      = errors.New("invalid author id")
	ErrNewsNotFound        = errors.New("invalid news id")

	ErrInvalidPublicationDate = errors.New("publication date out of allowed window")
	ErrImageTypeNotAllowed    = errors.New("image type not allowed")
	ErrImageTooLarge          = errors.New("image exceeds maximum size")
)

package storage

import "errors"

var (
	// ErrNotFound covers both missing rows and rows the caller does not own.
	ErrNotFound          = errors.New("not found")
	ErrUserExists        = errors.New("user already exists")
	ErrInvitationExists  = errors.New("user already invited to this event")
	ErrEventVendorExists = errors.New("vendor already assigned to this event")
	ErrInvalidReference  = errors.New("referenced entity does not exist")
)

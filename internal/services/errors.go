package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidFileType    = errors.New("invalid file type")
)

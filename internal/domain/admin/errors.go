package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotConfigured      = errors.New("admin login is not configured")
)

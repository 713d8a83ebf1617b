package apperrors

import "errors"

var (
	ErrTrainNotFound      = errors.New("train not found")
	ErrDuplicateTrainID   = errors.New("train id already exists")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrSeatUnavailable    = errors.New("seat is not available")
	ErrSameSeat           = errors.New("new seat equals current seat")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrLoginTaken         = errors.New("login already taken")
	ErrWeakPassword       = errors.New("password too short")
)

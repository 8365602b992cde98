package services

import "github.com/pkg/errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidBrand       = errors.New("invalid brand")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidPassword    = errors.New("password must be between 1 and 72 bytes")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrGoodsNotFound      = errors.New("goods not found")
	ErrCommentNotFound    = errors.New("comment not found")
)


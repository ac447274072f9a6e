package storerrros

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrDraftNotFound   = errors.New("registration draft not found")
)

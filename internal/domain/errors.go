package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the failures the site degrades around.
var (
	ErrEventNotFound = errors.New("event not found")
)

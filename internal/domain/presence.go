// Package domain contains entity without logic, just meta-data
package domain

import "errors"

const MaxUserIDLen = 64

var (
	ErrUserIDEmpty   = errors.New("user id empty")
	ErrUserIDTooLong = errors.New("user id too long")
)

// UserID is the stable identity of a logical user. It is supplied by the
// auth layer in front of this service and treated as opaque here.
type UserID string

// ParseUserID keeps ad-hoc validation out of the adapters.
func ParseUserID(raw string) (UserID, error) {
	if len(raw) == 0 {
		return "", ErrUserIDEmpty
	}
	if len(raw) > MaxUserIDLen {
		return "", ErrUserIDTooLong
	}
	return UserID(raw), nil
}

// StatusEntry is one user's presence status as it appears on the wire.
// The status string is opaque to the server; clients pick the vocabulary.
type StatusEntry struct {
	UserID UserID `json:"userId"`
	Status string `json:"status"`
}

package reservation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyStatus   = errors.New("reservation status cannot be empty")
	ErrStatusTooLong = errors.New("reservation status is too long (max 80 characters)")
)

const MaxStatusLength = 80

// Status is free text chosen by the front desk ("confirmed", "pending", ...).
type Status string

func NewStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyStatus
	}
	if utf8.RuneCountInString(s) > MaxStatusLength {
		return "", ErrStatusTooLong
	}
	return Status(s), nil
}

func (s Status) String() string {
	return string(s)
}

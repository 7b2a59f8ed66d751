package sms

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingConfiguration is returned by NewTwilioClient when the account
	// id or secret is not set.
	ErrMissingConfiguration = errors.New("twilio account id and secret are required")

	// ErrEmptyRecipient is returned when no recipient phone number is provided.
	ErrEmptyRecipient = errors.New("recipient phone number is required")
	// ErrEmptySender is returned when no sender phone number is provided.
	ErrEmptySender = errors.New("sender phone number is required")
	// ErrEmptyContent is returned when a message has neither body nor media.
	ErrEmptyContent = errors.New("message body or media is required")
	// ErrContentTooLong is returned when the body exceeds MaxBodyLength.
	ErrContentTooLong = errors.New("message body exceeds maximum length")
	// ErrTooManyMedia is returned when more than MaxMediaURLs are attached.
	ErrTooManyMedia = errors.New("too many media URLs")
)

// NotFoundError is the single error kind Lookup reports when Twilio's reply
// cannot be understood or the number does not exist. The message only ever
// carries the requested number.
type NotFoundError struct {
	Number string
	cause  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("phone number %q not found", e.Number)
}

// Cause returns the decode failure that was normalized into this error.
// It is intended for debug logging and is deliberately not exposed through
// errors.Unwrap.
func (e *NotFoundError) Cause() error {
	return e.cause
}

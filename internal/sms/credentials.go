package sms

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// EncodingError is returned when account credentials cannot be turned
// into the byte sequence used for HTTP Basic authentication.
type EncodingError struct {
	Field string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("credentials: %s is not valid UTF-8", e.Field)
}

// EncodeCredentials returns the Basic auth token for accountID and secret,
// i.e. base64("<accountID>:<secret>").
func EncodeCredentials(accountID, secret string) (string, error) {
	if !utf8.ValidString(accountID) {
		return "", &EncodingError{Field: "account id"}
	}
	if !utf8.ValidString(secret) {
		return "", &EncodingError{Field: "account secret"}
	}

	return base64.StdEncoding.EncodeToString([]byte(accountID + ":" + secret)), nil
}

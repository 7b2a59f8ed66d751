package sms

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCredentials_RoundTrip(t *testing.T) {
	pairs := []struct{ id, secret string }{
		{"AC123", "secret"},
		{"ACabcdef0123456789", "tok:with:colons"},
		{"user", "pässwörd"},
		{"a", "b"},
	}

	for _, p := range pairs {
		token, err := EncodeCredentials(p.id, p.secret)
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(token)
		require.NoError(t, err)

		id, secret, ok := strings.Cut(string(raw), ":")
		require.True(t, ok)
		assert.Equal(t, p.id, id)
		assert.Equal(t, p.secret, secret)
	}
}

func TestEncodeCredentials_InvalidUTF8(t *testing.T) {
	_, err := EncodeCredentials("AC123", "bad\xffsecret")

	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, "account secret", encErr.Field)
}

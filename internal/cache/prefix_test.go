package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixKey(t *testing.T) {
	assert.Equal(t, "carrier_lookup:+14155550100", CarrierLookups.Key("+14155550100"))
	assert.Equal(t, "sent_messages:AC123", SentMessages.Key("AC123"))
}

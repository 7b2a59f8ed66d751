package cache

import "fmt"

type Prefix string

const (
	// SentMessages counts messages Twilio accepted, keyed by account SID.
	SentMessages Prefix = "sent_messages"
	// CarrierLookups holds cached lookup replies, keyed by normalized number.
	CarrierLookups Prefix = "carrier_lookup"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}

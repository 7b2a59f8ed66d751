// Package sms talks to Twilio: it sends outbound messages, looks up
// carrier metadata for phone numbers and renders the TwiML reply Twilio
// expects from an inbound-message webhook.
package sms

import (
	"context"
	"net/http"
)

// Client is the contract for the Twilio provider implementation.
type Client interface {
	// Send posts the message to Twilio and returns the raw provider response.
	// The caller owns the response body and must close it.
	Send(ctx context.Context, msg OutgoingSMS) (*http.Response, error)

	// Lookup fetches carrier metadata for the given phone number.
	// Any reply that cannot be understood is reported as *NotFoundError.
	Lookup(ctx context.Context, number string) (*LookupResponse, error)

	// Respond builds the callback reply for an inbound message.
	Respond(resp SMSResponse) *MarkupResponse
}

// HTTPDoer is the transport used to reach Twilio. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

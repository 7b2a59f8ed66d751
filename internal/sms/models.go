package sms

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultAPIBaseURL is where messages are sent.
	DefaultAPIBaseURL = "https://api.twilio.com"
	// DefaultLookupBaseURL is where phone numbers are looked up.
	DefaultLookupBaseURL = "https://lookups.twilio.com"

	// MaxBodyLength is the longest body Twilio accepts for one message.
	MaxBodyLength = 1600
	// MaxMediaURLs is the number of media attachments Twilio allows per message.
	MaxMediaURLs = 10
)

// Config holds the Twilio account credentials. Base URLs are optional and
// fall back to the public Twilio endpoints.
type Config struct {
	AccountID     string
	AccountSecret string

	APIBaseURL    string
	LookupBaseURL string
}

// Validate reports ErrMissingConfiguration when credentials are absent.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AccountID) == "" || strings.TrimSpace(c.AccountSecret) == "" {
		return ErrMissingConfiguration
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.LookupBaseURL == "" {
		c.LookupBaseURL = DefaultLookupBaseURL
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	c.LookupBaseURL = strings.TrimRight(c.LookupBaseURL, "/")
	return c
}

// OutgoingSMS describes a message to send.
type OutgoingSMS struct {
	From      string
	To        string
	Body      string
	MediaURLs []string

	// StatusCallback, when set, is the URL Twilio posts delivery updates to.
	StatusCallback string
}

// NewOutgoingSMS constructs an OutgoingSMS and enforces Twilio's basic rules.
func NewOutgoingSMS(from, to, body string, mediaURLs ...string) (OutgoingSMS, error) {
	msg := OutgoingSMS{
		From:      strings.TrimSpace(from),
		To:        strings.TrimSpace(to),
		Body:      body,
		MediaURLs: mediaURLs,
	}

	if msg.To == "" {
		return OutgoingSMS{}, ErrEmptyRecipient
	}
	if msg.From == "" {
		return OutgoingSMS{}, ErrEmptySender
	}
	if strings.TrimSpace(msg.Body) == "" && len(msg.MediaURLs) == 0 {
		return OutgoingSMS{}, ErrEmptyContent
	}
	if utf8.RuneCountInString(msg.Body) > MaxBodyLength {
		return OutgoingSMS{}, ErrContentTooLong
	}
	if len(msg.MediaURLs) > MaxMediaURLs {
		return OutgoingSMS{}, ErrTooManyMedia
	}

	return msg, nil
}

// Form encodes the message as the form fields of Twilio's Messages resource.
func (m OutgoingSMS) Form() url.Values {
	form := make(url.Values)
	form.Set("To", m.To)
	form.Set("From", m.From)
	form.Set("Body", m.Body)
	if len(m.MediaURLs) > 0 {
		form["MediaUrl"] = append([]string(nil), m.MediaURLs...)
	}
	if m.StatusCallback != "" {
		form.Set("StatusCallback", m.StatusCallback)
	}
	return form
}

// CarrierType is the kind of line a phone number belongs to.
type CarrierType string

const (
	CarrierMobile   CarrierType = "mobile"
	CarrierLandline CarrierType = "landline"
	CarrierVoIP     CarrierType = "voip"
)

// ParseCarrierType accepts exactly the three carrier types Twilio reports.
func ParseCarrierType(s string) (CarrierType, error) {
	switch t := CarrierType(s); t {
	case CarrierMobile, CarrierLandline, CarrierVoIP:
		return t, nil
	default:
		return "", fmt.Errorf("unknown carrier type %q", s)
	}
}

// UnmarshalJSON rejects anything outside the closed carrier type set.
func (t *CarrierType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("carrier type: %w", err)
	}
	parsed, err := ParseCarrierType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// CarrierResponse is the carrier block of a lookup reply.
type CarrierResponse struct {
	Name              string      `json:"name"`
	Type              CarrierType `json:"type"`
	MobileCountryCode string      `json:"mobile_country_code,omitempty"`
	MobileNetworkCode string      `json:"mobile_network_code,omitempty"`
	ErrorCode         *int        `json:"error_code,omitempty"`
}

// LookupResponse is Twilio's reply to a carrier lookup.
type LookupResponse struct {
	PhoneNumber    string           `json:"phone_number"`
	CountryCode    string           `json:"country_code"`
	NationalFormat string           `json:"national_format"`
	URL            string           `json:"url"`
	Carrier        *CarrierResponse `json:"carrier"`
}

func (r *LookupResponse) validate() error {
	if r.PhoneNumber == "" {
		return fmt.Errorf("lookup response missing phone_number")
	}
	if r.Carrier == nil {
		return fmt.Errorf("lookup response missing carrier")
	}
	if _, err := ParseCarrierType(string(r.Carrier.Type)); err != nil {
		return err
	}
	return nil
}

// NormalizeNumber strips every whitespace character from a phone number.
func NormalizeNumber(number string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, number)
}

// SMSResponse is the reply to send back to the author of an inbound message.
type SMSResponse struct {
	Body string
}

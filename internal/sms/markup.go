package sms

import (
	"encoding/xml"
	"net/http"
	"strings"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

// Markup renders the TwiML document that replies with r.Body.
func (r SMSResponse) Markup() string {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString("<Response><Message>")
	// strings.Builder never fails a write.
	_ = xml.EscapeText(&b, []byte(r.Body))
	b.WriteString("</Message></Response>")
	return b.String()
}

// MarkupResponse is the HTTP reply to an inbound-message webhook.
type MarkupResponse struct {
	StatusCode int
	Header     http.Header
	Body       string
}

func newMarkupResponse(r SMSResponse) *MarkupResponse {
	header := make(http.Header)
	header.Set("Content-Type", "application/xml")

	return &MarkupResponse{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       r.Markup(),
	}
}

// ServeHTTP writes the reply to w.
func (m *MarkupResponse) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	for k, vs := range m.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(m.StatusCode)
	_, _ = w.Write([]byte(m.Body))
}

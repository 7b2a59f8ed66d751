package sms

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMSResponse_MarkupEscapesBody(t *testing.T) {
	markup := SMSResponse{Body: "Hi & welcome <friend>"}.Markup()

	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8"?><Response><Message>Hi &amp; welcome &lt;friend&gt;</Message></Response>`,
		markup,
	)
}

func TestSMSResponse_MarkupEmptyBody(t *testing.T) {
	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8"?><Response><Message></Message></Response>`,
		SMSResponse{}.Markup(),
	)
}

func TestSMSResponse_MarkupIsDeterministic(t *testing.T) {
	r := SMSResponse{Body: "Thanks! \"quoted\" & 'single'"}
	assert.Equal(t, r.Markup(), r.Markup())
}

func TestMarkupResponse_ServeHTTP(t *testing.T) {
	resp := newMarkupResponse(SMSResponse{Body: "Hi & welcome"})

	rec := httptest.NewRecorder()
	resp.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Hi &amp; welcome")
}

package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var _ Client = (*TwilioClient)(nil)

// TwilioClient talks to the Twilio REST and Lookup APIs.
type TwilioClient struct {
	cfg        Config
	httpClient HTTPDoer
	logger     *slog.Logger
}

// NewTwilioClient creates a TwilioClient for the given account. A nil
// httpClient falls back to a default *http.Client and a nil logger discards
// output. It fails with ErrMissingConfiguration when credentials are absent,
// so a constructed client always has a usable configuration.
func NewTwilioClient(cfg Config, httpClient HTTPDoer, logger *slog.Logger) (*TwilioClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &TwilioClient{
		cfg:        cfg.withDefaults(),
		httpClient: httpClient,
		logger:     logger.With("provider", "twilio"),
	}, nil
}

// AccountID returns the configured Twilio account SID.
func (c *TwilioClient) AccountID() string {
	return c.cfg.AccountID
}

func (c *TwilioClient) authorization() (string, error) {
	token, err := EncodeCredentials(c.cfg.AccountID, c.cfg.AccountSecret)
	if err != nil {
		return "", err
	}
	return "Basic " + token, nil
}

func (c *TwilioClient) messagesURL() string {
	return c.cfg.APIBaseURL + "/2010-04-01/Accounts/" + c.cfg.AccountID + "/Messages.json"
}

func (c *TwilioClient) lookupURL(number string) string {
	return c.cfg.LookupBaseURL + "/v1/PhoneNumbers/" + url.PathEscape(number) + "?Type=carrier"
}

// Send implements Client.Send by posting msg as form data to the Messages
// resource. The response is returned untouched, whatever its status.
func (c *TwilioClient) Send(ctx context.Context, msg OutgoingSMS) (*http.Response, error) {
	auth, err := c.authorization()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.messagesURL(), strings.NewReader(msg.Form().Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.DebugContext(ctx, "sending message", "to", msg.To, "from", msg.From, "media", len(msg.MediaURLs))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "message request finished", "to", msg.To, "status_code", resp.StatusCode)
	return resp, nil
}

// Lookup implements Client.Lookup against the carrier lookup endpoint.
// Whitespace is stripped from number before the request is built.
func (c *TwilioClient) Lookup(ctx context.Context, number string) (*LookupResponse, error) {
	auth, err := c.authorization()
	if err != nil {
		return nil, err
	}

	trimmed := NormalizeNumber(number)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.lookupURL(trimmed), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", auth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	parsed, err := decodeLookup(resp.StatusCode, body)
	if err != nil {
		c.logger.DebugContext(ctx, "lookup reply not understood", "number", number, "status_code", resp.StatusCode, "error", err)
		return nil, &NotFoundError{Number: number, cause: err}
	}

	return parsed, nil
}

func decodeLookup(status int, body []byte) (*LookupResponse, error) {
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("non-2xx status: %d", status)
	}

	var parsed LookupResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}
	if err := parsed.validate(); err != nil {
		return nil, err
	}
	return &parsed, nil
}

// Respond implements Client.Respond. It never touches the network.
func (c *TwilioClient) Respond(resp SMSResponse) *MarkupResponse {
	return newMarkupResponse(resp)
}

package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/oggyb/twilio-bridge/internal/cache"
	"github.com/oggyb/twilio-bridge/internal/sms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient is a test double for sms.Client that counts calls.
type fakeClient struct {
	lookups   int32
	sendCode  int
	sendBody  string
	sendErr   error
	lookupErr map[string]error
}

func (f *fakeClient) Send(ctx context.Context, msg sms.OutgoingSMS) (*http.Response, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &http.Response{
		StatusCode: f.sendCode,
		Body:       io.NopCloser(strings.NewReader(f.sendBody)),
	}, nil
}

func (f *fakeClient) Lookup(ctx context.Context, number string) (*sms.LookupResponse, error) {
	atomic.AddInt32(&f.lookups, 1)
	if err := f.lookupErr[number]; err != nil {
		return nil, err
	}
	return &sms.LookupResponse{
		PhoneNumber: sms.NormalizeNumber(number),
		Carrier:     &sms.CarrierResponse{Name: "Example Mobile", Type: sms.CarrierMobile},
	}, nil
}

func (f *fakeClient) Respond(resp sms.SMSResponse) *sms.MarkupResponse {
	c, _ := sms.NewTwilioClient(sms.Config{AccountID: "AC1", AccountSecret: "s"}, nil, nil)
	return c.Respond(resp)
}

// memCache is an in-memory cache.Cache.
type memCache struct {
	mu   sync.Mutex
	data map[string]string
	ints map[string]int64
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}, ints: map[string]int64{}}
}

func (m *memCache) Ping(ctx context.Context) error { return nil }

func (m *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (m *memCache) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memCache) Incr(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints[key]++
	return m.ints[key], nil
}

func TestSend_Accepted(t *testing.T) {
	client := &fakeClient{sendCode: http.StatusCreated, sendBody: `{"sid":"SM1","status":"queued"}`}
	c := newMemCache()
	svc := NewMessagingService(client, c, nil, Options{AccountID: "AC1"})

	res, err := svc.Send(context.Background(), sms.OutgoingSMS{From: "a", To: "b", Body: "c"})
	require.NoError(t, err)

	assert.True(t, res.Accepted)
	assert.Equal(t, "SM1", res.SID)
	assert.Equal(t, int64(1), c.ints[cache.SentMessages.Key("AC1")])
}

func TestSend_RejectedIsNotAnError(t *testing.T) {
	client := &fakeClient{sendCode: http.StatusBadRequest, sendBody: `{"code":21211,"message":"invalid To"}`}
	c := newMemCache()
	svc := NewMessagingService(client, c, nil, Options{AccountID: "AC1"})

	res, err := svc.Send(context.Background(), sms.OutgoingSMS{From: "a", To: "b", Body: "c"})
	require.NoError(t, err)

	assert.False(t, res.Accepted)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, res.Raw, "invalid To")
	assert.Zero(t, c.ints[cache.SentMessages.Key("AC1")])
}

func TestSend_TransportError(t *testing.T) {
	boom := errors.New("dial tcp: refused")
	svc := NewMessagingService(&fakeClient{sendErr: boom}, nil, nil, Options{})

	_, err := svc.Send(context.Background(), sms.OutgoingSMS{})
	assert.ErrorIs(t, err, boom)
}

func TestLookup_UsesCache(t *testing.T) {
	client := &fakeClient{}
	svc := NewMessagingService(client, newMemCache(), nil, Options{})

	first, err := svc.Lookup(context.Background(), "+1 415 555 0100")
	require.NoError(t, err)
	second, err := svc.Lookup(context.Background(), "+14155550100")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&client.lookups))
	assert.Equal(t, first.PhoneNumber, second.PhoneNumber)
	assert.Equal(t, sms.CarrierMobile, second.Carrier.Type)
}

func TestLookup_CorruptCacheEntryIsRefetched(t *testing.T) {
	client := &fakeClient{}
	c := newMemCache()
	c.data[cache.CarrierLookups.Key("+14155550100")] = "{not json"
	svc := NewMessagingService(client, c, nil, Options{})

	res, err := svc.Lookup(context.Background(), "+14155550100")
	require.NoError(t, err)
	assert.Equal(t, "+14155550100", res.PhoneNumber)
	assert.Equal(t, int32(1), atomic.LoadInt32(&client.lookups))
}

func TestLookup_NotFoundPassesThrough(t *testing.T) {
	nf := &sms.NotFoundError{Number: "+10000000000"}
	client := &fakeClient{lookupErr: map[string]error{"+10000000000": nf}}
	svc := NewMessagingService(client, nil, nil, Options{})

	_, err := svc.Lookup(context.Background(), "+10000000000")

	var got *sms.NotFoundError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "+10000000000", got.Number)
}

func TestLookupMany_KeepsOrder(t *testing.T) {
	client := &fakeClient{lookupErr: map[string]error{
		"+10000000000": &sms.NotFoundError{Number: "+10000000000"},
	}}
	svc := NewMessagingService(client, nil, nil, Options{MaxWorkers: 2})

	numbers := []string{"+14155550100", "+10000000000", "+14155550101", "+14155550102"}
	results, err := svc.LookupMany(context.Background(), numbers)
	require.NoError(t, err)
	require.Len(t, results, len(numbers))

	for i, r := range results {
		assert.Equal(t, numbers[i], r.Number)
	}
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Result)
	assert.Equal(t, "+14155550102", results[3].Result.PhoneNumber)
}

func TestLookupMany_CancelledContext(t *testing.T) {
	svc := NewMessagingService(&fakeClient{}, nil, nil, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.LookupMany(ctx, []string{"+14155550100"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReply_UsesConfiguredMessage(t *testing.T) {
	svc := NewMessagingService(&fakeClient{}, nil, nil, Options{ReplyMessage: "Got it & thanks"})

	resp := svc.Reply(context.Background(), InboundMessage{From: "+14155550100", Body: "hello"})
	assert.Equal(t, "application/xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Body, "<Message>Got it &amp; thanks</Message>")
}

package nvp_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mark1979smith/farmison/config"
	"github.com/mark1979smith/farmison/internal/nvp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall_PostsFormAndDecodesReply(t *testing.T) {
	var received url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		received, _ = url.ParseQuery(string(body))
		_, _ = w.Write([]byte("ACK=Success&TOKEN=EC-1"))
	}))
	defer server.Close()

	client := nvp.NewClient(server.URL)
	response, err := client.Call(context.Background(), nvp.Request{"METHOD": "SetExpressCheckout", "VERSION": "109.0"})

	require.NoError(t, err)
	assert.Equal(t, "EC-1", response.Get("TOKEN"))
	assert.Equal(t, "SetExpressCheckout", received.Get("METHOD"))
	assert.Equal(t, "109.0", received.Get("VERSION"))
}

func TestCall_SemicolonSeparator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("riskScore=7.5;maxmindID=XYZ"))
	}))
	defer server.Close()

	client := nvp.NewClient(server.URL, nvp.WithSeparator(";"))
	response, err := client.Call(context.Background(), nvp.Request{"i": "1.2.3.4"})

	require.NoError(t, err)
	assert.Equal(t, "7.5", response.Get("riskScore"))
	assert.Equal(t, "XYZ", response.Get("maxmindID"))
}

func TestCall_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(""))
	}))
	defer server.Close()

	client := nvp.NewClient(server.URL)
	_, err := client.Call(context.Background(), nvp.Request{"METHOD": "X"})

	assert.ErrorIs(t, err, nvp.ErrMalformedResponse)
	assert.NotErrorIs(t, err, nvp.ErrTransportFailure)
}

func TestCall_Non2xxIsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("down for maintenance"))
	}))
	defer server.Close()

	client := nvp.NewClient(server.URL)
	_, err := client.Call(context.Background(), nvp.Request{"METHOD": "X"})

	assert.ErrorIs(t, err, nvp.ErrTransportFailure)
	assert.Contains(t, err.Error(), "503")
}

func TestCall_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := nvp.NewClient(server.URL)
	_, err := client.Call(context.Background(), nvp.Request{"METHOD": "X"})

	assert.ErrorIs(t, err, nvp.ErrTransportFailure)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCall_RetriesTransportFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("ACK=Success"))
	}))
	defer server.Close()

	client := nvp.NewClient(server.URL, nvp.WithRetry(config.RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	}))
	response, err := client.Call(context.Background(), nvp.Request{"METHOD": "X"})

	require.NoError(t, err)
	assert.Equal(t, "Success", response.Get("ACK"))
	assert.Equal(t, int32(3), calls.Load())
}

func TestCall_DoesNotRetryMalformedReply(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	client := nvp.NewClient(server.URL, nvp.WithRetry(config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond}))
	_, err := client.Call(context.Background(), nvp.Request{"METHOD": "X"})

	assert.ErrorIs(t, err, nvp.ErrMalformedResponse)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCall_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("ACK=Success"))
	}))
	defer server.Close()

	client := nvp.NewClient(server.URL, nvp.WithTimeout(20*time.Millisecond))
	_, err := client.Call(context.Background(), nvp.Request{"METHOD": "X"})

	assert.ErrorIs(t, err, nvp.ErrTransportFailure)
}

func TestCall_CancelledContextStopsRetrying(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := nvp.NewClient(server.URL, nvp.WithRetry(config.RetryConfig{
		MaxAttempts: 10,
		BaseDelay:   time.Second,
		MaxDelay:    time.Second,
	}))
	_, err := client.Call(ctx, nvp.Request{"METHOD": "X"})

	assert.ErrorIs(t, err, nvp.ErrTransportFailure)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCall_OversizedReplyIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ACK=Success&PAD="+strings.Repeat("x", 1<<20))
	}))
	defer server.Close()

	client := nvp.NewClient(server.URL)

	_, err := client.Call(context.Background(), nvp.Request{"METHOD": "Ping"})

	assert.ErrorIs(t, err, nvp.ErrMalformedResponse)
}

func TestNewClient_TimeoutDoesNotTouchSharedClient(t *testing.T) {
	shared := &http.Client{Timeout: 5 * time.Second}

	client := nvp.NewClient("http://localhost", nvp.WithHTTPClient(shared), nvp.WithTimeout(time.Second))

	assert.Equal(t, 5*time.Second, shared.Timeout)
	assert.Equal(t, time.Second, client.HTTPClient.Timeout)
	assert.NotSame(t, shared, client.HTTPClient)
}

func TestNewClient_NilHTTPClient(t *testing.T) {
	client := nvp.NewClient("http://localhost", nvp.WithTimeout(2*time.Second), nvp.WithHTTPClient(nil))

	require.NotNil(t, client.HTTPClient)
	assert.Equal(t, 2*time.Second, client.HTTPClient.Timeout)
}

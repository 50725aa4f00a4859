// Package nvp implements the flat name-value-pair encoding used by the PayPal
// NVP API and the MaxMind minFraud legacy API, together with a small HTTP
// client that posts a form body and decodes the flat reply.
package nvp

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	// ErrMalformedResponse means the remote answered but the body is not a key-value list.
	ErrMalformedResponse = errors.New("malformed key-value response")
	ErrUnsupportedValue  = errors.New("unsupported parameter value")
)

// Request is an outbound parameter set. Values must be scalars.
type Request map[string]any

// Response is a decoded reply. Every key the remote sent is kept.
type Response map[string]string

// Get returns the value for key, or "" when absent.
func (r Response) Get(key string) string {
	return r[key]
}

// Has reports whether key was present in the reply, even with an empty value.
func (r Response) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Encode serializes params as application/x-www-form-urlencoded, keys sorted.
func Encode(params Request) ([]byte, error) {
	form := url.Values{}
	for key, value := range params {
		s, err := FormatScalar(value)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", key, err)
		}
		form.Set(key, s)
	}
	return []byte(form.Encode()), nil
}

// FormatScalar renders a parameter value the way it goes on the wire.
// Floats use the shortest exact decimal representation, never exponent or locale separators.
func FormatScalar(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

// FormatAmount renders a money amount with exactly two decimals.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// Decode parses a "key=value&key=value" body.
func Decode(body []byte) (Response, error) {
	return DecodeSeparated(body, "&")
}

// DecodeSeparated parses a flat body whose pairs are joined by sep.
// The first occurrence of a repeated key wins. Segments without '=' are ignored,
// but a body yielding no pair at all is malformed.
func DecodeSeparated(body []byte, sep string) (Response, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	response := Response{}
	for _, segment := range strings.Split(string(trimmed), sep) {
		if segment == "" {
			continue
		}
		rawKey, rawValue, found := strings.Cut(segment, "=")
		if !found || rawKey == "" {
			continue
		}
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		if _, seen := response[key]; !seen {
			response[key] = value
		}
	}

	if len(response) == 0 {
		return nil, fmt.Errorf("%w: no key-value pairs", ErrMalformedResponse)
	}
	return response, nil
}

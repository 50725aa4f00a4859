package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark1979smith/farmison/internal/nvp"
)

const (
	redacted = "[REDACTED]"

	persistTimeout = 10 * time.Second
)

var secretParams = map[string]bool{
	"PWD":         true,
	"SIGNATURE":   true,
	"license_key": true,
}

// redactParams renders params for storage with credentials masked.
func redactParams(params nvp.Request) map[string]string {
	out := make(map[string]string, len(params))
	for key, value := range params {
		if secretParams[key] {
			out[key] = redacted
			continue
		}
		s, err := nvp.FormatScalar(value)
		if err != nil {
			continue
		}
		out[key] = s
	}
	return out
}

func toJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// persistContext detaches audit writes from the caller's cancellation. A record
// of a call the gateway already answered is written even if the client has gone.
func persistContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
}

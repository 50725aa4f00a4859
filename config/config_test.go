package config_test

import (
	"testing"
	"time"

	"github.com/mark1979smith/farmison/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")

	cfg, err := config.New()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.APP.PORT)
	assert.False(t, cfg.APP.IsProduction())
	assert.Equal(t, "109.0", cfg.PayPal.APIVersion)
	assert.Equal(t, 30*time.Second, cfg.PayPal.Timeout)
	assert.Empty(t, cfg.PayPal.NotifyURL)
	assert.Equal(t, 1, cfg.PayPal.GetRetryConfig().MaxAttempts)
	assert.Equal(t, 5.0, cfg.MaxMind.HighRiskThreshold)
	assert.Equal(t, 1, cfg.MaxMind.GetRetryConfig().MaxAttempts)
	assert.Equal(t, 5, cfg.Kafka.GetRetryConfig().MaxAttempts)
	assert.Equal(t, "checkout.payments.duplicate,fraud.score.high", cfg.Kafka.PublishTopics)
	assert.Equal(t, "FM", cfg.OrderNumber.Prefix)
	assert.Equal(t, 6, cfg.OrderNumber.Width)
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("APP_ENV", config.EnvProduction)
	t.Setenv("PAYPAL_API_USER", "merchant_api1.farmison.com")
	t.Setenv("PAYPAL_RETRY_MAX_ATTEMPTS", "3")
	t.Setenv("PAYPAL_TIMEOUT", "5s")
	t.Setenv("PAYPAL_NOTIFY_URL", "https://shop.example/ipn")
	t.Setenv("MAXMIND_HIGH_RISK_THRESHOLD", "7.5")

	cfg, err := config.New()

	require.NoError(t, err)
	assert.True(t, cfg.APP.IsProduction())
	assert.Equal(t, "merchant_api1.farmison.com", cfg.PayPal.User)
	assert.Equal(t, 3, cfg.PayPal.GetRetryConfig().MaxAttempts)
	assert.Equal(t, 5*time.Second, cfg.PayPal.Timeout)
	assert.Equal(t, "https://shop.example/ipn", cfg.PayPal.NotifyURL)
	assert.Equal(t, 7.5, cfg.MaxMind.HighRiskThreshold)
}

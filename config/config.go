package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const EnvProduction = "production"

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Error("Error can't get the environment variables by file")
		}
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	PayPal
	MaxMind
	OrderNumber
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
	ENV  string `env:"APP_ENV" envDefault:"local"`
}

// IsProduction reports whether alerts should be flagged as coming from a live shop.
func (a APP) IsProduction() bool {
	return a.ENV == EnvProduction
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"checkout.payments.duplicate,fraud.score.high"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// PayPal holds the Express Checkout NVP credentials and transport settings.
// RetryMaxAttempts defaults to 1: a gateway call is never repeated unless asked for.
// NotifyURL is sent as the IPN listener only when set.
type PayPal struct {
	Endpoint    string        `env:"PAYPAL_API_ENDPOINT" envDefault:"https://api-3t.paypal.com/nvp"`
	APIVersion  string        `env:"PAYPAL_API_VERSION" envDefault:"109.0"`
	User        string        `env:"PAYPAL_API_USER"`
	Password    string        `env:"PAYPAL_API_PASSWORD"`
	Signature   string        `env:"PAYPAL_API_SIGNATURE"`
	RedirectURL string        `env:"PAYPAL_REDIRECT_URL" envDefault:"https://www.paypal.com/cgi-bin/webscr?cmd=_express-checkout&token="`
	NotifyURL   string        `env:"PAYPAL_NOTIFY_URL"`
	Timeout     time.Duration `env:"PAYPAL_TIMEOUT" envDefault:"30s"`

	RetryMaxAttempts int           `env:"PAYPAL_RETRY_MAX_ATTEMPTS" envDefault:"1"`
	RetryBaseDelay   time.Duration `env:"PAYPAL_RETRY_BASE_DELAY" envDefault:"200ms"`
	RetryMaxDelay    time.Duration `env:"PAYPAL_RETRY_MAX_DELAY" envDefault:"5s"`
	RetryJitter      bool          `env:"PAYPAL_RETRY_JITTER" envDefault:"true"`
}

type MaxMind struct {
	Endpoint          string        `env:"MAXMIND_ENDPOINT" envDefault:"https://minfraud.maxmind.com/app/ccv2r"`
	LicenseKey        string        `env:"MAXMIND_LICENSE_KEY"`
	HighRiskThreshold float64       `env:"MAXMIND_HIGH_RISK_THRESHOLD" envDefault:"5"`
	Timeout           time.Duration `env:"MAXMIND_TIMEOUT" envDefault:"10s"`

	RetryMaxAttempts int           `env:"MAXMIND_RETRY_MAX_ATTEMPTS" envDefault:"1"`
	RetryBaseDelay   time.Duration `env:"MAXMIND_RETRY_BASE_DELAY" envDefault:"200ms"`
	RetryMaxDelay    time.Duration `env:"MAXMIND_RETRY_MAX_DELAY" envDefault:"2s"`
	RetryJitter      bool          `env:"MAXMIND_RETRY_JITTER" envDefault:"true"`
}

type OrderNumber struct {
	Prefix string `env:"ORDER_NUMBER_PREFIX" envDefault:"FM"`
	Width  int    `env:"ORDER_NUMBER_WIDTH" envDefault:"6"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

func (p PayPal) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: p.RetryMaxAttempts,
		BaseDelay:   p.RetryBaseDelay,
		MaxDelay:    p.RetryMaxDelay,
		Jitter:      p.RetryJitter,
	}
}

func (m MaxMind) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: m.RetryMaxAttempts,
		BaseDelay:   m.RetryBaseDelay,
		MaxDelay:    m.RetryMaxDelay,
		Jitter:      m.RetryJitter,
	}
}

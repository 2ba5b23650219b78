package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
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
	Gateway
	Settlement
	Auth
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}

type Kafka struct {
	Brokers           string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	NotificationTopic string `env:"KAFKA_NOTIFICATION_TOPIC" envDefault:"notifications.requested"`
	AnomalyTopic      string `env:"KAFKA_ANOMALY_TOPIC" envDefault:"payments.anomaly"`
	DLQTopic          string `env:"KAFKA_DLQ_TOPIC" envDefault:"payments.dlq"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// Gateway holds the credentials and endpoints for the external mobile money
// push-payment API. Simulation switches the client to synthetic responses and
// must never be enabled in production.
type Gateway struct {
	BaseURL        string        `env:"GATEWAY_BASE_URL" envDefault:"https://sandbox.safaricom.co.ke"`
	ConsumerKey    string        `env:"GATEWAY_CONSUMER_KEY"`
	ConsumerSecret string        `env:"GATEWAY_CONSUMER_SECRET"`
	ShortCode      string        `env:"GATEWAY_SHORTCODE"`
	Passkey        string        `env:"GATEWAY_PASSKEY"`
	CallbackURL    string        `env:"GATEWAY_CALLBACK_URL"`
	Timeout        time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"30s"`
	Simulation     bool          `env:"GATEWAY_SIMULATION" envDefault:"false"`
}

type Settlement struct {
	CommissionRate string        `env:"SETTLEMENT_COMMISSION_RATE" envDefault:"0.15"`
	Currency       string        `env:"SETTLEMENT_CURRENCY" envDefault:"KES"`
	CallbackWindow time.Duration `env:"SETTLEMENT_CALLBACK_WINDOW" envDefault:"3m"`
	SweepInterval  time.Duration `env:"SETTLEMENT_SWEEP_INTERVAL" envDefault:"1m"`
	ExpiryWindow   time.Duration `env:"SETTLEMENT_EXPIRY_WINDOW" envDefault:"15m"`
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

// CommissionDecimal parses the configured commission rate. A rate that does
// not parse or falls outside [0, 1) is replaced with the 15% default.
func (s Settlement) CommissionDecimal() decimal.Decimal {
	rate, err := decimal.NewFromString(s.CommissionRate)
	if err != nil || rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		logrus.Warnf("invalid commission rate %q, falling back to 0.15", s.CommissionRate)
		return decimal.NewFromFloat(0.15)
	}
	return rate
}

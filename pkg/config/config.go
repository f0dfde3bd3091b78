package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "SKT"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv            = "SKT_APP_ENV"
	EnvPort              = "SKT_APP_PORT"
	EnvShippingFee       = "SKT_SHIPPING_FEE"
	EnvPromoCode         = "SKT_PROMO_CODE"
	EnvPromoAmount       = "SKT_PROMO_AMOUNT"
	EnvFeedbackDelay     = "SKT_FEEDBACK_DELAY"
	EnvSessionTTL        = "SKT_SESSION_TTL"
	EnvSessionSweepEvery = "SKT_SESSION_SWEEP_INTERVAL"
	EnvCORSOrigins       = "SKT_CORS_ORIGINS"
)

type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	Storefront StorefrontConfig
	Session    SessionConfig
	Metrics    MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SKT_APP_ENV" required:"true"`
	Port         string `envconfig:"SKT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SKT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SKT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev) || strings.EqualFold(a.Env, "dev")
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "prod")
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `envconfig:"SKT_HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SKT_HTTP_WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SKT_HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
	CORSOrigins     []string      `envconfig:"SKT_CORS_ORIGINS" default:"http://localhost:5173"`
}

// StorefrontConfig holds the pricing and UI feedback knobs of the storefront.
type StorefrontConfig struct {
	ShippingFee   int           `envconfig:"SKT_SHIPPING_FEE" default:"12"`
	PromoCode     string        `envconfig:"SKT_PROMO_CODE" default:"skt10"`
	PromoAmount   int           `envconfig:"SKT_PROMO_AMOUNT" default:"10"`
	SearchLimit   int           `envconfig:"SKT_SEARCH_LIMIT" default:"6"`
	DealsLimit    int           `envconfig:"SKT_DEALS_LIMIT" default:"5"`
	FeedbackDelay time.Duration `envconfig:"SKT_FEEDBACK_DELAY" default:"2s"`
	RedirectDelay time.Duration `envconfig:"SKT_REDIRECT_DELAY" default:"2s"`
}

type SessionConfig struct {
	Header        string        `envconfig:"SKT_SESSION_HEADER" default:"X-SKT-Session"`
	TTL           time.Duration `envconfig:"SKT_SESSION_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"SKT_SESSION_SWEEP_INTERVAL" default:"1m"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"SKT_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"SKT_METRICS_PATH" default:"/metrics"`
}

func (c *Config) validate() error {
	s := c.Storefront
	if s.ShippingFee < 0 {
		return fmt.Errorf("%s must be non-negative", EnvShippingFee)
	}
	if s.PromoAmount < 0 {
		return fmt.Errorf("%s must be non-negative", EnvPromoAmount)
	}
	if strings.TrimSpace(s.PromoCode) == "" {
		return fmt.Errorf("%s must not be blank", EnvPromoCode)
	}
	if s.FeedbackDelay <= 0 {
		return fmt.Errorf("%s must be positive", EnvFeedbackDelay)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvSessionTTL)
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("%s must be positive", EnvSessionSweepEvery)
	}
	return nil
}

package config

import (
	"net/url"
	"time"

	envConfig "github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/opsmux/bamboo-watcher/internal/models"
)

const (
	LogFormatText = "text"
)

type WebhookConfig struct {
	Enabled              bool   `env:"WEBHOOK_ENABLED" envDefault:"false" json:"enabled"`
	Url                  string `env:"WEBHOOK_URL" json:"url,omitempty"`
	ContentType          string `env:"WEBHOOK_CONTENT_TYPE" envDefault:"application/json" json:"content_type,omitempty"`
	Format               string `env:"WEBHOOK_FORMAT" envDefault:"{\"id\":\"{{.Id}}\",\"plan_key\":\"{{.PlanKey}}\",\"build_number\":{{.BuildNumber}},\"status\":\"{{.Status}}\"}" json:"-"`
	AuthorizationHeader  string `env:"WEBHOOK_AUTHORIZATION_HEADER" envDefault:"Authorization" json:"authorization_header,omitempty"`
	Token                string `env:"WEBHOOK_TOKEN" json:"-"`
	AllowedResponseCodes []int  `env:"WEBHOOK_ALLOWED_RESPONSE_CODES" envDefault:"200" envSeparator:"," json:"allowed_response_codes,omitempty"`
}

type ServerConfig struct {
	BambooUrl            url.URL       `env:"BAMBOO_URL,required" json:"bamboo_url"`
	BambooUsername       string        `env:"BAMBOO_USERNAME" json:"-"`
	BambooPassword       string        `env:"BAMBOO_PASSWORD" json:"-"`
	MaxRetries           int           `env:"MAX_RETRIES" envDefault:"6" validate:"gt=0" json:"max_retries"`
	RetryInterval        int           `env:"RETRY_INTERVAL" envDefault:"10" validate:"gt=0" json:"retry_interval"`
	MaxConcurrentWatches int           `env:"MAX_CONCURRENT_WATCHES" envDefault:"10" validate:"gt=0" json:"max_concurrent_watches"` // dispatch cap, watches above it wait in the queue
	SkipTlsVerify        bool          `env:"SKIP_TLS_VERIFY" envDefault:"false" json:"skip_tls_verify"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info" json:"log_level"`
	LogFormat            string        `env:"LOG_FORMAT" envDefault:"json" json:"-"`
	Host                 string        `env:"HOST" envDefault:"0.0.0.0" json:"-"`
	Port                 string        `env:"PORT" envDefault:"8080" json:"-"`
	DeployToken          string        `env:"WATCHER_DEPLOY_TOKEN" json:"-"`
	JWTSecret            string        `env:"JWT_SECRET" json:"-"`
	DevEnvironment       bool          `env:"DEV_ENVIRONMENT" envDefault:"false" json:"-"`
	Webhook              WebhookConfig `json:"webhook,omitempty"`
}

// NewServerConfig parses the server configuration from environment variables.
// On top of the env tags it validates the numeric poll settings, since a
// non-positive retry count or interval would collapse the poll budget to zero.
func NewServerConfig() (*ServerConfig, error) {
	var config ServerConfig

	if err := envConfig.Parse(&config); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// GetCredentials returns the Bamboo basic auth pair, or nil when no username
// is configured and the trigger call should go out unauthenticated.
func (config *ServerConfig) GetCredentials() *models.Credentials {
	if config.BambooUsername == "" {
		return nil
	}
	return &models.Credentials{
		Username: config.BambooUsername,
		Password: config.BambooPassword,
	}
}

// GetRetryInterval returns the poll interval as a duration.
func (config *ServerConfig) GetRetryInterval() time.Duration {
	return time.Duration(config.RetryInterval) * time.Second
}

package client

import (
	"time"

	envConfig "github.com/caarlos0/env/v11"
)

type ClientConfig struct {
	Url         string        `env:"WATCHER_URL,required"`
	InfoUrl     string        `env:"INFO_URL"`
	GitSha      string        `env:"GIT_SHA"`
	PlanKey     string        `env:"PLAN_KEY"`
	BuildNumber int           `env:"BUILD_NUMBER"`
	Token       string        `env:"WATCHER_DEPLOY_TOKEN"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"60s"`
	Wait        bool          `env:"WAIT_FOR_TRIGGER" envDefault:"false"`
	Debug       bool          `env:"DEBUG"`
}

func NewClientConfig() (*ClientConfig, error) {
	var config ClientConfig

	if err := envConfig.Parse(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

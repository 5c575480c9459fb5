package server

import (
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsmux/bamboo-watcher/internal/config"
)

func TestNewServer_Success(t *testing.T) {
	reg := prometheus.NewRegistry()
	bambooURL, err := url.Parse("https://bamboo.example.com")
	require.NoError(t, err)

	cfg := &config.ServerConfig{
		BambooUrl:            *bambooURL,
		MaxRetries:           6,
		RetryInterval:        10,
		MaxConcurrentWatches: 10,
		LogLevel:             "info",
	}

	s, err := NewServer(cfg, reg)

	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, cfg, s.config)
	assert.NotNil(t, s.router)
	assert.NotNil(t, s.queue)

	s.queue.StopListen()
}

func TestNewServer_InvalidWebhookTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	bambooURL, err := url.Parse("https://bamboo.example.com")
	require.NoError(t, err)

	cfg := &config.ServerConfig{
		BambooUrl:            *bambooURL,
		MaxRetries:           6,
		RetryInterval:        10,
		MaxConcurrentWatches: 10,
		LogLevel:             "info",
		Webhook: config.WebhookConfig{
			Enabled: true,
			Url:     "https://webhook.example.com",
			Format:  "{{.Unclosed",
		},
	}

	_, err = NewServer(cfg, reg)
	assert.Error(t, err)
}

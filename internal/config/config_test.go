package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("BAMBOO_URL", "https://bamboo.example.com")

		config, err := NewServerConfig()

		require.NoError(t, err)
		assert.Equal(t, "https://bamboo.example.com", config.BambooUrl.String())
		assert.Equal(t, 6, config.MaxRetries)
		assert.Equal(t, 10, config.RetryInterval)
		assert.Equal(t, 10, config.MaxConcurrentWatches)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, "8080", config.Port)
		assert.False(t, config.Webhook.Enabled)
		assert.Equal(t, []int{200}, config.Webhook.AllowedResponseCodes)
	})

	t.Run("missing bamboo url", func(t *testing.T) {
		_, err := NewServerConfig()

		assert.Error(t, err)
	})

	t.Run("non-positive retry settings are rejected", func(t *testing.T) {
		t.Setenv("BAMBOO_URL", "https://bamboo.example.com")
		t.Setenv("MAX_RETRIES", "0")

		_, err := NewServerConfig()

		assert.Error(t, err)
	})
}

func TestGetCredentials(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		config := &ServerConfig{BambooUsername: "bamboo", BambooPassword: "secret"}

		credentials := config.GetCredentials()

		require.NotNil(t, credentials)
		assert.Equal(t, "bamboo", credentials.Username)
		assert.Equal(t, "secret", credentials.Password)
	})

	t.Run("absent", func(t *testing.T) {
		config := &ServerConfig{}

		assert.Nil(t, config.GetCredentials())
	})
}

func TestGetRetryInterval(t *testing.T) {
	config := &ServerConfig{RetryInterval: 10}

	assert.Equal(t, 10*time.Second, config.GetRetryInterval())
}

package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig(t *testing.T) {
	t.Run("Success - Full Configuration", func(t *testing.T) {
		t.Setenv("WATCHER_URL", "https://watcher.example.com")
		t.Setenv("INFO_URL", "https://service.example.com/status")
		t.Setenv("GIT_SHA", "c929b3f254b89a2e22436b31e490ba844ab0cefe")
		t.Setenv("PLAN_KEY", "REL")
		t.Setenv("BUILD_NUMBER", "42")
		t.Setenv("WAIT_FOR_TRIGGER", "true")
		t.Setenv("TIMEOUT", "30s")

		config, err := NewClientConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://watcher.example.com", config.Url)
		assert.Equal(t, "REL", config.PlanKey)
		assert.Equal(t, 42, config.BuildNumber)
		assert.True(t, config.Wait)
		assert.Equal(t, 30*time.Second, config.Timeout)
	})

	t.Run("Success - Defaults", func(t *testing.T) {
		t.Setenv("WATCHER_URL", "https://watcher.example.com")

		config, err := NewClientConfig()
		require.NoError(t, err)
		assert.Equal(t, 60*time.Second, config.Timeout)
		assert.False(t, config.Wait)
	})

	t.Run("Error - Missing Url", func(t *testing.T) {
		_, err := NewClientConfig()
		assert.Error(t, err)
	})
}

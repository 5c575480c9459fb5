package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_HELPERS_KEY", "value")

	assert.Equal(t, "value", GetEnv("TEST_HELPERS_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_HELPERS_MISSING_KEY", "fallback"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"REL", "DEV"}, "REL"))
	assert.False(t, Contains([]string{"REL", "DEV"}, "PROD"))
	assert.True(t, Contains([]int{200, 201}, 200))
	assert.False(t, Contains([]int{200, 201}, 500))
}

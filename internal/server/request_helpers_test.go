package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampOrDefault(t *testing.T) {
	t.Run("Success - Valid Timestamp", func(t *testing.T) {
		result, err := parseTimestampOrDefault("1234567890.5", 0)
		assert.NoError(t, err)
		assert.Equal(t, 1234567890.5, result)
	})

	t.Run("Success - Empty String Returns Default", func(t *testing.T) {
		result, err := parseTimestampOrDefault("", 999.0)
		assert.NoError(t, err)
		assert.Equal(t, 999.0, result)
	})

	t.Run("Error - Invalid Timestamp Format", func(t *testing.T) {
		_, err := parseTimestampOrDefault("not-a-number", 0)
		assert.Error(t, err)
	})
}

func TestRequestValues(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - JSON Body", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("POST", "/api/watch", strings.NewReader(`{"plan_key":"REL","build_number":42}`))
		c.Request.Header.Set("Content-Type", "application/json")

		values, err := requestValues(c)
		require.NoError(t, err)
		assert.Equal(t, "REL", values["plan_key"])
		assert.Equal(t, float64(42), values["build_number"])
	})

	t.Run("Success - Form Body", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("POST", "/api/watch", strings.NewReader("plan_key=REL&build_number=42"))
		c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		values, err := requestValues(c)
		require.NoError(t, err)
		assert.Equal(t, "REL", values["plan_key"])
		assert.Equal(t, "42", values["build_number"])
	})

	t.Run("Success - Query Parameters", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/watch?plan_key=REL&build_number=42", nil)

		values, err := requestValues(c)
		require.NoError(t, err)
		assert.Equal(t, "REL", values["plan_key"])
		assert.Equal(t, "42", values["build_number"])
	})

	t.Run("Error - Malformed JSON", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("POST", "/api/watch", strings.NewReader("not json"))
		c.Request.Header.Set("Content-Type", "application/json")

		_, err := requestValues(c)
		assert.Error(t, err)
	})
}

func TestLoadWatchRequest(t *testing.T) {
	validValues := func() map[string]any {
		return map[string]any{
			"info_url":     "https://service.example.com/status",
			"git_sha":      "c929b3f254b89a2e22436b31e490ba844ab0cefe",
			"plan_key":     "REL",
			"build_number": float64(42),
		}
	}

	t.Run("Success - JSON Number", func(t *testing.T) {
		request, errs := loadWatchRequest(validValues())
		require.Nil(t, errs)
		assert.Equal(t, "REL", request.PlanKey)
		assert.Equal(t, 42, request.BuildNumber)
		assert.Equal(t, "REL-42", request.BuildKey())
	})

	t.Run("Success - String Build Number", func(t *testing.T) {
		values := validValues()
		values["build_number"] = "42"

		request, errs := loadWatchRequest(values)
		require.Nil(t, errs)
		assert.Equal(t, 42, request.BuildNumber)
	})

	t.Run("Error - Missing Field", func(t *testing.T) {
		values := validValues()
		delete(values, "git_sha")

		request, errs := loadWatchRequest(values)
		assert.Nil(t, request)
		assert.Equal(t, []string{"Missing data for required field."}, errs["git_sha"])
	})

	t.Run("Error - Multiple Missing Fields", func(t *testing.T) {
		request, errs := loadWatchRequest(map[string]any{})
		assert.Nil(t, request)
		assert.Len(t, errs, 4)
	})

	t.Run("Error - Invalid URL", func(t *testing.T) {
		values := validValues()
		values["info_url"] = "not-an-url"

		request, errs := loadWatchRequest(values)
		assert.Nil(t, request)
		assert.Equal(t, []string{"Not a valid URL."}, errs["info_url"])
	})

	t.Run("Error - Fractional Build Number", func(t *testing.T) {
		values := validValues()
		values["build_number"] = 42.5

		request, errs := loadWatchRequest(values)
		assert.Nil(t, request)
		assert.Equal(t, []string{"Not a valid integer."}, errs["build_number"])
	})

	t.Run("Error - Non-Numeric Build Number", func(t *testing.T) {
		values := validValues()
		values["build_number"] = "forty-two"

		request, errs := loadWatchRequest(values)
		assert.Nil(t, request)
		assert.Equal(t, []string{"Not a valid integer."}, errs["build_number"])
	})

	t.Run("Error - Non-String Plan Key", func(t *testing.T) {
		values := validValues()
		values["plan_key"] = float64(7)

		request, errs := loadWatchRequest(values)
		assert.Nil(t, request)
		assert.Equal(t, []string{"Not a valid string."}, errs["plan_key"])
	})

	t.Run("Error - Empty Git Sha", func(t *testing.T) {
		values := validValues()
		values["git_sha"] = ""

		request, errs := loadWatchRequest(values)
		assert.Nil(t, request)
		assert.Equal(t, []string{"Missing data for required field."}, errs["git_sha"])
	})
}

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsmux/bamboo-watcher/internal/config"
	"github.com/opsmux/bamboo-watcher/internal/models"
	"github.com/opsmux/bamboo-watcher/internal/state"
	"github.com/opsmux/bamboo-watcher/internal/watcher"
)

func newTestEnv(t *testing.T, serverConfig *config.ServerConfig) (*Env, *state.InMemoryState, *watcher.WatchQueue) {
	t.Helper()

	repository := &state.InMemoryState{}
	queue := watcher.NewWatchQueue(nil, 1)

	env, err := NewEnv(serverConfig, repository, queue, nil)
	require.NoError(t, err)

	return env, repository, queue
}

func validWatchBody(t *testing.T) []byte {
	t.Helper()

	body, err := json.Marshal(models.WatchRequest{
		InfoUrl:     "https://service.example.com/status",
		GitSha:      "c929b3f254b89a2e22436b31e490ba844ab0cefe",
		PlanKey:     "REL",
		BuildNumber: 42,
	})
	require.NoError(t, err)
	return body
}

// TestWatcherHandler tests the watcherHandler with various scenarios
func TestWatcherHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - Valid Watch", func(t *testing.T) {
		env, repository, queue := newTestEnv(t, &config.ServerConfig{})

		router := gin.New()
		router.POST("/api/watch", env.watcherHandler)

		req := httptest.NewRequest(http.MethodPost, "/api/watch", bytes.NewBuffer(validWatchBody(t)))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, "{}", resp.Body.String())

		// the watch is recorded and queued for dispatch
		watches, total := repository.GetWatches(0, float64(1<<40), "", 0, 0)
		require.Equal(t, int64(1), total)
		assert.Equal(t, models.StatusInProgressMessage, watches[0].Status)
		assert.Equal(t, "REL-42", watches[0].BuildKey())

		queued, exists := queue.PollWatch()
		require.True(t, exists)
		assert.Equal(t, watches[0].Id, queued.Id)
	})

	t.Run("Success - Query Parameters", func(t *testing.T) {
		env, _, queue := newTestEnv(t, &config.ServerConfig{})

		router := gin.New()
		router.GET("/api/watch", env.watcherHandler)

		url := "/api/watch?info_url=https://service.example.com/status&git_sha=abc123&plan_key=REL&build_number=7"
		req := httptest.NewRequest(http.MethodGet, url, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)

		queued, exists := queue.PollWatch()
		require.True(t, exists)
		assert.Equal(t, "REL-7", queued.BuildKey())
	})

	t.Run("Error - Malformed JSON", func(t *testing.T) {
		env, _, queue := newTestEnv(t, &config.ServerConfig{})

		router := gin.New()
		router.POST("/api/watch", env.watcherHandler)

		req := httptest.NewRequest(http.MethodPost, "/api/watch", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "Unable to decode JSON")

		_, exists := queue.PollWatch()
		assert.False(t, exists)
	})

	t.Run("Error - Missing Field", func(t *testing.T) {
		env, _, queue := newTestEnv(t, &config.ServerConfig{})

		router := gin.New()
		router.POST("/api/watch", env.watcherHandler)

		body := []byte(`{"info_url":"https://service.example.com/status","plan_key":"REL","build_number":42}`)
		req := httptest.NewRequest(http.MethodPost, "/api/watch", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)

		var errs map[string][]string
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errs))
		assert.Equal(t, []string{"Missing data for required field."}, errs["git_sha"])

		_, exists := queue.PollWatch()
		assert.False(t, exists)
	})

	t.Run("Error - Invalid Build Number", func(t *testing.T) {
		env, _, _ := newTestEnv(t, &config.ServerConfig{})

		router := gin.New()
		router.POST("/api/watch", env.watcherHandler)

		body := []byte(`{"info_url":"https://service.example.com/status","git_sha":"abc","plan_key":"REL","build_number":"latest"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/watch", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "Not a valid integer.")
	})

	t.Run("Success - Deploy Token Recorded", func(t *testing.T) {
		env, repository, _ := newTestEnv(t, &config.ServerConfig{DeployToken: "secret-token"})

		router := gin.New()
		router.POST("/api/watch", env.watcherHandler)

		req := httptest.NewRequest(http.MethodPost, "/api/watch", bytes.NewBuffer(validWatchBody(t)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(deployTokenHeader, "secret-token")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)

		watches, _ := repository.GetWatches(0, float64(1<<40), "", 0, 0)
		require.Len(t, watches, 1)
		assert.True(t, watches[0].Validated)
	})

	t.Run("Success - Invalid Token Still Accepted", func(t *testing.T) {
		env, repository, _ := newTestEnv(t, &config.ServerConfig{DeployToken: "secret-token"})

		router := gin.New()
		router.POST("/api/watch", env.watcherHandler)

		req := httptest.NewRequest(http.MethodPost, "/api/watch", bytes.NewBuffer(validWatchBody(t)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(deployTokenHeader, "wrong-token")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)

		watches, _ := repository.GetWatches(0, float64(1<<40), "", 0, 0)
		require.Len(t, watches, 1)
		assert.False(t, watches[0].Validated)
	})
}

// TestWatchesHandler tests the watches listing endpoint
func TestWatchesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	seed := func(t *testing.T, repository *state.InMemoryState) {
		t.Helper()
		for _, plan := range []string{"REL", "REL", "OPS"} {
			_, err := repository.AddWatch(models.WatchTask{
				WatchRequest: models.WatchRequest{
					InfoUrl:     "https://service.example.com/status",
					GitSha:      "abc",
					PlanKey:     plan,
					BuildNumber: 1,
				},
			})
			require.NoError(t, err)
		}
	}

	t.Run("Success - All Watches", func(t *testing.T) {
		env, repository, _ := newTestEnv(t, &config.ServerConfig{})
		seed(t, repository)

		router := gin.New()
		router.GET("/api/v1/watches", env.watchesHandler)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/watches", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)

		var result models.WatchesResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
		assert.Equal(t, int64(3), result.Total)
		assert.Len(t, result.Watches, 3)
	})

	t.Run("Success - Filtered By Plan", func(t *testing.T) {
		env, repository, _ := newTestEnv(t, &config.ServerConfig{})
		seed(t, repository)

		router := gin.New()
		router.GET("/api/v1/watches", env.watchesHandler)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/watches?plan=OPS", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)

		var result models.WatchesResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("Error - Invalid Limit", func(t *testing.T) {
		env, _, _ := newTestEnv(t, &config.ServerConfig{})

		router := gin.New()
		router.GET("/api/v1/watches", env.watchesHandler)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/watches?limit=abc", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

// TestWatchStatusHandler tests the single watch status endpoint
func TestWatchStatusHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - Existing Watch", func(t *testing.T) {
		env, repository, _ := newTestEnv(t, &config.ServerConfig{})

		watch, err := repository.AddWatch(models.WatchTask{
			WatchRequest: models.WatchRequest{
				InfoUrl:     "https://service.example.com/status",
				GitSha:      "abc",
				PlanKey:     "REL",
				BuildNumber: 42,
			},
		})
		require.NoError(t, err)

		router := gin.New()
		router.GET("/api/v1/watches/:id", env.watchStatusHandler)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/watches/"+watch.Id, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)

		var result models.WatchStatus
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
		assert.Equal(t, watch.Id, result.Id)
		assert.Equal(t, models.StatusInProgressMessage, result.Status)
		assert.Equal(t, "REL", result.PlanKey)
		assert.Empty(t, result.Error)
	})

	t.Run("Success - Unknown Watch Returns Error Field", func(t *testing.T) {
		env, _, _ := newTestEnv(t, &config.ServerConfig{})

		router := gin.New()
		router.GET("/api/v1/watches/:id", env.watchStatusHandler)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/watches/unknown-id", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)

		var result models.WatchStatus
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
		assert.Equal(t, "unknown-id", result.Id)
		assert.NotEmpty(t, result.Error)
	})
}

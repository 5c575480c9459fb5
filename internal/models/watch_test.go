package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKey(t *testing.T) {
	request := WatchRequest{
		InfoUrl:     "https://service.example.com/status",
		GitSha:      "abc123",
		PlanKey:     "REL",
		BuildNumber: 42,
	}

	assert.Equal(t, "REL-42", request.BuildKey())
}

func TestDeployInfoDecoding(t *testing.T) {
	t.Run("expected shape", func(t *testing.T) {
		var info DeployInfo

		err := json.Unmarshal([]byte(`{"app":{"git_sha":"abc123"}}`), &info)

		require.NoError(t, err)
		assert.Equal(t, "abc123", info.App.GitSha)
	})

	t.Run("unexpected shape leaves sha empty", func(t *testing.T) {
		var info DeployInfo

		err := json.Unmarshal([]byte(`{"version":"abc123"}`), &info)

		require.NoError(t, err)
		assert.Empty(t, info.App.GitSha)
	})
}

func TestWatchTaskSerialization(t *testing.T) {
	task := WatchTask{
		WatchRequest: WatchRequest{
			InfoUrl:     "https://service.example.com/status",
			GitSha:      "abc123",
			PlanKey:     "REL",
			BuildNumber: 42,
		},
		Id:        "9185fae0-add5-11ec-87f3-56b185c552fa",
		Status:    StatusInProgressMessage,
		Validated: true,
	}

	payload, err := json.Marshal(task)
	require.NoError(t, err)

	// the validated flag is internal and must never leak into responses
	assert.NotContains(t, string(payload), "validated")
	assert.Contains(t, string(payload), `"plan_key":"REL"`)
}

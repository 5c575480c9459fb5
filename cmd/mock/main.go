package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/opsmux/bamboo-watcher/internal/helpers"
	"github.com/opsmux/bamboo-watcher/internal/models"
)

// A tiny stand-in for a deployed service and a Bamboo instance, useful for
// local runs of the watcher without real infrastructure.

var requestsCount int

func setupRouter() *gin.Engine {
	router := gin.Default()

	router.GET("/status", mockDeployInfo)
	router.PUT("/rest/api/latest/queue/:buildKey", mockResumeBuild)

	return router
}

// mockDeployInfo reports the deployed sha. The first MOCK_PENDING_POLLS
// requests return an older sha so the poll loop has something to wait for.
func mockDeployInfo(c *gin.Context) {
	var info models.DeployInfo

	pendingPolls, err := strconv.Atoi(helpers.GetEnv("MOCK_PENDING_POLLS", "2"))
	if err != nil {
		pendingPolls = 2
	}

	requestsCount++

	if requestsCount <= pendingPolls {
		info.App.GitSha = helpers.GetEnv("MOCK_PREVIOUS_SHA", "0000000000000000000000000000000000000000")
	} else {
		info.App.GitSha = helpers.GetEnv("MOCK_GIT_SHA", "c929b3f254b89a2e22436b31e490ba844ab0cefe")
	}

	c.JSON(http.StatusOK, info)
}

// mockResumeBuild mimics the Bamboo queue endpoint. Build keys without a
// dash are treated as builds that cannot be resumed.
func mockResumeBuild(c *gin.Context) {
	buildKey := c.Param("buildKey")

	if !strings.Contains(buildKey, "-") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "build cannot be resumed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"buildKey": buildKey})
}

func main() {
	log.Info().Msg("Starting mock web server")

	router := setupRouter()

	if err := router.Run(":8081"); err != nil {
		log.Fatal().Err(err).Msg("mock web server failed")
	}
}

package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/opsmux/bamboo-watcher/internal/models"
)

// watcherHandler godoc
// @Summary Register a new deployment watch
// @Description Register a deployment watch; the confirmation poll and the Bamboo trigger run in the background
// @Tags backend
// @Accept json
// @Produce json
// @Param watch body models.WatchRequest true "Watch"
// @Success 200 {object} object
// @Failure 400 {object} object
// @Router /api/watch [post]
func (env *Env) watcherHandler(c *gin.Context) {
	values, err := requestValues(c)
	if err != nil {
		log.Error().Msgf("couldn't process new watch, got the following error: %s", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to decode JSON"})
		return
	}

	request, validationErrs := loadWatchRequest(values)
	if validationErrs != nil {
		logValidationFailure(c, validationErrs)
		c.JSON(http.StatusBadRequest, validationErrs)
		return
	}

	// a failed validation never rejects the watch, it is only recorded
	tokenValid, err := env.validateToken(c)
	if err != nil {
		log.Warn().Msgf("Couldn't validate token. Got the following error: %s", err)
	}

	watch := models.WatchTask{
		WatchRequest: *request,
		Validated:    tokenValid,
	}

	newWatch, err := env.state.AddWatch(watch)
	if err != nil {
		log.Error().Msgf("Couldn't process new watch. Got the following error: %s", err)
		c.JSON(http.StatusServiceUnavailable, models.WatchStatus{
			Status: "down",
			Error:  err.Error(),
		})
		return
	}

	// the watch runs detached, the caller only learns that it was accepted
	env.queue.Enqueue(*newWatch)

	log.Info().Str("id", newWatch.Id).Msgf("Accepted watch for %s, expecting %s", newWatch.BuildKey(), newWatch.GitSha)

	c.JSON(http.StatusOK, gin.H{})
}

// watchesHandler godoc
// @Summary Get registered watches
// @Description Get all watches that match the provided parameters
// @Tags backend
// @Param plan query string false "Plan key"
// @Param from_timestamp query number false "From timestamp (seconds since epoch, fractional seconds supported)"
// @Param to_timestamp query number false "To timestamp (seconds since epoch, fractional seconds supported)"
// @Param limit query int false "Maximum number of watches to return"
// @Param offset query int false "Number of watches to skip before returning results"
// @Success 200 {object} models.WatchesResponse
// @Router /api/v1/watches [get]
func (env *Env) watchesHandler(c *gin.Context) {
	startTime, err := parseTimestampOrDefault(c.Query("from_timestamp"), 0)
	if err != nil {
		log.Warn().Msgf("invalid from_timestamp provided, using default: %v", err)
		startTime = 0
	}

	endTimeParam := c.Query("to_timestamp")
	endTime := float64(time.Now().Unix())
	if endTimeParam != "" {
		endTime, err = strconv.ParseFloat(endTimeParam, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.WatchesResponse{
				Error: fmt.Sprintf("invalid to_timestamp: %v", err),
			})
			return
		}
	}

	plan := c.Query("plan")

	limitParam := c.Query("limit")
	limit := 0
	if limitParam != "" {
		limit, err = strconv.Atoi(limitParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.WatchesResponse{
				Error: fmt.Sprintf("invalid limit: %v", err),
			})
			return
		}
	}

	offsetParam := c.Query("offset")
	offset := 0
	if offsetParam != "" {
		offset, err = strconv.Atoi(offsetParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.WatchesResponse{
				Error: fmt.Sprintf("invalid offset: %v", err),
			})
			return
		}
	}

	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	watches, total := env.state.GetWatches(startTime, endTime, plan, limit, offset)

	c.JSON(http.StatusOK, models.WatchesResponse{
		Watches: watches,
		Total:   total,
	})
}

// watchStatusHandler godoc
// @Summary Get the status of a watch
// @Description Get the status of a watch
// @Param id path string true "Watch id" default(9185fae0-add5-11ec-87f3-56b185c552fa)
// @Tags backend
// @Produce json
// @Success 200 {object} models.WatchStatus
// @Router /api/v1/watches/{id} [get]
func (env *Env) watchStatusHandler(c *gin.Context) {
	id := c.Param("id")
	watch, err := env.state.GetWatch(id)

	if err != nil {
		c.JSON(http.StatusOK, models.WatchStatus{
			Id:    id,
			Error: err.Error(),
		})
	} else {
		c.JSON(http.StatusOK, models.WatchStatus{
			Id:           watch.Id,
			Created:      watch.Created,
			Updated:      watch.Updated,
			InfoUrl:      watch.InfoUrl,
			GitSha:       watch.GitSha,
			PlanKey:      watch.PlanKey,
			BuildNumber:  watch.BuildNumber,
			Status:       watch.Status,
			StatusReason: watch.StatusReason,
		})
	}
}

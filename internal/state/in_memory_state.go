package state

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/opsmux/bamboo-watcher/internal/models"
)

const (
	// WatchStaleThresholdSeconds is the time in seconds after which an in-progress watch is considered stale and aborted.
	WatchStaleThresholdSeconds = 3600
	// ObsoleteWatchCheckInterval is the interval between checks for obsolete watches.
	ObsoleteWatchCheckInterval = 60 * time.Minute
)

// InMemoryState provides a thread-safe in-memory implementation of watch storage.
// It uses a read-write mutex to protect concurrent access to the watches slice.
type InMemoryState struct {
	mu      sync.RWMutex
	watches []models.WatchTask
}

var _ WatchRepository = (*InMemoryState)(nil)

// AddWatch records a new watch, assigning it an id and the initial status.
func (state *InMemoryState) AddWatch(task models.WatchTask) (*models.WatchTask, error) {
	state.mu.Lock()
	defer state.mu.Unlock()

	task.Id = uuid.New().String()
	task.Created = float64(time.Now().Unix())
	task.Updated = float64(time.Now().Unix())
	task.Status = models.StatusInProgressMessage
	state.watches = append(state.watches, task)
	return &task, nil
}

// GetWatches retrieves watches created within the provided time range,
// optionally filtered by plan key, newest first.
func (state *InMemoryState) GetWatches(startTime float64, endTime float64, plan string, limit int, offset int) ([]models.WatchTask, int64) {
	state.mu.RLock()
	defer state.mu.RUnlock()

	if state.watches == nil {
		return []models.WatchTask{}, 0
	}

	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	var watches []models.WatchTask
	for _, watch := range state.watches {
		if watch.Created >= startTime && watch.Created <= endTime {
			if plan == "" || plan == watch.PlanKey {
				watches = append(watches, watch)
			}
		}
	}

	if len(watches) == 0 {
		return []models.WatchTask{}, 0
	}

	sort.Slice(watches, func(i, j int) bool {
		return watches[i].Created > watches[j].Created
	})

	total := int64(len(watches))

	if offset >= len(watches) {
		return []models.WatchTask{}, total
	}

	end := len(watches)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return watches[offset:end], total
}

// GetWatch returns the watch with the provided id, or an error when no such
// watch is tracked.
func (state *InMemoryState) GetWatch(id string) (*models.WatchTask, error) {
	state.mu.RLock()
	defer state.mu.RUnlock()

	for _, watch := range state.watches {
		if watch.Id == id {
			return &watch, nil
		}
	}
	return nil, errors.New("watch not found")
}

// SetWatchStatus updates the status and status reason of the watch with the
// provided id. Returns an error if the id is not found.
func (state *InMemoryState) SetWatchStatus(id string, status string, reason string) error {
	state.mu.Lock()
	defer state.mu.Unlock()

	for idx, watch := range state.watches {
		if watch.Id == id {
			state.watches[idx].Status = status
			state.watches[idx].StatusReason = reason
			state.watches[idx].Updated = float64(time.Now().Unix())
			return nil
		}
	}
	return errors.New("watch not found")
}

// ProcessObsoleteWatches periodically marks stale in-progress watches as aborted.
// The retry package drives the loop with a fixed delay; retryTimes set to 0 retries indefinitely.
func (state *InMemoryState) ProcessObsoleteWatches(retryTimes uint) {
	log.Debug().Msg("Starting watching for obsolete watches...")
	err := retry.Do(
		func() error {
			state.mu.Lock()
			defer state.mu.Unlock()
			state.watches = processObsoleteWatches(state.watches)
			return errDesiredRetry
		},
		retry.DelayType(retry.FixedDelay),
		retry.Delay(ObsoleteWatchCheckInterval),
		retry.Attempts(retryTimes),
	)
	if err != nil {
		log.Error().Msgf("Couldn't process obsolete watches. Got the following error: %s", err)
	}
}

// processObsoleteWatches marks in-progress watches as aborted once they have
// not been updated for longer than the stale threshold. An accepted watch is
// expected to either complete or time out well before that; hitting the
// threshold means its goroutine died without recording an outcome.
func processObsoleteWatches(watches []models.WatchTask) []models.WatchTask {
	var updatedWatches []models.WatchTask
	for _, watch := range watches {
		if watch.Status == models.StatusInProgressMessage && watch.Updated+WatchStaleThresholdSeconds < float64(time.Now().Unix()) {
			watch.Status = models.StatusAborted
		}
		updatedWatches = append(updatedWatches, watch)
	}
	return updatedWatches
}

package state

import (
	"errors"

	"github.com/opsmux/bamboo-watcher/internal/models"
)

var errDesiredRetry = errors.New("desired retry error")

// WatchRepository defines the contract for watch bookkeeping. Watches are kept
// for observability only; nothing survives a process restart.
type WatchRepository interface {
	AddWatch(task models.WatchTask) (*models.WatchTask, error)
	GetWatches(startTime float64, endTime float64, plan string, limit int, offset int) ([]models.WatchTask, int64)
	GetWatch(id string) (*models.WatchTask, error)
	SetWatchStatus(id string, status string, reason string) error
	ProcessObsoleteWatches(retryTimes uint)
}

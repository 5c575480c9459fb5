package watcher

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/opsmux/bamboo-watcher/internal/models"
	"github.com/opsmux/bamboo-watcher/internal/notifications"
	"github.com/opsmux/bamboo-watcher/internal/prometheus"
	"github.com/opsmux/bamboo-watcher/internal/state"
)

const failedToUpdateWatchStatusTemplate = "Failed to change watch status: %s"

// WatchHandle exposes completion of one detached watch. The HTTP layer
// discards it; supervisors and tests can wait on Done instead of polling the
// wall clock.
type WatchHandle struct {
	done chan struct{}
}

// Done returns a channel that closes once the watch has run to completion.
func (handle *WatchHandle) Done() <-chan struct{} {
	return handle.done
}

// WatchOrchestrator composes the deployment poller and the build trigger into
// one detached unit of work per accepted watch.
type WatchOrchestrator struct {
	poller   DeploymentPoller
	bamboo   BuildTrigger
	state    state.WatchRepository
	metrics  prometheus.MetricsInterface
	notifier *notifications.Notifier
	retries  int
	interval time.Duration
}

// NewWatchOrchestrator wires the orchestrator dependencies. The retries and
// interval pair defines the poll budget shared by all watches.
func NewWatchOrchestrator(
	poller DeploymentPoller,
	bamboo BuildTrigger,
	repository state.WatchRepository,
	metrics prometheus.MetricsInterface,
	notifier *notifications.Notifier,
	retries int,
	interval time.Duration,
) *WatchOrchestrator {
	return &WatchOrchestrator{
		poller:   poller,
		bamboo:   bamboo,
		state:    repository,
		metrics:  metrics,
		notifier: notifier,
		retries:  retries,
		interval: interval,
	}
}

// Start launches the confirm-and-trigger unit for the watch in a detached
// goroutine and returns a handle whose Done channel closes when it finishes.
// The unit runs to completion; there is no cancellation.
func (orchestrator *WatchOrchestrator) Start(watch models.WatchTask) *WatchHandle {
	handle := &WatchHandle{done: make(chan struct{})}

	go func() {
		defer close(handle.done)
		orchestrator.process(watch)
	}()

	return handle
}

func (orchestrator *WatchOrchestrator) process(watch models.WatchTask) {
	log.Info().Str("id", watch.Id).Msgf("Waiting for %s to come up on %s", watch.PlanKey, watch.GitSha)
	orchestrator.metrics.AddInProgressWatch()
	defer orchestrator.metrics.RemoveInProgressWatch()

	deployed := orchestrator.poller.WaitForDeployment(watch.InfoUrl, watch.GitSha, orchestrator.retries, orchestrator.interval)
	if !deployed {
		log.Info().Str("id", watch.Id).Msg("Timed out waiting for the deploy")
		orchestrator.metrics.AddExpiredWatch(watch.PlanKey)
		orchestrator.finish(watch, models.StatusTimedOutMessage, "deployment was not confirmed within the poll budget")
		return
	}

	log.Info().Str("id", watch.Id).Msg("Deploy confirmed, triggering next phase")
	orchestrator.metrics.AddConfirmedDeployment(watch.PlanKey)

	switch err := orchestrator.bamboo.ResumeBuild(watch.WatchRequest); {
	case err == nil:
		orchestrator.metrics.AddResumedBuild(watch.PlanKey)
		orchestrator.finish(watch, models.StatusTriggeredMessage, "")
	case errors.Is(err, ErrCannotResume):
		orchestrator.metrics.AddFailedTrigger(watch.PlanKey)
		orchestrator.finish(watch, models.StatusNotResumedMessage, err.Error())
	default:
		log.Error().Str("id", watch.Id).Msgf("Couldn't resume the build. Got the following error: %s", err)
		orchestrator.metrics.AddFailedTrigger(watch.PlanKey)
		orchestrator.finish(watch, models.StatusTriggerFailedMessage, err.Error())
	}
}

// finish records the terminal status and dispatches completion notifications.
// Failures here are logged only; the original caller was answered long ago.
func (orchestrator *WatchOrchestrator) finish(watch models.WatchTask, status string, reason string) {
	if err := orchestrator.state.SetWatchStatus(watch.Id, status, reason); err != nil {
		log.Error().Str("id", watch.Id).Msgf(failedToUpdateWatchStatusTemplate, err)
	}

	watch.Status = status
	watch.StatusReason = reason

	if err := orchestrator.notifier.Send(watch); err != nil {
		log.Warn().Str("id", watch.Id).Msgf("Failed to send notifications: %s", err)
	}
}

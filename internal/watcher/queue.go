package watcher

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/opsmux/bamboo-watcher/internal/models"
)

// WatchStarter launches one detached watch unit and exposes its completion.
type WatchStarter interface {
	Start(watch models.WatchTask) *WatchHandle
}

// WatchQueue dispatches accepted watches into orchestrator goroutines while
// keeping the number of concurrently active watches under a fixed cap.
// Enqueue never blocks the caller; watches above the cap wait in the queue.
type WatchQueue struct {
	starter       WatchStarter
	maxConcurrent int

	inflightMutex   sync.Mutex
	inflightCounter int

	tickerDone chan bool
	queueMutex sync.Mutex
	queueSlice []models.WatchTask
}

// NewWatchQueue creates a queue dispatching into the provided starter with
// the given concurrency cap.
func NewWatchQueue(starter WatchStarter, maxConcurrent int) *WatchQueue {
	return &WatchQueue{
		starter:       starter,
		maxConcurrent: maxConcurrent,
	}
}

// GetInflightCount returns the number of currently running watches.
func (queue *WatchQueue) GetInflightCount() int {
	queue.inflightMutex.Lock()
	defer queue.inflightMutex.Unlock()
	return queue.inflightCounter
}

func (queue *WatchQueue) inflightCountIncrease() {
	queue.inflightMutex.Lock()
	defer queue.inflightMutex.Unlock()
	queue.inflightCounter++
}

func (queue *WatchQueue) inflightCountDecrease() {
	queue.inflightMutex.Lock()
	defer queue.inflightMutex.Unlock()
	queue.inflightCounter--
}

// Enqueue adds a watch for dispatch and returns immediately.
func (queue *WatchQueue) Enqueue(watch models.WatchTask) {
	queue.queueMutex.Lock()
	defer queue.queueMutex.Unlock()
	queue.queueSlice = append(queue.queueSlice, watch)
}

// PollWatch pops the oldest queued watch, if any.
func (queue *WatchQueue) PollWatch() (watch *models.WatchTask, exists bool) {
	queue.queueMutex.Lock()
	defer queue.queueMutex.Unlock()
	if len(queue.queueSlice) == 0 {
		return nil, false
	}
	watch = &queue.queueSlice[0]
	queue.queueSlice = queue.queueSlice[1:]
	return watch, true
}

// StartListen begins the dispatch loop. Every tick it moves queued watches
// into running goroutines until the concurrency cap is reached.
func (queue *WatchQueue) StartListen() {
	queue.tickerDone = make(chan bool)
	ticker := time.NewTicker(1 * time.Second)

	log.Debug().Msgf("Starting watch dispatcher with a cap of %d concurrent watches", queue.maxConcurrent)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-queue.tickerDone:
				return
			case <-ticker.C:
				for {
					if queue.GetInflightCount() >= queue.maxConcurrent {
						break
					}
					watch, exists := queue.PollWatch()
					if !exists {
						break
					}
					queue.inflightCountIncrease()
					go func(watch models.WatchTask) {
						handle := queue.starter.Start(watch)
						<-handle.Done()
						queue.inflightCountDecrease()
					}(*watch)
				}
			}
		}
	}()
}

// StopListen stops the dispatch loop. Watches already running are unaffected.
func (queue *WatchQueue) StopListen() {
	queue.tickerDone <- true
}

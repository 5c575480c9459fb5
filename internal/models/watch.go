package models

import "fmt"

const (
	StatusInProgressMessage    = "in progress"
	StatusTriggeredMessage     = "triggered"
	StatusNotResumedMessage    = "not resumed"
	StatusTriggerFailedMessage = "trigger failed"
	StatusTimedOutMessage      = "timed out"
	StatusAborted              = "aborted"
	StatusAccepted             = "accepted"
)

// WatchRequest is one inbound notification that a deployment is underway and
// should be confirmed. It is immutable once loaded and owned exclusively by
// the background watch spawned for it.
type WatchRequest struct {
	InfoUrl     string `json:"info_url" validate:"required,url" example:"https://service.example.com/status"`
	GitSha      string `json:"git_sha" validate:"required" example:"c929b3f254b89a2e22436b31e490ba844ab0cefe"`
	PlanKey     string `json:"plan_key" validate:"required" example:"REL"`
	BuildNumber int    `json:"build_number" example:"42"`
}

// BuildKey returns the Bamboo queue identifier in "{plan_key}-{build_number}" form.
func (request *WatchRequest) BuildKey() string {
	return fmt.Sprintf("%s-%d", request.PlanKey, request.BuildNumber)
}

// Credentials carry the Bamboo basic auth pair. Read-only for the lifetime of
// the process.
type Credentials struct {
	Username string
	Password string
}

// WatchTask is the tracked form of a WatchRequest, recorded in the watch
// repository for history endpoints and completion notifications.
type WatchTask struct {
	WatchRequest
	Id           string  `json:"id,omitempty"`
	Created      float64 `json:"created,omitempty"`
	Updated      float64 `json:"updated,omitempty"`
	Status       string  `json:"status,omitempty"`
	StatusReason string  `json:"status_reason,omitempty"`
	Validated    bool    `json:"-"`
}

type WatchesResponse struct {
	Watches []WatchTask `json:"watches"`
	Total   int64       `json:"total"`
	Error   string      `json:"error,omitempty"`
}

type WatchStatus struct {
	Id           string  `json:"id,omitempty"`
	Created      float64 `json:"created,omitempty"`
	Updated      float64 `json:"updated,omitempty"`
	InfoUrl      string  `json:"info_url,omitempty"`
	GitSha       string  `json:"git_sha,omitempty"`
	PlanKey      string  `json:"plan_key,omitempty"`
	BuildNumber  int     `json:"build_number,omitempty"`
	Status       string  `json:"status,omitempty"`
	StatusReason string  `json:"status_reason,omitempty"`
	Error        string  `json:"error,omitempty"`
}

type HealthStatus struct {
	Status string `json:"status"`
}

// DeployInfo is the payload shape expected from the polled status endpoint.
// Any other shape is treated as a non-matching response.
type DeployInfo struct {
	App struct {
		GitSha string `json:"git_sha"`
	} `json:"app"`
}

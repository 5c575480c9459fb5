package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/opsmux/bamboo-watcher/internal/models"
)

// Watcher is a thin API client for bamboo-watcher, meant to be called from
// the deploy side of a Bamboo plan: it registers a watch and, optionally,
// waits until the paused build stage was resumed.
type Watcher struct {
	baseUrl   string
	client    *http.Client
	debugMode bool
	timeout   time.Duration
}

func NewWatcher(baseUrl string, debugMode bool, timeout time.Duration) *Watcher {
	return &Watcher{
		baseUrl:   strings.TrimSuffix(baseUrl, "/"),
		client:    &http.Client{Timeout: timeout},
		debugMode: debugMode,
		timeout:   timeout,
	}
}

// addWatch registers a new watch. On validation failure the per-field
// messages returned by the server are folded into the error.
func (watcher *Watcher) addWatch(request models.WatchRequest, token string) error {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/watch", watcher.baseUrl)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	// Set the deploy token header if provided
	if token != "" {
		req.Header.Set("WATCHER_DEPLOY_TOKEN", token)
	}

	response, err := watcher.client.Do(req)
	if err != nil {
		return err
	}

	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			log.Printf("warning: failed to close response body: %v", err)
		}
	}(response.Body)

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	switch response.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		var fieldErrors map[string][]string
		if err := json.Unmarshal(responseBody, &fieldErrors); err != nil {
			return fmt.Errorf("watch was rejected: %s", responseBody)
		}
		return fmt.Errorf("watch was rejected: %v", fieldErrors)
	default:
		return fmt.Errorf("something went wrong on bamboo-watcher side. Got the following response code %d", response.StatusCode)
	}
}

// getJSON sends a GET request to a provided URL,
// parses the JSON response and stores it in the value pointed by v.
func (watcher *Watcher) getJSON(url string, v interface{}) error {
	resp, err := watcher.client.Get(url)
	if err != nil {
		return err
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("warning: failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// findWatch locates the most recent watch registered for the given request.
// The watch endpoint deliberately returns no id, so the client looks its
// watch up through the history endpoint instead.
func (watcher *Watcher) findWatch(request models.WatchRequest) (*models.WatchTask, error) {
	url := fmt.Sprintf("%s/api/v1/watches?plan=%s", watcher.baseUrl, request.PlanKey)

	var response models.WatchesResponse
	if err := watcher.getJSON(url, &response); err != nil {
		return nil, err
	}

	// watches are returned newest first
	for i := range response.Watches {
		candidate := response.Watches[i]
		if candidate.BuildNumber == request.BuildNumber && candidate.GitSha == request.GitSha {
			return &candidate, nil
		}
	}

	return nil, errors.New("couldn't find the registered watch")
}

func (watcher *Watcher) getWatchStatus(id string) (*models.WatchStatus, error) {
	url := fmt.Sprintf("%s/api/v1/watches/%s", watcher.baseUrl, id)
	var watchStatus models.WatchStatus
	if err := watcher.getJSON(url, &watchStatus); err != nil {
		return nil, err
	}
	return &watchStatus, nil
}

// waitForTrigger polls the watch status until it reaches a terminal state.
func (watcher *Watcher) waitForTrigger(id string) error {
	for {
		watchInfo, err := watcher.getWatchStatus(id)
		if err != nil {
			return err
		}

		switch watchInfo.Status {
		case models.StatusInProgressMessage:
			log.Println("Deployment confirmation is in progress...")
			time.Sleep(15 * time.Second)
		case models.StatusTriggeredMessage:
			log.Printf("The next build stage of %s-%d was resumed.\n", watchInfo.PlanKey, watchInfo.BuildNumber)
			return nil
		case models.StatusNotResumedMessage:
			return fmt.Errorf("Bamboo refused to resume the build.\n%s", watchInfo.StatusReason)
		case models.StatusTriggerFailedMessage:
			return fmt.Errorf("The trigger call failed, please check logs.\n%s", watchInfo.StatusReason)
		case models.StatusTimedOutMessage:
			return fmt.Errorf("The deployment was not confirmed in time.\n%s", watchInfo.StatusReason)
		case models.StatusAborted:
			return fmt.Errorf("The watch was aborted.\n%s", watchInfo.StatusReason)
		default:
			time.Sleep(15 * time.Second)
		}
	}
}

// createWatchRequest assembles a WatchRequest from the client configuration.
func createWatchRequest(config *ClientConfig) models.WatchRequest {
	return models.WatchRequest{
		InfoUrl:     config.InfoUrl,
		GitSha:      config.GitSha,
		PlanKey:     config.PlanKey,
		BuildNumber: config.BuildNumber,
	}
}

// printClientConfiguration logs the current configuration of the client.
func printClientConfiguration(watcher *Watcher, config *ClientConfig) {
	fmt.Printf("Got the following configuration:\n"+
		"WATCHER_URL: %s\n"+
		"INFO_URL: %s\n"+
		"GIT_SHA: %s\n"+
		"PLAN_KEY: %s\n"+
		"BUILD_NUMBER: %d\n\n",
		watcher.baseUrl, config.InfoUrl, config.GitSha, config.PlanKey, config.BuildNumber)
	if config.Token == "" {
		fmt.Println("No deploy token found, the watch will be recorded as unvalidated")
	}
}

func Run() {
	clientConfig, err := NewClientConfig()
	if err != nil {
		log.Fatalf("Couldn't get client configuration. Got the following error: %s", err)
	}

	watcher := NewWatcher(clientConfig.Url, clientConfig.Debug, clientConfig.Timeout)

	request := createWatchRequest(clientConfig)

	if watcher.debugMode {
		printClientConfiguration(watcher, clientConfig)
	}

	log.Printf("Registering watch for %s-%d, expecting %s.\n", request.PlanKey, request.BuildNumber, request.GitSha)

	if err := watcher.addWatch(request, clientConfig.Token); err != nil {
		log.Fatalf("Couldn't register watch. Got the following error: %s", err)
	}

	if !clientConfig.Wait {
		return
	}

	// Giving bamboo-watcher some time to record the watch
	time.Sleep(5 * time.Second)

	watch, err := watcher.findWatch(request)
	if err != nil {
		log.Fatalf("Couldn't look up the registered watch. Got the following error: %s", err)
	}

	if err := watcher.waitForTrigger(watch.Id); err != nil {
		log.Fatal(err)
	}
}

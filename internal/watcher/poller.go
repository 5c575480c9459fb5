package watcher

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/opsmux/bamboo-watcher/internal/models"
)

// HTTPClient defines the interface for a client that can perform HTTP requests.
// This allows for mocking in unit tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DeploymentPoller confirms that a deployment came up on the expected version.
type DeploymentPoller interface {
	WaitForDeployment(url string, gitSha string, retries int, interval time.Duration) bool
}

// pollResult classifies the outcome of a single status probe. Transport
// failures stay distinguishable for logging but fold into a no-match as far
// as the poll loop is concerned.
type pollResult int

const (
	pollMatched pollResult = iota
	pollNoMatch
	pollTransportFailure
)

// Poller polls a deployment status endpoint until it reports the expected git sha.
type Poller struct {
	client HTTPClient
}

var _ DeploymentPoller = (*Poller)(nil)

// NewPoller creates a Poller that issues status probes through the provided client.
func NewPoller(client HTTPClient) *Poller {
	return &Poller{client: client}
}

// WaitForDeployment polls until the status endpoint reports the expected sha
// or the poll budget (retries * interval) is exhausted since the first
// iteration began. The sleep comes before the probe and the elapsed check
// runs at the top of each iteration, so the final probe may land up to one
// interval past the nominal budget.
func (poller *Poller) WaitForDeployment(url string, gitSha string, retries int, interval time.Duration) bool {
	budget := time.Duration(retries) * interval
	start := time.Now()

	for time.Since(start) <= budget {
		log.Debug().Msgf("Waiting %s before checking %s", interval, url)
		time.Sleep(interval)

		switch poller.probe(url, gitSha) {
		case pollMatched:
			log.Debug().Msg("Git sha matched, deployment confirmed")
			return true
		case pollTransportFailure, pollNoMatch:
			// both continue the loop until the budget runs out
		}
	}

	log.Debug().Msgf("Poll budget of %s expired, deployment not confirmed", budget)
	return false
}

// probe issues one status request and classifies the response. Failures never
// abort the poll loop early.
func (poller *Poller) probe(url string, gitSha string) pollResult {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		log.Debug().Msgf("Couldn't create status request, got the following error: %s", err)
		return pollTransportFailure
	}
	req.Header.Set("Accept", "application/json")

	resp, err := poller.client.Do(req)
	if err != nil {
		log.Debug().Msgf("Status request failed, got the following error: %s", err)
		return pollTransportFailure
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		log.Debug().Msgf("Bad response %d from %s, trying again in a few", resp.StatusCode, url)
		return pollTransportFailure
	}

	var info models.DeployInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		log.Debug().Msgf("Couldn't decode the status response, got the following error: %s", err)
		return pollTransportFailure
	}

	if info.App.GitSha == "" {
		log.Debug().Msg("Git sha not found in the response")
		return pollNoMatch
	}

	if info.App.GitSha == gitSha {
		return pollMatched
	}

	log.Debug().Msg("Git sha not expected, retrying...")
	return pollNoMatch
}

package watcher

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/opsmux/bamboo-watcher/internal/models"
)

// ErrCannotResume is returned when Bamboo rejects the resume call outright.
var ErrCannotResume = errors.New("next stage cannot be resumed")

// BuildTrigger resumes a paused CI build stage after a confirmed deployment.
type BuildTrigger interface {
	ResumeBuild(request models.WatchRequest) error
}

// BambooService is a minimal Bamboo REST client covering the queue resume call.
type BambooService struct {
	baseUrl     string
	credentials *models.Credentials
	client      HTTPClient
}

var _ BuildTrigger = (*BambooService)(nil)

// NewBambooService creates a Bamboo client. A nil credentials pointer makes
// the resume call go out unauthenticated.
func NewBambooService(baseUrl string, credentials *models.Credentials, client HTTPClient) *BambooService {
	return &BambooService{
		baseUrl:     strings.TrimSuffix(baseUrl, "/"),
		credentials: credentials,
		client:      client,
	}
}

// ResumeBuild issues the single PUT that resumes the next pipeline stage.
// The call is never retried: a 400 means the stage cannot be resumed, and any
// status other than 200/400 is logged and treated as completion.
func (service *BambooService) ResumeBuild(request models.WatchRequest) error {
	buildUrl := fmt.Sprintf("%s/rest/api/latest/queue/%s", service.baseUrl, request.BuildKey())
	log.Debug().Msgf("Calling to %q", buildUrl)

	req, err := http.NewRequest(http.MethodPut, buildUrl, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create resume request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	if service.credentials != nil {
		req.SetBasicAuth(service.credentials.Username, service.credentials.Password)
	}

	resp, err := service.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call bamboo: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	switch resp.StatusCode {
	case http.StatusBadRequest:
		log.Error().Msgf("Next stage of %s cannot be resumed", request.BuildKey())
		return ErrCannotResume
	case http.StatusOK:
		log.Info().Msgf("Build %s resumed", request.BuildKey())
	default:
		log.Debug().Msgf("Unexpected status %d while resuming %s", resp.StatusCode, request.BuildKey())
	}

	return nil
}

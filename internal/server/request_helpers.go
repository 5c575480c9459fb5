package server

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/opsmux/bamboo-watcher/internal/models"
)

var fieldValidator = validator.New()

// ValidationErrors accumulates per-field validation messages, keyed by the
// request field name.
type ValidationErrors map[string][]string

func (errs ValidationErrors) add(field string, message string) {
	errs[field] = append(errs[field], message)
}

// requestValues flattens an incoming watch request into a canonical map,
// regardless of whether the values arrived as query parameters, a JSON body
// or a form body. Both verbs of the watch endpoint go through the same
// validation path afterwards.
func requestValues(c *gin.Context) (map[string]any, error) {
	values := make(map[string]any)

	switch c.Request.Method {
	case "POST", "PUT", "PATCH":
		contentType := c.ContentType()
		if strings.Contains(contentType, "application/json") {
			if err := json.NewDecoder(c.Request.Body).Decode(&values); err != nil {
				return nil, err
			}
			return values, nil
		}

		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		for key, value := range c.Request.PostForm {
			if len(value) > 0 {
				values[key] = value[0]
			}
		}
	default:
		for key, value := range c.Request.URL.Query() {
			if len(value) > 0 {
				values[key] = value[0]
			}
		}
	}

	return values, nil
}

// loadWatchRequest validates the canonical values map and assembles a
// WatchRequest from it. All field errors are collected in one pass so the
// caller can report them together.
func loadWatchRequest(values map[string]any) (*models.WatchRequest, ValidationErrors) {
	errs := make(ValidationErrors)

	infoUrl := stringField(values, "info_url", errs)
	gitSha := stringField(values, "git_sha", errs)
	planKey := stringField(values, "plan_key", errs)
	buildNumber := integerField(values, "build_number", errs)

	if infoUrl != "" {
		if err := fieldValidator.Var(infoUrl, "url"); err != nil {
			errs.add("info_url", "Not a valid URL.")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.WatchRequest{
		InfoUrl:     infoUrl,
		GitSha:      gitSha,
		PlanKey:     planKey,
		BuildNumber: buildNumber,
	}, nil
}

// stringField extracts a required string value from the canonical map.
func stringField(values map[string]any, field string, errs ValidationErrors) string {
	raw, ok := values[field]
	if !ok || raw == nil {
		errs.add(field, "Missing data for required field.")
		return ""
	}

	value, ok := raw.(string)
	if !ok {
		errs.add(field, "Not a valid string.")
		return ""
	}

	if value == "" {
		errs.add(field, "Missing data for required field.")
		return ""
	}

	return value
}

// integerField extracts a required integer value from the canonical map.
// Query and form values arrive as strings, JSON numbers as float64; both are
// accepted as long as the value is integral.
func integerField(values map[string]any, field string, errs ValidationErrors) int {
	raw, ok := values[field]
	if !ok || raw == nil {
		errs.add(field, "Missing data for required field.")
		return 0
	}

	switch value := raw.(type) {
	case string:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			errs.add(field, "Not a valid integer.")
			return 0
		}
		return parsed
	case float64:
		if math.Trunc(value) != value {
			errs.add(field, "Not a valid integer.")
			return 0
		}
		return int(value)
	default:
		errs.add(field, "Not a valid integer.")
		return 0
	}
}

// validateToken validates the incoming request using the configured
// authentication strategies. A failed validation is recorded on the watch
// rather than rejecting the request.
func (env *Env) validateToken(c *gin.Context) (bool, error) {
	return env.authenticator.Validate(c.Request)
}

func parseTimestampOrDefault(value string, fallback float64) (float64, error) {
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func logValidationFailure(c *gin.Context, errs ValidationErrors) {
	log.Debug().Msgf("rejected watch request on [%s] %s: %v", c.Request.Method, c.Request.URL.Path, errs)
}

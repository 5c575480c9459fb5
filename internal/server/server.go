package server

import (
	"crypto/tls"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/opsmux/bamboo-watcher/internal/config"
	"github.com/opsmux/bamboo-watcher/internal/notifications"
	prom "github.com/opsmux/bamboo-watcher/internal/prometheus"
	"github.com/opsmux/bamboo-watcher/internal/state"
	"github.com/opsmux/bamboo-watcher/internal/watcher"
)

type Server struct {
	router  *gin.Engine
	config  *config.ServerConfig
	queue   *watcher.WatchQueue
	metrics *prom.Metrics
	env     *Env
}

// NewServer creates a new server instance with the given configuration and prometheus registerer.
func NewServer(serverConfig *config.ServerConfig, reg prometheus.Registerer) (*Server, error) {
	// initialize logs
	initLogs(serverConfig.LogLevel, serverConfig.LogFormat)

	// initialize metrics on the provided prometheus registry
	metrics := prom.NewMetrics(reg)

	// create watch bookkeeping
	repository := &state.InMemoryState{}
	// start cleanup go routine (retryTimes set to 0 to retry indefinitely)
	go repository.ProcessObsoleteWatches(0)

	// shared outbound HTTP client for polls, triggers and webhooks
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: serverConfig.SkipTlsVerify}, // #nosec G402
	}
	httpClient := &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}

	// create the deployment poller and the bamboo client
	poller := watcher.NewPoller(httpClient)
	bamboo := watcher.NewBambooService(serverConfig.BambooUrl.String(), serverConfig.GetCredentials(), httpClient)

	// completion notifications go out over websocket and, optionally, a webhook
	strategies := []notifications.NotificationStrategy{&WebSocketStrategy{}}
	if serverConfig.Webhook.Enabled {
		webhookStrategy, err := notifications.NewWebhookStrategy(&serverConfig.Webhook, httpClient)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, webhookStrategy)
	}
	notifier := notifications.NewNotifier(strategies...)

	// initialize the watch orchestrator and the bounded dispatcher
	orchestrator := watcher.NewWatchOrchestrator(
		poller,
		bamboo,
		repository,
		metrics,
		notifier,
		serverConfig.MaxRetries,
		serverConfig.GetRetryInterval(),
	)
	queue := watcher.NewWatchQueue(orchestrator, serverConfig.MaxConcurrentWatches)
	queue.StartListen()

	// create environment
	env, err := NewEnv(serverConfig, repository, queue, metrics)
	if err != nil {
		return nil, err
	}

	// create router
	router := env.CreateRouter()

	return &Server{
		router:  router,
		config:  serverConfig,
		queue:   queue,
		metrics: metrics,
		env:     env,
	}, nil
}

func (s *Server) Run() {
	log.Info().Msg("Starting web server")
	s.env.StartRouter(s.router)
}

// initLogs initializes the logging configuration.
func initLogs(logLevel string, logFormat string) {
	if logFormat == config.LogFormatText {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if lvl, err := zerolog.ParseLevel(logLevel); err != nil {
		log.Warn().Msgf("Couldn't parse log level. Got the following error: %s", err)
	} else {
		zerolog.SetGlobalLevel(lvl)
		log.Debug().Msgf("Configured log level: %s", lvl)
	}
}

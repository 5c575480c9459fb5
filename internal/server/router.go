package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/opsmux/bamboo-watcher/docs"
	"github.com/opsmux/bamboo-watcher/internal/auth"
	"github.com/opsmux/bamboo-watcher/internal/config"
	"github.com/opsmux/bamboo-watcher/internal/prometheus"
	"github.com/opsmux/bamboo-watcher/internal/state"
	"github.com/opsmux/bamboo-watcher/internal/watcher"
)

var version = "local"

const deployTokenHeader = "WATCHER_DEPLOY_TOKEN"

// Env reference: https://www.alexedwards.net/blog/organising-database-access
type Env struct {
	// environment configurations
	config *config.ServerConfig
	// watch bookkeeping
	state state.WatchRepository
	// bounded watch dispatcher
	queue *watcher.WatchQueue
	// metrics
	metrics *prometheus.Metrics
	// enabled auth strategies
	strategies map[string]auth.AuthStrategy
	// authenticator orchestrates registered strategies
	authenticator *auth.Authenticator
}

// NewEnv initializes a new Env instance.
func NewEnv(serverConfig *config.ServerConfig, repository state.WatchRepository, queue *watcher.WatchQueue, metrics *prometheus.Metrics) (*Env, error) {
	env := &Env{
		config:  serverConfig,
		state:   repository,
		queue:   queue,
		metrics: metrics,
	}

	env.strategies = map[string]auth.AuthStrategy{
		deployTokenHeader: auth.NewDeployTokenAuthService(env.config.DeployToken),
	}

	if env.config.JWTSecret != "" {
		env.strategies["Authorization"] = auth.NewJWTAuthService(env.config.JWTSecret)
	}

	env.authenticator = auth.NewAuthenticator(env.strategies)

	return env, nil
}

// CreateRouter initialize router.
func (env *Env) CreateRouter() *gin.Engine {
	docs.SwaggerInfo.Title = "Bamboo-Watcher API"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "A small tool that confirms deployments and resumes paused Bamboo build stages"

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(env.corsConfig()))

	router.GET("/healthz", env.healthz)
	router.GET("/metrics", prometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ws", env.handleWebSocketConnection)

	// the watch endpoint accepts both verbs through the same validation path
	router.POST("/api/watch", env.watcherHandler)
	router.GET("/api/watch", env.watcherHandler)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/watches", env.watchesHandler)
		v1.GET("/watches/:id", env.watchStatusHandler)
		v1.GET("/version", env.getVersion)
		v1.GET("/config", env.getConfig)
	}

	return router
}

func (env *Env) StartRouter(router *gin.Engine) {
	routerBind := fmt.Sprintf("%s:%s", env.config.Host, env.config.Port)
	log.Debug().Msgf("Listening on %s", routerBind)
	if err := router.Run(routerBind); err != nil {
		panic(err)
	}
}

func (env *Env) corsConfig() cors.Config {
	corsConfig := cors.Config{
		AllowMethods:           []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:           []string{"Origin", "Content-Type", "Accept", "Authorization", deployTokenHeader},
		ExposeHeaders:          []string{"Content-Length"},
		AllowWebSockets:        true,
		AllowBrowserExtensions: true,
		MaxAge:                 12 * time.Hour,
	}

	if env.config.DevEnvironment {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}

	return corsConfig
}

// prometheusHandler returns the default promhttp handler.
func prometheusHandler() gin.HandlerFunc {
	ph := promhttp.Handler()

	return func(c *gin.Context) {
		ph.ServeHTTP(c.Writer, c.Request)
	}
}

// getVersion godoc
// @Summary Get the version of the server
// @Description Get the version of the server
// @Tags service
// @Success 200 {string} string
// @Router /api/v1/version [get]
func (env *Env) getVersion(c *gin.Context) {
	c.JSON(http.StatusOK, version)
}

// getConfig godoc
// @Summary Get the configuration of the server (excluding sensitive data)
// @Description Get the configuration of the server (excluding sensitive data)
// @Tags backend
// @Produce json
// @Success 200 {object} config.ServerConfig
// @Router /api/v1/config [get]
func (env *Env) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, env.config)
}

// healthz godoc
// @Summary Check if the server is healthy
// @Description Check if bamboo-watcher is ready to accept new watches
// @Tags service
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /healthz [get]
func (env *Env) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}

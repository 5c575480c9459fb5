package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/opsmux/bamboo-watcher/internal/config"
	"github.com/opsmux/bamboo-watcher/internal/server"
)

func main() {
	// initialize serverConfig
	serverConfig, err := config.NewServerConfig()
	if err != nil {
		log.Fatal().Msgf("Couldn't initialize config. Error: %s", err)
	}

	watcher, err := server.NewServer(serverConfig, prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Msgf("Couldn't initialize the server. Got the following error: %s", err)
	}

	watcher.Run()
}

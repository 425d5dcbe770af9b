package core

import (
	"github.com/CryptoNari/BDND-01-PrivateBlockchain/api"
	"github.com/CryptoNari/BDND-01-PrivateBlockchain/config"
	"github.com/CryptoNari/BDND-01-PrivateBlockchain/registry"
	log "github.com/sirupsen/logrus"
)

// Config keeps the global configuration
var Config = config.Default()

// SetupLogging applies the logger section of the global configuration
func SetupLogging() {
	if Config.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
	if Config.Logger.Debug {
		log.SetLevel(log.DebugLevel)
		log.Debug("Debug logging enabled")
	}
}

// NewService constructs the registry service from the global configuration
func NewService() (*registry.Service, error) {
	return registry.New(Config)
}

// RunAPI starts the API server for the given registry service
func RunAPI(s *registry.Service) {
	a := api.New(Config, s)
	err := a.Run()
	if err != nil {
		log.Error(err)
	}
}

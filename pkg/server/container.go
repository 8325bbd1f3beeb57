package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"products-api/internal/config"
	"products-api/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Dispatcher *router.Dispatcher
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	dispatcher := router.New(router.Options{
		AllowOrigin:      cfg.Dispatch.AllowOrigin,
		LegacyEchoStatus: cfg.Dispatch.LegacyEchoStatus,
		Logger:           logger,
	})

	logger.WithFields(logrus.Fields{
		"environment":     cfg.Environment,
		"deployment_mode": config.CurrentRuntime().Mode(),
		"routes":          len(dispatcher.Routes()),
	}).Debug("Container initialized")

	return &Container{
		Config:     cfg,
		Logger:     logger,
		Dispatcher: dispatcher,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	// The dispatcher holds no connections; only buffered log output remains
	if c.Logger != nil {
		c.Logger.Debug("Container closed")
	}
	return nil
}

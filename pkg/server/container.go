package server

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/teurajarvi/listservice/internal/config"
	"github.com/teurajarvi/listservice/internal/handlers"
	"github.com/teurajarvi/listservice/internal/logging"
)

// Version is reported by the health check
const Version = "1.0.0"

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	ListHandler *handlers.ListHandler
}

// Option customises a container at construction time
type Option func(*options)

type options struct {
	logOutput io.Writer
}

// WithLogOutput sends log output to w instead of stderr
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		o.logOutput = w
	}
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("failed to create container: config is nil")
	}

	o := &options{logOutput: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	logger := logging.NewWithOutput(cfg, o.logOutput)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		ListHandler: handlers.NewListHandler(logger),
	}, nil
}

// RouterConfig returns the route configuration backed by this container
func (c *Container) RouterConfig() *handlers.RouterConfig {
	return &handlers.RouterConfig{
		ListHandler: c.ListHandler,
		ServiceName: c.Config.ServiceName,
		Version:     Version,
	}
}

// Close cleans up all resources
func (c *Container) Close() error {
	return nil
}

package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface to bind; empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// WriteTimeoutSeconds bounds a response; a triggered run must finish within it.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"300" validate:"gte=0"`
}

// Address returns the listen address.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}

// FiberConfig returns the fiber settings for this server.
func (c Config) FiberConfig() fiber.Config {
	return fiber.Config{
		AppName:               "catalog-reconciler",
		DisableStartupMessage: true,
		WriteTimeout:          time.Duration(c.WriteTimeoutSeconds) * time.Second,
	}
}

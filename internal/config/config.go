// Package config loads the application configuration from a YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the Canvas connection, the HTTP
// API, the MCP server and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Canvas contains the Canvas LMS connection and harvesting settings
	Canvas struct {
		// BaseURL is the scheme and host of the Canvas instance
		BaseURL string `env:"CANVAS_BASE_URL" yaml:"baseUrl"`
		// AccessToken is a Canvas API access token sent as a bearer token
		AccessToken string `env:"CANVAS_ACCESS_TOKEN" yaml:"accessToken"`
		// CSRFToken is sent as X-CSRF-Token when authenticating with a browser session
		CSRFToken string `env:"CANVAS_CSRF_TOKEN" yaml:"csrfToken"`
		// SessionCookie is the raw Cookie header of a browser session
		SessionCookie string `env:"CANVAS_SESSION_COOKIE" yaml:"sessionCookie"`
		// BatchSize bounds concurrent page requests in the bulk pagination phase
		BatchSize int `env:"CANVAS_BATCH_SIZE" env-default:"25" yaml:"batchSize"`
		// ItemDelay is the pause after each dependent module item fetch
		ItemDelay time.Duration `env:"CANVAS_ITEM_DELAY" env-default:"500ms" yaml:"itemDelay"`
		// ItemBurst above one switches the fixed pause to a token bucket with this burst
		ItemBurst int `env:"CANVAS_ITEM_BURST" env-default:"1" yaml:"itemBurst"`
		// RequestTimeout limits a single request to Canvas
		RequestTimeout time.Duration `env:"CANVAS_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
	} `yaml:"canvas"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"5m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// A search harvests the whole course, so this is generous.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"4m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS. Empty allows any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// JWT contains the keys used to sign and verify API bearer tokens
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// MCP contains the Model Context Protocol server settings
	MCP struct {
		// Addr is the listen address of the streamable HTTP transport
		Addr string `env:"MCP_ADDR" env-default:":8081" yaml:"addr"`
	} `yaml:"mcp"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: the configuration is then read from the
// environment alone.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, err := os.Stat(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(&cfg)
	case err != nil:
		return nil, fmt.Errorf("could not stat config file: %w", err)
	default:
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

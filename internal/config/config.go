package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// MaxDispatchTimeout caps how long token issuance may wait on the dispatch endpoint.
const MaxDispatchTimeout = 5 * time.Second

// Config holds all configuration for the token service.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"livekit-token-service"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"TOKEN_API_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// OpenTelemetry
	EnableTracing bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`

	// Auth (Keycloak) - optional, guards the token endpoint
	AuthEnabled  bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthIssuer   string `env:"ISSUER"`
	AuthAudience string `env:"AUDIENCE"`
	AuthJWKSURL  string `env:"JWKS_URL"`

	// LiveKit
	LiveKitURL       string `env:"LIVEKIT_URL"`
	LiveKitAPIKey    string `env:"LIVEKIT_API_KEY"`
	LiveKitAPISecret string `env:"LIVEKIT_API_SECRET"`

	// Room naming
	RoomUniquenessCheck bool `env:"ROOM_UNIQUENESS_CHECK" envDefault:"false"`

	// Agent dispatch. Leave disabled when the LiveKit deployment dispatches
	// agents on room creation, otherwise the agent joins twice.
	DispatchEnabled bool          `env:"AGENT_DISPATCH_ENABLED" envDefault:"false"`
	DispatchAwait   bool          `env:"AGENT_DISPATCH_AWAIT" envDefault:"true"`
	DispatchURL     string        `env:"AGENT_DISPATCH_URL"`
	DispatchTimeout time.Duration `env:"AGENT_DISPATCH_TIMEOUT" envDefault:"5s"`
	AgentName       string        `env:"AGENT_NAME" envDefault:"voice-agent"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings. Any error here must stop the process
// before it serves traffic.
func (c *Config) Validate() error {
	if c.AuthEnabled {
		if strings.TrimSpace(c.AuthIssuer) == "" {
			return fmt.Errorf("ISSUER is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(c.AuthAudience) == "" {
			return fmt.Errorf("AUDIENCE is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(c.AuthJWKSURL) == "" {
			return fmt.Errorf("JWKS_URL is required when AUTH_ENABLED is true")
		}
	}

	if strings.TrimSpace(c.LiveKitAPIKey) == "" {
		return fmt.Errorf("LIVEKIT_API_KEY is required")
	}
	if strings.TrimSpace(c.LiveKitAPISecret) == "" {
		return fmt.Errorf("LIVEKIT_API_SECRET is required")
	}
	if strings.TrimSpace(c.LiveKitURL) == "" {
		return fmt.Errorf("LIVEKIT_URL is required")
	}
	if _, err := httpBaseURL(c.LiveKitURL); err != nil {
		return fmt.Errorf("LIVEKIT_URL: %w", err)
	}

	if c.DispatchEnabled {
		if c.DispatchTimeout <= 0 || c.DispatchTimeout > MaxDispatchTimeout {
			return fmt.Errorf("AGENT_DISPATCH_TIMEOUT must be in (0, %s], got %s", MaxDispatchTimeout, c.DispatchTimeout)
		}
		if strings.TrimSpace(c.AgentName) == "" {
			return fmt.Errorf("AGENT_NAME is required when AGENT_DISPATCH_ENABLED is true")
		}
		if _, err := c.AgentDispatchURL(); err != nil {
			return err
		}
	}

	return nil
}

// Addr returns the HTTP server address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// AgentDispatchURL returns the explicit dispatch endpoint, or one derived
// from LIVEKIT_URL by swapping the websocket scheme for its HTTP twin.
func (c *Config) AgentDispatchURL() (string, error) {
	if explicit := strings.TrimSpace(c.DispatchURL); explicit != "" {
		u, err := url.Parse(explicit)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return "", fmt.Errorf("AGENT_DISPATCH_URL must be an absolute http(s) URL")
		}
		return explicit, nil
	}
	base, err := httpBaseURL(c.LiveKitURL)
	if err != nil {
		return "", fmt.Errorf("derive dispatch url: %w", err)
	}
	return base + "/dispatch", nil
}

func httpBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "wss":
		u.Scheme = "https"
	case "ws":
		u.Scheme = "http"
	case "http", "https":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host")
	}
	return strings.TrimRight(u.String(), "/"), nil
}

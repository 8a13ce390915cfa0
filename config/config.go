package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - database.go: Postgres, Redis, MongoDB and Cassandra connections
//   - http.go: HTTP server configuration
//   - notifications.go: Notification store backend selection
//   - landing.go: Landing page locale and carousel settings
//   - services.go: Service mode configuration
//   - observability.go: Metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (template hot reloading, static files from disk).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Database configuration
	Postgres  DBConfig        `envPrefix:"DB_"`
	Redis     RedisConfig     `envPrefix:"REDIS_"`
	Mongo     MongoConfig     `envPrefix:"MONGO_"`
	Cassandra CassandraConfig `envPrefix:"CASSANDRA_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Service mode configuration
	Services string `env:"SERVICES" envDefault:"http,carousel"`

	// Notification store configuration
	Notifications NotificationsConfig `envPrefix:"NOTIFICATIONS_"`

	// Landing page configuration
	Landing LandingConfig `envPrefix:"LANDING_"`

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Notifications.Sanitize()
	c.Landing.Sanitize()
	c.Mongo.Sanitize()
	c.Cassandra.Sanitize()
	c.Observability.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

// GetEnabledServices returns the enabled services based on the Services field.
func (c *AppConfig) GetEnabledServices() (map[ServiceMode]bool, error) {
	return ParseServices(c.Services)
}

// IsHTTPServerEnabled returns true if the HTTP server service is enabled.
func (c *AppConfig) IsHTTPServerEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeHTTP]
}

// IsCarouselEnabled returns true if the testimonial rotation service is enabled.
func (c *AppConfig) IsCarouselEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeCarousel]
}

// NeedsPostgres reports whether the configured notification backend requires a Postgres connection.
func (c *AppConfig) NeedsPostgres() bool {
	return c.Notifications.Backend == NotificationBackendPostgres
}

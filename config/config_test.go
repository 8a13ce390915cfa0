package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestParseServices(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    map[ServiceMode]bool
		expectError bool
	}{
		{
			name:     "single service - http",
			input:    "http",
			expected: map[ServiceMode]bool{ServiceModeHTTP: true},
		},
		{
			name:     "single service - carousel",
			input:    "carousel",
			expected: map[ServiceMode]bool{ServiceModeCarousel: true},
		},
		{
			name:  "services with spaces",
			input: " http , carousel ",
			expected: map[ServiceMode]bool{
				ServiceModeHTTP:     true,
				ServiceModeCarousel: true,
			},
		},
		{
			name:  "duplicate services",
			input: "http,http,carousel",
			expected: map[ServiceMode]bool{
				ServiceModeHTTP:     true,
				ServiceModeCarousel: true,
			},
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "only spaces and commas",
			input:       " , , ",
			expectError: true,
		},
		{
			name:        "invalid service name",
			input:       "http,scheduler",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseServices(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestConfig_ServiceEnabledMethods(t *testing.T) {
	tests := []struct {
		name             string
		services         string
		expectedHTTP     bool
		expectedCarousel bool
	}{
		{name: "http only", services: "http", expectedHTTP: true},
		{name: "carousel only", services: "carousel", expectedCarousel: true},
		{name: "both", services: "http,carousel", expectedHTTP: true, expectedCarousel: true},
		{name: "invalid configuration", services: "invalid-service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AppConfig{Services: tt.services}

			if cfg.IsHTTPServerEnabled() != tt.expectedHTTP {
				t.Errorf("IsHTTPServerEnabled(): expected %v, got %v", tt.expectedHTTP, cfg.IsHTTPServerEnabled())
			}
			if cfg.IsCarouselEnabled() != tt.expectedCarousel {
				t.Errorf("IsCarouselEnabled(): expected %v, got %v", tt.expectedCarousel, cfg.IsCarouselEnabled())
			}
		})
	}
}

func TestValidServiceModes(t *testing.T) {
	modes := ValidServiceModes()
	expected := []ServiceMode{ServiceModeHTTP, ServiceModeCarousel}

	if !reflect.DeepEqual(modes, expected) {
		t.Errorf("expected %v, got %v", expected, modes)
	}
}

func TestAppConfig_ParseDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Notifications.Backend != NotificationBackendPostgres {
		t.Fatalf("expected postgres backend, got %q", cfg.Notifications.Backend)
	}
	if cfg.Notifications.StoreTimeout != 5*time.Second {
		t.Fatalf("expected 5s store timeout, got %v", cfg.Notifications.StoreTimeout)
	}
	if cfg.Landing.DefaultLocale != "en" {
		t.Fatalf("expected en default locale, got %q", cfg.Landing.DefaultLocale)
	}
	if cfg.Landing.CarouselInterval != 5*time.Second {
		t.Fatalf("expected 5s carousel interval, got %v", cfg.Landing.CarouselInterval)
	}
	if !cfg.NeedsPostgres() {
		t.Fatalf("expected postgres to be required by default")
	}
}

func TestAppConfig_ParseStoreEnv(t *testing.T) {
	t.Setenv("NOTIFICATIONS_BACKEND", "Cassandra")
	t.Setenv("NOTIFICATIONS_STORE_TIMEOUT", "2s")
	t.Setenv("CASSANDRA_HOSTS", "cass-1, cass-2,")
	t.Setenv("CASSANDRA_KEYSPACE", "jobs")
	t.Setenv("CASSANDRA_CONSISTENCY", " ONE ")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DATABASE", "board")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	expectedCassandra := CassandraConfig{
		Hosts:             []string{"cass-1", "cass-2"},
		Keyspace:          "jobs",
		Consistency:       "one",
		ReplicationFactor: 1,
		Timeout:           5 * time.Second,
	}
	if !reflect.DeepEqual(cfg.Cassandra, expectedCassandra) {
		t.Fatalf("unexpected cassandra configuration:\nexpected: %#v\ngot:      %#v", expectedCassandra, cfg.Cassandra)
	}

	expectedMongo := MongoConfig{
		URI:            "mongodb://mongo:27017",
		Database:       "board",
		Collection:     "notifications",
		ConnectTimeout: 10 * time.Second,
	}
	if !reflect.DeepEqual(cfg.Mongo, expectedMongo) {
		t.Fatalf("unexpected mongo configuration:\nexpected: %#v\ngot:      %#v", expectedMongo, cfg.Mongo)
	}

	if cfg.Notifications.Backend != NotificationBackendCassandra {
		t.Fatalf("expected cassandra backend, got %q", cfg.Notifications.Backend)
	}
	if cfg.Notifications.StoreTimeout != 2*time.Second {
		t.Fatalf("expected 2s store timeout, got %v", cfg.Notifications.StoreTimeout)
	}
	if cfg.NeedsPostgres() {
		t.Fatalf("cassandra backend should not require postgres")
	}
}

func TestNotificationsConfig_Sanitize(t *testing.T) {
	cfg := NotificationsConfig{Backend: "dynamo", StoreTimeout: -1}
	cfg.Sanitize()

	if cfg.Backend != NotificationBackendPostgres {
		t.Fatalf("expected unknown backend to fall back to postgres, got %q", cfg.Backend)
	}
	if cfg.StoreTimeout != 5*time.Second {
		t.Fatalf("expected store timeout to fall back to default, got %v", cfg.StoreTimeout)
	}
}

func TestLandingConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name             string
		in               LandingConfig
		expectedLocale   string
		expectedInterval time.Duration
	}{
		{
			name:             "unsupported locale",
			in:               LandingConfig{DefaultLocale: "fr", CarouselInterval: 3 * time.Second},
			expectedLocale:   "en",
			expectedInterval: 3 * time.Second,
		},
		{
			name:             "mixed case locale",
			in:               LandingConfig{DefaultLocale: " HI ", CarouselInterval: 0},
			expectedLocale:   "hi",
			expectedInterval: 5 * time.Second,
		},
		{
			name:             "interval below floor",
			in:               LandingConfig{DefaultLocale: "bn", CarouselInterval: 10 * time.Millisecond},
			expectedLocale:   "bn",
			expectedInterval: time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Sanitize()
			if cfg.DefaultLocale != tt.expectedLocale {
				t.Errorf("expected locale %q, got %q", tt.expectedLocale, cfg.DefaultLocale)
			}
			if cfg.CarouselInterval != tt.expectedInterval {
				t.Errorf("expected interval %v, got %v", tt.expectedInterval, cfg.CarouselInterval)
			}
		})
	}
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	cfg := HTTPConfig{BaseURL: " https://jobs.example.com/ ", CompressionLevel: 42}
	cfg.Sanitize()

	if cfg.BaseURL != "https://jobs.example.com" {
		t.Fatalf("expected trailing slash to be trimmed, got %q", cfg.BaseURL)
	}
	if cfg.CompressionLevel != 9 {
		t.Fatalf("expected compression level to be clamped to 9, got %d", cfg.CompressionLevel)
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " ",
	}

	cfg.Sanitize()

	if cfg.Enabled {
		t.Fatalf("expected enabled to be false when address is empty")
	}
	if cfg.Prefix != "localjobs" {
		t.Fatalf("expected default prefix, got %q", cfg.Prefix)
	}

	cfg = ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " statsd:1234 ",
		Prefix:        "board",
	}

	cfg.Sanitize()

	if !cfg.IsEnabled() {
		t.Fatalf("expected metrics to remain enabled")
	}
	if cfg.StatsdAddress != "statsd:1234" {
		t.Fatalf("expected address to be trimmed, got %q", cfg.StatsdAddress)
	}
}

package config

import (
	"strings"
	"time"
)

// NotificationBackend names the store that backs the notification repository.
type NotificationBackend string

const (
	NotificationBackendPostgres  NotificationBackend = "postgres"
	NotificationBackendMongo     NotificationBackend = "mongo"
	NotificationBackendCassandra NotificationBackend = "cassandra"
	NotificationBackendMemory    NotificationBackend = "memory"
)

// NotificationsConfig contains notification store configuration.
type NotificationsConfig struct {
	// Backend selects the notification store: postgres, mongo, cassandra or memory.
	Backend NotificationBackend `env:"BACKEND" envDefault:"postgres"`

	// StoreTimeout bounds every individual store call.
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
}

// Sanitize applies guardrails to notification configuration values.
func (n *NotificationsConfig) Sanitize() {
	n.Backend = NotificationBackend(strings.ToLower(strings.TrimSpace(string(n.Backend))))
	switch n.Backend {
	case NotificationBackendPostgres, NotificationBackendMongo, NotificationBackendCassandra, NotificationBackendMemory:
	default:
		n.Backend = NotificationBackendPostgres
	}
	if n.StoreTimeout <= 0 {
		n.StoreTimeout = 5 * time.Second
	}
}

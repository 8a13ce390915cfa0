package config

import (
	"strings"
	"time"
)

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"                    envDefault:"localhost"`
	Port     int    `env:"PORT"                    envDefault:"5432"`
	User     string `env:"USER"                    envDefault:"localjobs"`
	Password string `env:"PASSWORD"                envDefault:"localjobs"`
	Name     string `env:"NAME"                    envDefault:"localjobs"`
	SSLMode  string `env:"SSL_MODE"                envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
	// Disabled skips Redis entirely; locale preferences and the carousel cursor are then kept in memory.
	Disabled bool `env:"DISABLED" envDefault:"false"`
}

// MongoConfig contains MongoDB configuration for the document-store notification backend.
type MongoConfig struct {
	URI            string        `env:"URI"             envDefault:"mongodb://localhost:27017"`
	Database       string        `env:"DATABASE"        envDefault:"localjobs"`
	Collection     string        `env:"COLLECTION"      envDefault:"notifications"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to MongoDB configuration values.
func (m *MongoConfig) Sanitize() {
	m.URI = strings.TrimSpace(m.URI)
	if m.Database = strings.TrimSpace(m.Database); m.Database == "" {
		m.Database = "localjobs"
	}
	if m.Collection = strings.TrimSpace(m.Collection); m.Collection == "" {
		m.Collection = "notifications"
	}
	if m.ConnectTimeout <= 0 {
		m.ConnectTimeout = 10 * time.Second
	}
}

// CassandraConfig contains Cassandra configuration for the wide-column notification backend.
type CassandraConfig struct {
	Hosts             []string      `env:"HOSTS"              envDefault:"localhost"`
	Keyspace          string        `env:"KEYSPACE"           envDefault:"localjobs"`
	Consistency       string        `env:"CONSISTENCY"        envDefault:"quorum"`
	ReplicationFactor int           `env:"REPLICATION_FACTOR" envDefault:"1"`
	Username          string        `env:"USERNAME"           envDefault:""`
	Password          string        `env:"PASSWORD"           envDefault:""`
	Timeout           time.Duration `env:"TIMEOUT"            envDefault:"5s"`
}

// Sanitize applies guardrails to Cassandra configuration values.
func (c *CassandraConfig) Sanitize() {
	hosts := make([]string, 0, len(c.Hosts))
	for _, h := range c.Hosts {
		if trimmed := strings.TrimSpace(h); trimmed != "" {
			hosts = append(hosts, trimmed)
		}
	}
	c.Hosts = hosts
	if c.Keyspace = strings.TrimSpace(c.Keyspace); c.Keyspace == "" {
		c.Keyspace = "localjobs"
	}
	c.Consistency = strings.ToLower(strings.TrimSpace(c.Consistency))
	if c.Consistency == "" {
		c.Consistency = "quorum"
	}
	if c.ReplicationFactor < 1 {
		c.ReplicationFactor = 1
	}
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
}

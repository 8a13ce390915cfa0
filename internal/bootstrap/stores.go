package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/localjobs/localjobs-web/config"
	"github.com/localjobs/localjobs-web/internal/core"
	"github.com/localjobs/localjobs-web/internal/data"
	httpx "github.com/localjobs/localjobs-web/internal/http"
)

// Infrastructure holds the connections opened for the configured backends.
// Fields are nil for stores the configuration does not use.
type Infrastructure struct {
	DB        *sql.DB
	Redis     redis.UniversalClient
	Mongo     *mongo.Client
	Cassandra *gocql.Session
}

// OpenInfrastructure connects only to the stores the configuration needs: the notification
// backend and Redis unless it is disabled. Connections opened before a failure are closed.
func OpenInfrastructure(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*Infrastructure, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	dbCfg := DatabaseConfig{
		DBConfig:        cfg.Postgres,
		RedisConfig:     cfg.Redis,
		MongoConfig:     cfg.Mongo,
		CassandraConfig: cfg.Cassandra,
		Logger:          logger,
	}

	infra := &Infrastructure{}
	fail := func(err error) (*Infrastructure, error) {
		if cerr := infra.Close(context.Background()); cerr != nil {
			err = errors.Join(err, cerr)
		}
		return nil, err
	}

	var err error
	switch cfg.Notifications.Backend {
	case config.NotificationBackendPostgres:
		if infra.DB, err = ConnectDB(dbCfg); err != nil {
			return fail(fmt.Errorf("connect db: %w", err))
		}
	case config.NotificationBackendMongo:
		if infra.Mongo, err = ConnectMongo(ctx, dbCfg); err != nil {
			return fail(err)
		}
	case config.NotificationBackendCassandra:
		if infra.Cassandra, err = ConnectCassandra(ctx, dbCfg); err != nil {
			return fail(err)
		}
	case config.NotificationBackendMemory:
		if logger != nil {
			logger.WarnContext(ctx, "using in-memory notification store; notifications are lost on restart")
		}
	}

	if cfg.Redis.Disabled {
		if logger != nil {
			logger.WarnContext(ctx, "redis disabled; locale preferences and carousel position are kept in memory")
		}
		return infra, nil
	}
	if infra.Redis, err = ConnectRedis(dbCfg); err != nil {
		return fail(fmt.Errorf("connect redis: %w", err))
	}
	return infra, nil
}

// Close releases every open connection and joins the errors.
func (i *Infrastructure) Close(ctx context.Context) error {
	if i == nil {
		return nil
	}
	var errs []error
	if i.DB != nil {
		if err := i.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if i.Mongo != nil {
		if err := i.Mongo.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("disconnect mongo: %w", err))
		}
	}
	if i.Cassandra != nil {
		i.Cassandra.Close()
	}
	return errors.Join(errs...)
}

// HealthChecks returns one probe per open connection for /healthz.
func (i *Infrastructure) HealthChecks() map[string]httpx.HealthCheck {
	checks := map[string]httpx.HealthCheck{}
	if i == nil {
		return checks
	}
	if db := i.DB; db != nil {
		checks["postgres"] = db.PingContext
	}
	if rc := i.Redis; rc != nil {
		checks["redis"] = func(ctx context.Context) error { return rc.Ping(ctx).Err() }
	}
	if mc := i.Mongo; mc != nil {
		checks["mongo"] = func(ctx context.Context) error { return mc.Ping(ctx, readpref.Primary()) }
	}
	if cs := i.Cassandra; cs != nil {
		checks["cassandra"] = func(ctx context.Context) error {
			return cs.Query(`SELECT release_version FROM system.local`).WithContext(ctx).Exec()
		}
	}
	return checks
}

// NotificationRepository builds the repository for the configured backend and prepares
// its schema (indexes for Mongo, table and index for Cassandra). Postgres is migrated separately.
//
//nolint:ireturn // the backend is chosen at runtime.
func (i *Infrastructure) NotificationRepository(
	ctx context.Context,
	cfg *config.AppConfig,
) (core.NotificationRepository, error) {
	switch cfg.Notifications.Backend {
	case config.NotificationBackendPostgres:
		if i.DB == nil {
			return nil, errors.New("postgres backend selected but no database connection is open")
		}
		return data.NewNotificationRepo(i.DB), nil
	case config.NotificationBackendMongo:
		if i.Mongo == nil {
			return nil, errors.New("mongo backend selected but no mongo client is open")
		}
		repo := data.NewMongoNotificationRepo(i.Mongo.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	case config.NotificationBackendCassandra:
		if i.Cassandra == nil {
			return nil, errors.New("cassandra backend selected but no session is open")
		}
		repo := data.NewCassandraNotificationRepo(i.Cassandra)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	case config.NotificationBackendMemory:
		return data.NewMemoryNotificationRepo(), nil
	default:
		return nil, fmt.Errorf("unknown notification backend %q", cfg.Notifications.Backend)
	}
}

// CacheRepository returns the Redis cache when connected, otherwise an in-process cache.
//
//nolint:ireturn // Redis or memory is chosen at runtime.
func (i *Infrastructure) CacheRepository() core.CacheRepository {
	if i != nil && i.Redis != nil {
		return data.NewRedisCacheRepo(i.Redis)
	}
	return data.NewMemoryCacheRepo()
}

package data

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/localjobs/localjobs-web/internal/core"
)

const (
	localePrefKeyPrefix = "locale:language:"
	// DefaultLocalePrefTTL keeps a visitor's selection for a year of inactivity.
	DefaultLocalePrefTTL = 365 * 24 * time.Hour
)

// ErrVisitorIDRequired is returned when a preference is read or written without a visitor id.
var ErrVisitorIDRequired = errors.New("visitor id is required")

// LocalePrefRepo stores language selections in a CacheRepository (Redis or memory).
type LocalePrefRepo struct {
	cache core.CacheRepository
	ttl   time.Duration
}

// NewLocalePrefRepo creates a preference store over cache. A non-positive ttl uses DefaultLocalePrefTTL.
func NewLocalePrefRepo(cache core.CacheRepository, ttl time.Duration) *LocalePrefRepo {
	if ttl <= 0 {
		ttl = DefaultLocalePrefTTL
	}
	return &LocalePrefRepo{cache: cache, ttl: ttl}
}

// Get returns the stored locale for the visitor.
func (r *LocalePrefRepo) Get(ctx context.Context, visitorID string) (string, bool, error) {
	key, err := localePrefKey(visitorID)
	if err != nil {
		return "", false, err
	}
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("get locale preference: %w", err)
	}
	if len(raw) == 0 {
		return "", false, nil
	}
	return string(raw), true, nil
}

// Set stores the locale for the visitor, refreshing its TTL.
func (r *LocalePrefRepo) Set(ctx context.Context, visitorID, locale string) error {
	key, err := localePrefKey(visitorID)
	if err != nil {
		return err
	}
	if err := r.cache.Set(ctx, key, []byte(locale), r.ttl); err != nil {
		return fmt.Errorf("set locale preference: %w", err)
	}
	return nil
}

func localePrefKey(visitorID string) (string, error) {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return "", ErrVisitorIDRequired
	}
	return localePrefKeyPrefix + visitorID, nil
}

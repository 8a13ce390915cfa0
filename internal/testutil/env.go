// Package testutil provides helpers for tests that need real stores: Postgres, Redis,
// MongoDB and Cassandra. Each Setup helper skips the test when its store is unreachable,
// unless the matching TEST_REQUIRE_* variable (or TEST_REQUIRE_INFRA) is set.
package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"
)

// TestingTB is the subset of testing.TB the helpers use.
type TestingTB interface {
	Helper()
	Cleanup(func())
	Skip(args ...any)
	Skipf(format string, args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Logf(format string, args ...any)
}

// TestTime returns a fixed time for testing.
func TestTime() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

func required(store string) bool {
	return envBool("TEST_REQUIRE_"+store) || envBool("TEST_REQUIRE_INFRA")
}

func skipOrFail(t TestingTB, mustHave bool, args ...any) {
	t.Helper()
	if mustHave {
		t.Fatal(args...)
	}
	t.Skip(args...)
}

// uniqueName returns prefix plus 8 random hex chars, usable as a schema, collection or keyspace name.
func uniqueName(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano())
	}
	return prefix + hex.EncodeToString(b)
}

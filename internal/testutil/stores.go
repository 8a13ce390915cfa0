package testutil

import (
	"context"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SetupTestMongo connects to TEST_MONGO_URI (default mongodb://localhost:57017) and returns a
// collection unique to the test. The collection is dropped on cleanup.
// Tests will be skipped if MongoDB is not available.
func SetupTestMongo(t TestingTB) *mongo.Collection {
	t.Helper()

	uri := getEnvOrDefault("TEST_MONGO_URI", "mongodb://localhost:57017")
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(2*time.Second))
	if err != nil {
		skipOrFail(t, required("MONGO"), "MongoDB not available for testing:", err)
		return nil
	}
	if pingErr := client.Ping(ctx, readpref.Primary()); pingErr != nil {
		_ = client.Disconnect(context.Background())
		skipOrFail(t, required("MONGO"), "MongoDB not available for testing:", pingErr)
		return nil
	}

	coll := client.Database(getEnvOrDefault("TEST_MONGO_DATABASE", "localjobs_test")).
		Collection(uniqueName("notifications_"))

	t.Cleanup(func() {
		cctx, ccancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer ccancel()
		if dropErr := coll.Drop(cctx); dropErr != nil {
			t.Logf("warning: failed to drop mongo collection %s: %v", coll.Name(), dropErr)
		}
		if discErr := client.Disconnect(cctx); discErr != nil {
			t.Logf("warning: failed to disconnect mongo client: %v", discErr)
		}
	})
	return coll
}

// SetupTestCassandra opens a session on TEST_CASSANDRA_HOSTS (default localhost:59042) without a keyspace.
// Callers create their own keyspace. Tests will be skipped if Cassandra is not available.
func SetupTestCassandra(t TestingTB) *gocql.ClusterConfig {
	t.Helper()

	hosts := strings.Split(getEnvOrDefault("TEST_CASSANDRA_HOSTS", "localhost:59042"), ",")
	cluster := gocql.NewCluster(hosts...)
	cluster.Consistency = gocql.One
	cluster.Timeout = 5 * time.Second
	cluster.ConnectTimeout = 2 * time.Second

	session, err := cluster.CreateSession()
	if err != nil {
		skipOrFail(t, required("CASSANDRA"), "Cassandra not available for testing:", err)
		return nil
	}
	session.Close()
	return cluster
}

// TestKeyspace returns a keyspace name unique to the calling test.
func TestKeyspace() string {
	return uniqueName("localjobs_")
}

// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	entitystore "github.com/aivista/aivista/internal/app/store/entities"
	keywordstore "github.com/aivista/aivista/internal/app/store/keywords"
	mentionstore "github.com/aivista/aivista/internal/app/store/mentions"
	querystore "github.com/aivista/aivista/internal/app/store/queries"
	quickwinstore "github.com/aivista/aivista/internal/app/store/quickwins"
	trackingstore "github.com/aivista/aivista/internal/app/store/tracking"
	userstore "github.com/aivista/aivista/internal/app/store/users"
	"github.com/aivista/aivista/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and verifies it with a ping.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, timeouts.Ping())
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes each store needs. Index creation is
// idempotent; existing indexes with matching definitions are left alone.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	ensure := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"users", userstore.New(db).EnsureIndexes},
		{"queries", querystore.New(db).EnsureIndexes},
		{"keywords", keywordstore.New(db).EnsureIndexes},
		{"tracking", trackingstore.New(db).EnsureIndexes},
		{"mentions", mentionstore.New(db).EnsureIndexes},
		{"entities", entitystore.New(db).EnsureIndexes},
		{"quickwins", quickwinstore.New(db).EnsureIndexes},
	}

	for _, e := range ensure {
		if err := e.fn(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", e.name, err)
		}
	}

	logger.Info("database indexes ensured")
	return nil
}

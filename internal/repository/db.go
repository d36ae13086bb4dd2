package repository

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewDB connects to the document store and returns the client together with
// a handle on the named database. The single returned handle is shared by
// all in-flight requests; the driver manages pooling underneath.
func NewDB(ctx context.Context, uri, name string, appLogger *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	if appLogger == nil {
		appLogger = slog.Default()
	}

	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		appLogger.Error("Failed to connect to database", slog.Any("error", err))
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}

	appLogger.Info("Database connection established", slog.String("database", name))

	return client, client.Database(name), nil
}

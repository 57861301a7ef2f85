package mongodb

import (
	"context"
	"fmt"

	"github.com/disasterconnect/disaster_coordination_system/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoDB создает клиент MongoDB и проверяет соединение через ping.
// Один клиент переиспользуется на весь процесс и закрывается при завершении.
func NewMongoDB(ctx context.Context, appCfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось создать клиент mongodb: %w", err)
	}

	// Проверяем соединение с базой данных
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("не удалось выполнить ping к mongodb: %w", err)
	}

	return client, client.Database(appCfg.MongoDatabase), nil
}

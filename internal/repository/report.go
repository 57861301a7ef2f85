package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/disasterconnect/disaster_coordination_system/internal/models"
	"github.com/disasterconnect/disaster_coordination_system/internal/service"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const summaryCacheKey = "report:summary"

type ReportRepository struct {
	incidents   *mongo.Collection
	resources   *mongo.Collection
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewReportRepository(db *mongo.Database, redisClient *redis.Client, cacheTTL time.Duration) service.ReportRepository {
	return &ReportRepository{
		incidents:   db.Collection(incidentsCollection),
		resources:   db.Collection(resourcesCollection),
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// CountIncidentsByField группирует инциденты по значению поля через $group
func (r *ReportRepository) CountIncidentsByField(ctx context.Context, field string) (map[string]int64, error) {
	return countByField(ctx, r.incidents, field)
}

// CountResourcesByField группирует ресурсы по значению поля через $group
func (r *ReportRepository) CountResourcesByField(ctx context.Context, field string) (map[string]int64, error) {
	return countByField(ctx, r.resources, field)
}

func countByField(ctx context.Context, collection *mongo.Collection, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s counts: %w", field, storeError(err))
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s counts: %w", field, storeError(err))
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}

// GetSummaryFromCache пытается получить сводку из Redis
func (r *ReportRepository) GetSummaryFromCache(ctx context.Context) (*models.DashboardSummary, error) {
	val, err := r.redisClient.Get(ctx, summaryCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get summary from cache: %w", err)
	}

	summary := &models.DashboardSummary{}
	if err := json.Unmarshal(val, summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary from cache: %w", err)
	}
	return summary, nil
}

// SetSummaryCache сохраняет сводку в Redis
func (r *ReportRepository) SetSummaryCache(ctx context.Context, summary *models.DashboardSummary) error {
	val, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, summaryCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set summary in cache: %w", err)
	}
	return nil
}

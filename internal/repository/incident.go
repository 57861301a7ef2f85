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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const incidentsCollection = "incidents"

type IncidentRepository struct {
	collection  *mongo.Collection
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *mongo.Database, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		collection:  db.Collection(incidentsCollection),
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create вставляет новый документ инцидента и заполняет ID из InsertedID
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	result, err := r.collection.InsertOne(ctx, incident)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", storeError(err))
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	incident.ID = id
	return nil
}

// GetByID возвращает инцидент по его ObjectID
func (r *IncidentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Incident, error) {
	incident := &models.Incident{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(incident)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("incident with id %s: %w", id.Hex(), service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", storeError(err))
	}
	return incident, nil
}

// Update перезаписывает изменяемые поля документа инцидента
func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	update := bson.M{"$set": bson.M{
		"title":       incident.Title,
		"type":        incident.Type,
		"severity":    incident.Severity,
		"location":    incident.Location,
		"description": incident.Description,
		"updated_at":  incident.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": incident.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", storeError(err))
	}

	// Если ни один документ не совпал, инцидента с таким id не существует
	if result.MatchedCount == 0 {
		return fmt.Errorf("incident with id %s not found for update: %w", incident.ID.Hex(), service.ErrNotFound)
	}
	return nil
}

// List возвращает инциденты по фильтру, отсортированные по created_at по убыванию
func (r *IncidentRepository) List(ctx context.Context, filter service.IncidentFilter) ([]*models.Incident, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Severity != "" {
		query["severity"] = filter.Severity
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", storeError(err))
	}
	defer cursor.Close(ctx)

	incidents := make([]*models.Incident, 0)
	if err := cursor.All(ctx, &incidents); err != nil {
		return nil, fmt.Errorf("failed to decode incident documents: %w", storeError(err))
	}
	return incidents, nil
}

// AddResource добавляет идентификатор ресурса через $addToSet (без дубликатов)
func (r *IncidentRepository) AddResource(ctx context.Context, incidentID, resourceID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{"resources_assigned": resourceID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": incidentID}, update)
	if err != nil {
		return fmt.Errorf("failed to add resource to incident: %w", storeError(err))
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("incident with id %s not found for assign: %w", incidentID.Hex(), service.ErrNotFound)
	}
	return nil
}

// RemoveResource убирает идентификатор ресурса через $pull (идемпотентно)
func (r *IncidentRepository) RemoveResource(ctx context.Context, incidentID, resourceID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{"resources_assigned": resourceID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": incidentID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove resource from incident: %w", storeError(err))
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("incident with id %s not found for unassign: %w", incidentID.Hex(), service.ErrNotFound)
	}
	return nil
}

// Close выставляет статус closed, closed_at и резолюцию
func (r *IncidentRepository) Close(ctx context.Context, id primitive.ObjectID, notes string, closedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"status":           models.IncidentStatusClosed,
		"closed_at":        closedAt,
		"resolution_notes": notes,
		"updated_at":       closedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to close incident: %w", storeError(err))
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("incident with id %s not found for close: %w", id.Hex(), service.ErrNotFound)
	}
	return nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id primitive.ObjectID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.Hex())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.Hex())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id primitive.ObjectID) error {
	key := fmt.Sprintf("incident:%s", id.Hex())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

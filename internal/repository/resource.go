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

const resourcesCollection = "resources"

type ResourceRepository struct {
	collection  *mongo.Collection
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewResourceRepository(db *mongo.Database, redisClient *redis.Client, cacheTTL time.Duration) service.ResourceRepository {
	return &ResourceRepository{
		collection:  db.Collection(resourcesCollection),
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create вставляет новый документ ресурса и заполняет ID из InsertedID
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	result, err := r.collection.InsertOne(ctx, resource)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", storeError(err))
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	resource.ID = id
	return nil
}

// GetByID возвращает ресурс по его ObjectID
func (r *ResourceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Resource, error) {
	resource := &models.Resource{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(resource)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("resource with id %s: %w", id.Hex(), service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get resource by id: %w", storeError(err))
	}
	return resource, nil
}

// Update перезаписывает изменяемые поля документа ресурса
func (r *ResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	update := bson.M{"$set": bson.M{
		"name":         resource.Name,
		"type":         resource.Type,
		"capacity":     resource.Capacity,
		"location":     resource.Location,
		"description":  resource.Description,
		"contact_info": resource.ContactInfo,
		"updated_at":   resource.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": resource.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update resource: %w", storeError(err))
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("resource with id %s not found for update: %w", resource.ID.Hex(), service.ErrNotFound)
	}
	return nil
}

// Delete удаляет документ ресурса
func (r *ResourceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", storeError(err))
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("resource with id %s not found for delete: %w", id.Hex(), service.ErrNotFound)
	}
	return nil
}

// List возвращает ресурсы по фильтру, новые первыми
func (r *ResourceRepository) List(ctx context.Context, filter service.ResourceFilter) ([]*models.Resource, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.MaintenanceStatus != "" {
		query["maintenance_status"] = filter.MaintenanceStatus
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", storeError(err))
	}
	defer cursor.Close(ctx)

	resources := make([]*models.Resource, 0)
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, fmt.Errorf("failed to decode resource documents: %w", storeError(err))
	}
	return resources, nil
}

// SetAssignment выставляет status=assigned и обратную ссылку current_incident
func (r *ResourceRepository) SetAssignment(ctx context.Context, id, incidentID primitive.ObjectID, at time.Time) error {
	update := bson.M{"$set": bson.M{
		"status":           models.ResourceStatusAssigned,
		"current_incident": incidentID,
		"updated_at":       at,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set resource assignment: %w", storeError(err))
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("resource with id %s not found for assign: %w", id.Hex(), service.ErrNotFound)
	}
	return nil
}

// ClearAssignment выставляет status=available и обнуляет current_incident
func (r *ResourceRepository) ClearAssignment(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	update := bson.M{"$set": bson.M{
		"status":           models.ResourceStatusAvailable,
		"current_incident": nil,
		"updated_at":       at,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to clear resource assignment: %w", storeError(err))
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("resource with id %s not found for release: %w", id.Hex(), service.ErrNotFound)
	}
	return nil
}

// StartMaintenance переводит ресурс в обслуживание и снимает привязку к инциденту
func (r *ResourceRepository) StartMaintenance(ctx context.Context, id primitive.ObjectID, status, notes string, at time.Time) error {
	update := bson.M{"$set": bson.M{
		"status":             models.ResourceStatusMaintenance,
		"maintenance_status": status,
		"maintenance_notes":  notes,
		"maintenance_start":  at,
		"current_incident":   nil,
		"updated_at":         at,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to start resource maintenance: %w", storeError(err))
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("resource with id %s not found for maintenance: %w", id.Hex(), service.ErrNotFound)
	}
	return nil
}

// FinishMaintenance возвращает ресурс в available и фиксирует maintenance_end
func (r *ResourceRepository) FinishMaintenance(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	update := bson.M{"$set": bson.M{
		"status":             models.ResourceStatusAvailable,
		"maintenance_status": models.MaintenanceOperational,
		"maintenance_end":    at,
		"updated_at":         at,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to finish resource maintenance: %w", storeError(err))
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("resource with id %s not found for maintenance completion: %w", id.Hex(), service.ErrNotFound)
	}
	return nil
}

// GetResourceFromCache пытается получить ресурс из Redis
func (r *ResourceRepository) GetResourceFromCache(ctx context.Context, id primitive.ObjectID) (*models.Resource, error) {
	key := fmt.Sprintf("resource:%s", id.Hex())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resource from cache: %w", err)
	}

	resource := &models.Resource{}
	if err := json.Unmarshal(val, resource); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resource from cache: %w", err)
	}
	return resource, nil
}

// SetResourceCache сохраняет ресурс в Redis
func (r *ResourceRepository) SetResourceCache(ctx context.Context, resource *models.Resource) error {
	key := fmt.Sprintf("resource:%s", resource.ID.Hex())
	val, err := json.Marshal(resource)
	if err != nil {
		return fmt.Errorf("failed to marshal resource for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set resource in cache: %w", err)
	}
	return nil
}

// InvalidateResourceCache удаляет ресурс из Redis кэша
func (r *ResourceRepository) InvalidateResourceCache(ctx context.Context, id primitive.ObjectID) error {
	key := fmt.Sprintf("resource:%s", id.Hex())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate resource cache: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/disasterconnect/disaster_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceFilter описывает критерии выборки ресурсов.
// Диалог назначения ресурсов запрашивает {status: available, maintenance_status: operational}.
type ResourceFilter struct {
	Status            string
	Type              string
	MaintenanceStatus string
}

// UpdateResourceInput - частичное обновление ресурса, nil-поля не трогаются
type UpdateResourceInput struct {
	Name        *string
	Type        *string
	Capacity    *int
	Description *string
	ContactInfo *string
	Location    *models.Location
}

// ResourceRepository определяет контракт для работы с коллекцией ресурсов
type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Resource, error)
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error)
	SetAssignment(ctx context.Context, id, incidentID primitive.ObjectID, at time.Time) error
	ClearAssignment(ctx context.Context, id primitive.ObjectID, at time.Time) error
	StartMaintenance(ctx context.Context, id primitive.ObjectID, status, notes string, at time.Time) error
	FinishMaintenance(ctx context.Context, id primitive.ObjectID, at time.Time) error
	GetResourceFromCache(ctx context.Context, id primitive.ObjectID) (*models.Resource, error)
	SetResourceCache(ctx context.Context, resource *models.Resource) error
	InvalidateResourceCache(ctx context.Context, id primitive.ObjectID) error
}

// ResourceService определяет контракт бизнес-логики управления ресурсами.
// Операции над одной сущностью; перекрестные проверки с инцидентами живут
// в AssignmentService, единственном компоненте, мутирующем обе стороны связи.
type ResourceService interface {
	CreateResource(ctx context.Context, resource *models.Resource) error
	GetResource(ctx context.Context, id primitive.ObjectID) (*models.Resource, error)
	UpdateResource(ctx context.Context, id primitive.ObjectID, input UpdateResourceInput) error
	DeleteResource(ctx context.Context, id primitive.ObjectID) error
	ListResources(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error)
	AssignToIncident(ctx context.Context, resourceID, incidentID primitive.ObjectID) error
	ReleaseFromIncident(ctx context.Context, resourceID primitive.ObjectID) error
	MarkMaintenance(ctx context.Context, resourceID primitive.ObjectID, status, notes string) error
	CompleteMaintenance(ctx context.Context, resourceID primitive.ObjectID) error
}

type resourceService struct {
	repo   ResourceRepository
	logger *logrus.Logger
}

func NewResourceService(repo ResourceRepository, logger *logrus.Logger) ResourceService {
	return &resourceService{
		repo:   repo,
		logger: logger,
	}
}

// CreateResource создает ресурс со статусом available и без привязки к инциденту
func (s *resourceService) CreateResource(ctx context.Context, resource *models.Resource) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "resource",
		"method":  "CreateResource",
		"name":    resource.Name,
	})
	log.Info("Attempting to create a new resource")

	if err := validateNewResource(resource); err != nil {
		log.WithError(err).Warn("Resource validation failed")
		return err
	}

	now := time.Now().UTC()
	resource.Status = models.ResourceStatusAvailable
	resource.MaintenanceStatus = models.MaintenanceOperational
	resource.CurrentIncident = nil
	resource.CreatedAt = now
	resource.UpdatedAt = now

	if err := s.repo.Create(ctx, resource); err != nil {
		log.WithError(err).Error("Failed to create resource in repository")
		return fmt.Errorf("service: could not create resource: %w", err)
	}

	log.WithField("resource_id", resource.ID.Hex()).Info("Resource created successfully")
	return nil
}

// GetResource получает ресурс по ID, сначала из кеша, затем из бд
func (s *resourceService) GetResource(ctx context.Context, id primitive.ObjectID) (*models.Resource, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "GetResource",
		"resource_id": id.Hex(),
	})

	cached, err := s.repo.GetResourceFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read resource from cache")
	}
	if cached != nil {
		log.Debug("Resource served from cache")
		return cached, nil
	}

	resource, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get resource from repository")
		return nil, fmt.Errorf("service: could not get resource: %w", err)
	}

	if err := s.repo.SetResourceCache(ctx, resource); err != nil {
		log.WithError(err).Warn("Failed to cache resource")
	}

	return resource, nil
}

// UpdateResource сливает непустые поля input в существующую запись
func (s *resourceService) UpdateResource(ctx context.Context, id primitive.ObjectID, input UpdateResourceInput) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "UpdateResource",
		"resource_id": id.Hex(),
	})
	log.Info("Attempting to update resource")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent resource")
		return fmt.Errorf("service: resource %s not found for update: %w", id.Hex(), err)
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Type != nil {
		existing.Type = *input.Type
	}
	if input.Capacity != nil {
		existing.Capacity = *input.Capacity
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.ContactInfo != nil {
		existing.ContactInfo = *input.ContactInfo
	}
	if input.Location != nil {
		existing.Location = *input.Location
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update resource in repository")
		return fmt.Errorf("service: could not update resource: %w", err)
	}

	if err := s.repo.InvalidateResourceCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate resource cache")
	}

	log.Info("Resource updated successfully")
	return nil
}

// DeleteResource удаляет запись о ресурсе по явному действию пользователя.
// Очистка ссылок на стороне инцидента остается за вызывающим.
func (s *resourceService) DeleteResource(ctx context.Context, id primitive.ObjectID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "DeleteResource",
		"resource_id": id.Hex(),
	})
	log.Info("Attempting to delete resource")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent resource")
		return fmt.Errorf("service: resource %s not found for delete: %w", id.Hex(), err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete resource in repository")
		return fmt.Errorf("service: could not delete resource: %w", err)
	}

	if err := s.repo.InvalidateResourceCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate resource cache")
	}

	log.Info("Resource deleted successfully")
	return nil
}

// ListResources возвращает ресурсы по фильтру
func (s *resourceService) ListResources(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "resource",
		"method":  "ListResources",
		"status":  filter.Status,
	})
	log.Debug("Listing resources")

	resources, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list resources from repository")
		return nil, fmt.Errorf("service: could not list resources: %w", err)
	}

	log.WithField("count", len(resources)).Debug("Resources listed successfully")
	return resources, nil
}

// AssignToIncident выставляет status=assigned и обратную ссылку на инцидент
func (s *resourceService) AssignToIncident(ctx context.Context, resourceID, incidentID primitive.ObjectID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "AssignToIncident",
		"resource_id": resourceID.Hex(),
		"incident_id": incidentID.Hex(),
	})

	if err := s.repo.SetAssignment(ctx, resourceID, incidentID, time.Now().UTC()); err != nil {
		log.WithError(err).Error("Failed to set resource assignment")
		return fmt.Errorf("service: could not assign resource: %w", err)
	}

	if err := s.repo.InvalidateResourceCache(ctx, resourceID); err != nil {
		log.WithError(err).Warn("Failed to invalidate resource cache")
	}

	log.Info("Resource assigned to incident")
	return nil
}

// ReleaseFromIncident выставляет status=available и обнуляет current_incident
func (s *resourceService) ReleaseFromIncident(ctx context.Context, resourceID primitive.ObjectID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "ReleaseFromIncident",
		"resource_id": resourceID.Hex(),
	})

	if err := s.repo.ClearAssignment(ctx, resourceID, time.Now().UTC()); err != nil {
		log.WithError(err).Error("Failed to clear resource assignment")
		return fmt.Errorf("service: could not release resource: %w", err)
	}

	if err := s.repo.InvalidateResourceCache(ctx, resourceID); err != nil {
		log.WithError(err).Warn("Failed to invalidate resource cache")
	}

	log.Info("Resource released from incident")
	return nil
}

// MarkMaintenance переводит ресурс в обслуживание и фиксирует maintenance_start
func (s *resourceService) MarkMaintenance(ctx context.Context, resourceID primitive.ObjectID, status, notes string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "MarkMaintenance",
		"resource_id": resourceID.Hex(),
	})

	if status == "" {
		status = models.MaintenanceUnderRepair
	}

	if err := s.repo.StartMaintenance(ctx, resourceID, status, notes, time.Now().UTC()); err != nil {
		log.WithError(err).Error("Failed to start resource maintenance")
		return fmt.Errorf("service: could not mark resource for maintenance: %w", err)
	}

	if err := s.repo.InvalidateResourceCache(ctx, resourceID); err != nil {
		log.WithError(err).Warn("Failed to invalidate resource cache")
	}

	log.Info("Resource marked for maintenance")
	return nil
}

// CompleteMaintenance возвращает ресурс в available.
// Прежняя привязка к инциденту не восстанавливается.
func (s *resourceService) CompleteMaintenance(ctx context.Context, resourceID primitive.ObjectID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "CompleteMaintenance",
		"resource_id": resourceID.Hex(),
	})

	if err := s.repo.FinishMaintenance(ctx, resourceID, time.Now().UTC()); err != nil {
		log.WithError(err).Error("Failed to finish resource maintenance")
		return fmt.Errorf("service: could not complete resource maintenance: %w", err)
	}

	if err := s.repo.InvalidateResourceCache(ctx, resourceID); err != nil {
		log.WithError(err).Warn("Failed to invalidate resource cache")
	}

	log.Info("Resource maintenance completed")
	return nil
}

// validateNewResource проверяет обязательные поля при создании
func validateNewResource(resource *models.Resource) error {
	switch {
	case resource.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case resource.Type == "":
		return fmt.Errorf("%w: type is required", ErrValidation)
	case resource.Location.IsZero():
		return fmt.Errorf("%w: location is required", ErrValidation)
	case resource.Description == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case resource.CreatedBy == "":
		return fmt.Errorf("%w: created_by is required", ErrValidation)
	}
	return nil
}

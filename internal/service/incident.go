package service

import (
	"context"
	"fmt"
	"time"

	"github.com/disasterconnect/disaster_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IncidentFilter описывает критерии выборки инцидентов.
// Пустые поля означают "любое значение".
type IncidentFilter struct {
	Status   string
	Type     string
	Severity string
}

// UpdateIncidentInput - частичное обновление инцидента.
// nil-поля не трогаются, пустой input является наблюдаемым no-op.
type UpdateIncidentInput struct {
	Title       *string
	Type        *string
	Severity    *string
	Description *string
	Location    *models.Location
}

// IncidentRepository определяет контракт для работы с коллекцией инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	List(ctx context.Context, filter IncidentFilter) ([]*models.Incident, error)
	AddResource(ctx context.Context, incidentID, resourceID primitive.ObjectID) error
	RemoveResource(ctx context.Context, incidentID, resourceID primitive.ObjectID) error
	Close(ctx context.Context, id primitive.ObjectID, notes string, closedAt time.Time) error
	GetIncidentFromCache(ctx context.Context, id primitive.ObjectID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id primitive.ObjectID) error
}

// IncidentService определяет контракт бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id primitive.ObjectID) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id primitive.ObjectID, input UpdateIncidentInput) error
	ListIncidents(ctx context.Context, filter IncidentFilter) ([]*models.Incident, error)
	AssignResource(ctx context.Context, incidentID, resourceID primitive.ObjectID) error
	UnassignResource(ctx context.Context, incidentID, resourceID primitive.ObjectID) error
	CloseIncident(ctx context.Context, id primitive.ObjectID, resolutionNotes string) error
}

type incidentService struct {
	repo   IncidentRepository
	logger *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:   repo,
		logger: logger,
	}
}

// CreateIncident создает инцидент со статусом active и пустым набором ресурсов
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"title":   incident.Title,
	})
	log.Info("Attempting to create a new incident")

	if err := validateNewIncident(incident); err != nil {
		log.WithError(err).Warn("Incident validation failed")
		return err
	}

	now := time.Now().UTC()
	incident.Status = models.IncidentStatusActive
	incident.ResourcesAssigned = []primitive.ObjectID{}
	incident.CreatedAt = now
	incident.UpdatedAt = now
	incident.ClosedAt = nil

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID.Hex()).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID, сначала из кеша, затем из бд
func (s *incidentService) GetIncident(ctx context.Context, id primitive.ObjectID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id.Hex(),
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		// Проблема с кешем не должна ломать чтение, идем в бд
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	return incident, nil
}

// UpdateIncident сливает непустые поля input в существующую запись и обновляет updated_at
func (s *incidentService) UpdateIncident(ctx context.Context, id primitive.ObjectID, input UpdateIncidentInput) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id.Hex(),
	})
	log.Info("Attempting to update incident")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return fmt.Errorf("service: incident %s not found for update: %w", id.Hex(), err)
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Type != nil {
		existing.Type = *input.Type
	}
	if input.Severity != nil {
		existing.Severity = *input.Severity
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.Location != nil {
		existing.Location = *input.Location
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return fmt.Errorf("service: could not update incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident updated successfully")
	return nil
}

// ListIncidents возвращает инциденты по фильтру, новые первыми
func (s *incidentService) ListIncidents(ctx context.Context, filter IncidentFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"status":  filter.Status,
	})
	log.Debug("Listing incidents")

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// AssignResource добавляет идентификатор ресурса в resources_assigned.
// Повторное добавление уже закрепленного ресурса - идемпотентный no-op ($addToSet).
func (s *incidentService) AssignResource(ctx context.Context, incidentID, resourceID primitive.ObjectID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AssignResource",
		"incident_id": incidentID.Hex(),
		"resource_id": resourceID.Hex(),
	})

	if err := s.repo.AddResource(ctx, incidentID, resourceID); err != nil {
		log.WithError(err).Error("Failed to add resource to incident")
		return fmt.Errorf("service: could not assign resource to incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Resource added to incident")
	return nil
}

// UnassignResource убирает идентификатор ресурса из resources_assigned.
// Отсутствующий ресурс - идемпотентный no-op ($pull).
func (s *incidentService) UnassignResource(ctx context.Context, incidentID, resourceID primitive.ObjectID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UnassignResource",
		"incident_id": incidentID.Hex(),
		"resource_id": resourceID.Hex(),
	})

	if err := s.repo.RemoveResource(ctx, incidentID, resourceID); err != nil {
		log.WithError(err).Error("Failed to remove resource from incident")
		return fmt.Errorf("service: could not unassign resource from incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Resource removed from incident")
	return nil
}

// CloseIncident закрывает инцидент, проставляя closed_at и резолюцию.
// Закрытие уже закрытого инцидента отклоняется с ErrIncidentClosed.
func (s *incidentService) CloseIncident(ctx context.Context, id primitive.ObjectID, resolutionNotes string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "CloseIncident",
		"incident_id": id.Hex(),
	})
	log.Info("Attempting to close incident")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to close a non-existent incident")
		return fmt.Errorf("service: incident %s not found for close: %w", id.Hex(), err)
	}

	if existing.Status == models.IncidentStatusClosed {
		log.Warn("Attempted to close an already closed incident")
		return fmt.Errorf("service: incident %s: %w", id.Hex(), ErrIncidentClosed)
	}

	if err := s.repo.Close(ctx, id, resolutionNotes, time.Now().UTC()); err != nil {
		log.WithError(err).Error("Failed to close incident in repository")
		return fmt.Errorf("service: could not close incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident closed successfully")
	return nil
}

// validateNewIncident проверяет обязательные поля при создании
func validateNewIncident(incident *models.Incident) error {
	switch {
	case incident.Title == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case incident.Type == "":
		return fmt.Errorf("%w: type is required", ErrValidation)
	case incident.Severity == "":
		return fmt.Errorf("%w: severity is required", ErrValidation)
	case incident.Location.IsZero():
		return fmt.Errorf("%w: location is required", ErrValidation)
	case incident.Description == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case incident.CreatedBy == "":
		return fmt.Errorf("%w: created_by is required", ErrValidation)
	}
	return nil
}

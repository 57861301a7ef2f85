package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disasterconnect/disaster_coordination_system/internal/models"
	"github.com/disasterconnect/disaster_coordination_system/internal/webhook"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentService - единственный компонент, которому разрешено мутировать
// обе стороны связи инцидент<->ресурс. Поддерживает инвариант: ресурс числится
// в resources_assigned инцидента тогда и только тогда, когда его current_incident
// указывает на этот инцидент.
type AssignmentService interface {
	Assign(ctx context.Context, incidentID, resourceID primitive.ObjectID) error
	Release(ctx context.Context, resourceID primitive.ObjectID) error
	SendToMaintenance(ctx context.Context, resourceID primitive.ObjectID, status, notes string) error
	CompleteMaintenance(ctx context.Context, resourceID primitive.ObjectID) error
	CloseIncident(ctx context.Context, incidentID primitive.ObjectID, resolutionNotes string) error
}

type assignmentService struct {
	incidents IncidentService
	resources ResourceService
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
}

func NewAssignmentService(incidents IncidentService, resources ResourceService, publisher webhook.WebhookPublisher, logger *logrus.Logger) AssignmentService {
	return &assignmentService{
		incidents: incidents,
		resources: resources,
		publisher: publisher,
		logger:    logger,
	}
}

// Assign закрепляет свободный ресурс за активным инцидентом.
// Порядок: сначала сторона инцидента ($addToSet), затем сторона ресурса.
// Если второй шаг падает, первый откатывается компенсирующим $pull,
// чтобы не оставлять висячую ссылку.
func (s *assignmentService) Assign(ctx context.Context, incidentID, resourceID primitive.ObjectID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "Assign",
		"incident_id": incidentID.Hex(),
		"resource_id": resourceID.Hex(),
	})
	log.Info("Attempting to assign resource to incident")

	incident, err := s.incidents.GetIncident(ctx, incidentID)
	if err != nil {
		return err
	}
	if incident.Status == models.IncidentStatusClosed {
		log.Warn("Attempted to assign resource to a closed incident")
		return fmt.Errorf("assignment: incident %s: %w", incidentID.Hex(), ErrIncidentClosed)
	}

	resource, err := s.resources.GetResource(ctx, resourceID)
	if err != nil {
		return err
	}
	// Политика: повторное назначение уже занятого ресурса отклоняется,
	// а не молча перезаписывается
	if !resource.IsAvailable() {
		log.WithField("resource_status", resource.Status).Warn("Resource is not available for assignment")
		return fmt.Errorf("assignment: resource %s has status %q: %w", resourceID.Hex(), resource.Status, ErrResourceUnavailable)
	}

	if err := s.incidents.AssignResource(ctx, incidentID, resourceID); err != nil {
		return err
	}

	if err := s.resources.AssignToIncident(ctx, resourceID, incidentID); err != nil {
		// Компенсирующий откат стороны инцидента
		if rollbackErr := s.incidents.UnassignResource(ctx, incidentID, resourceID); rollbackErr != nil {
			log.WithError(rollbackErr).Error("Failed to roll back incident assignment, references are inconsistent")
		}
		return err
	}

	s.publish(ctx, log, webhook.EventResourceAssigned, incidentID, resourceID)
	log.Info("Resource assigned to incident")
	return nil
}

// Release освобождает ресурс и чистит обе стороны связи.
// Для незакрепленного ресурса - идемпотентный no-op.
func (s *assignmentService) Release(ctx context.Context, resourceID primitive.ObjectID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "Release",
		"resource_id": resourceID.Hex(),
	})

	resource, err := s.resources.GetResource(ctx, resourceID)
	if err != nil {
		return err
	}

	if resource.Status != models.ResourceStatusAssigned || resource.CurrentIncident == nil {
		log.Debug("Resource is not assigned, release is a no-op")
		return nil
	}

	incidentID := *resource.CurrentIncident

	if err := s.resources.ReleaseFromIncident(ctx, resourceID); err != nil {
		return err
	}

	// Снятие ссылки на стороне инцидента идемпотентно, но обязательно:
	// иначе resources_assigned остается со stale-ссылкой
	if err := s.incidents.UnassignResource(ctx, incidentID, resourceID); err != nil {
		log.WithError(err).Error("Resource released but incident still references it")
		return err
	}

	s.publish(ctx, log, webhook.EventResourceReleased, incidentID, resourceID)
	log.Info("Resource released")
	return nil
}

// SendToMaintenance переводит ресурс в обслуживание. Закрепленный ресурс
// сначала освобождается с обеих сторон, чтобы инцидент не хранил ссылку
// на ресурс в обслуживании.
func (s *assignmentService) SendToMaintenance(ctx context.Context, resourceID primitive.ObjectID, status, notes string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "SendToMaintenance",
		"resource_id": resourceID.Hex(),
	})
	log.Info("Attempting to send resource to maintenance")

	resource, err := s.resources.GetResource(ctx, resourceID)
	if err != nil {
		return err
	}

	if resource.Status == models.ResourceStatusAssigned {
		if err := s.Release(ctx, resourceID); err != nil {
			return err
		}
	}

	if err := s.resources.MarkMaintenance(ctx, resourceID, status, notes); err != nil {
		return err
	}

	log.Info("Resource sent to maintenance")
	return nil
}

// CompleteMaintenance возвращает ресурс из обслуживания в available.
// Прежнее назначение не восстанавливается.
func (s *assignmentService) CompleteMaintenance(ctx context.Context, resourceID primitive.ObjectID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "CompleteMaintenance",
		"resource_id": resourceID.Hex(),
	})

	resource, err := s.resources.GetResource(ctx, resourceID)
	if err != nil {
		return err
	}

	if resource.Status != models.ResourceStatusMaintenance {
		log.Debug("Resource is not under maintenance, nothing to complete")
		return nil
	}

	if err := s.resources.CompleteMaintenance(ctx, resourceID); err != nil {
		return err
	}

	log.Info("Resource maintenance completed")
	return nil
}

// CloseIncident закрывает инцидент, предварительно освобождая все
// закрепленные ресурсы (каскадная политика закрытия).
func (s *assignmentService) CloseIncident(ctx context.Context, incidentID primitive.ObjectID, resolutionNotes string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "CloseIncident",
		"incident_id": incidentID.Hex(),
	})
	log.Info("Attempting to close incident with cascade release")

	incident, err := s.incidents.GetIncident(ctx, incidentID)
	if err != nil {
		return err
	}
	if incident.Status == models.IncidentStatusClosed {
		log.Warn("Attempted to close an already closed incident")
		return fmt.Errorf("assignment: incident %s: %w", incidentID.Hex(), ErrIncidentClosed)
	}

	for _, resourceID := range incident.ResourcesAssigned {
		if err := s.Release(ctx, resourceID); err != nil {
			// Ресурс мог быть удален после закрепления: чистим висячую
			// ссылку и продолжаем, закрытие не должно блокироваться
			if errors.Is(err, ErrNotFound) {
				log.WithField("resource_id", resourceID.Hex()).Warn("Assigned resource no longer exists, removing stale reference")
				if unErr := s.incidents.UnassignResource(ctx, incidentID, resourceID); unErr != nil {
					log.WithError(unErr).WithField("resource_id", resourceID.Hex()).Error("Failed to remove stale resource reference during incident close")
					return unErr
				}
				continue
			}
			log.WithError(err).WithField("resource_id", resourceID.Hex()).Error("Failed to release resource during incident close")
			return err
		}
	}

	if err := s.incidents.CloseIncident(ctx, incidentID, resolutionNotes); err != nil {
		return err
	}

	s.publish(ctx, log, webhook.EventIncidentClosed, incidentID, primitive.NilObjectID)
	log.Info("Incident closed")
	return nil
}

// publish отправляет событие вебхука; сбой публикации логируется, но не
// ломает уже выполненный переход состояния
func (s *assignmentService) publish(ctx context.Context, log *logrus.Entry, eventType string, incidentID, resourceID primitive.ObjectID) {
	event := webhook.WebhookEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		IncidentID: incidentID.Hex(),
		Timestamp:  time.Now().UTC(),
	}
	if resourceID != primitive.NilObjectID {
		event.ResourceID = resourceID.Hex()
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}
}

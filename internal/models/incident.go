package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Статусы инцидента. Переход только active -> closed, обратного нет.
const (
	IncidentStatusActive = "active"
	IncidentStatusClosed = "closed"
)

// Типы инцидента
const (
	IncidentTypeNaturalDisaster       = "natural-disaster"
	IncidentTypeIndustrialAccident    = "industrial-accident"
	IncidentTypeMedicalEmergency      = "medical-emergency"
	IncidentTypeInfrastructureFailure = "infrastructure-failure"
	IncidentTypeSecurityIncident      = "security-incident"
	IncidentTypeOther                 = "other"
)

// Уровни серьезности инцидента
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Incident представляет зарегистрированное происшествие.
// ResourcesAssigned хранит только идентификаторы ресурсов (слабые ссылки),
// обратная ссылка живет в Resource.CurrentIncident.
type Incident struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title             string               `bson:"title" json:"title"`
	Type              string               `bson:"type" json:"type"`
	Severity          string               `bson:"severity" json:"severity"`
	Status            string               `bson:"status" json:"status"`
	Location          Location             `bson:"location" json:"location"`
	Description       string               `bson:"description" json:"description"`
	ResourcesAssigned []primitive.ObjectID `bson:"resources_assigned" json:"resources_assigned"`
	ResolutionNotes   string               `bson:"resolution_notes,omitempty" json:"resolution_notes,omitempty"`
	CreatedBy         string               `bson:"created_by" json:"created_by"`
	CreatedAt         time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time            `bson:"updated_at" json:"updated_at"`
	ClosedAt          *time.Time           `bson:"closed_at,omitempty" json:"closed_at,omitempty"`
}

// HasResource проверяет, закреплен ли ресурс за инцидентом
func (i *Incident) HasResource(resourceID primitive.ObjectID) bool {
	for _, id := range i.ResourcesAssigned {
		if id == resourceID {
			return true
		}
	}
	return false
}

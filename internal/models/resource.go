package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Статусы ресурса
const (
	ResourceStatusAvailable   = "available"
	ResourceStatusAssigned    = "assigned"
	ResourceStatusMaintenance = "maintenance"
)

// Типы ресурса
const (
	ResourceTypeTransportation = "transportation"
	ResourceTypeMedical        = "medical"
	ResourceTypeShelter        = "shelter"
	ResourceTypeSupply         = "supply"
	ResourceTypePersonnel      = "personnel"
	ResourceTypeEquipment      = "equipment"
	ResourceTypeOther          = "other"
)

// Статусы обслуживания ресурса
const (
	MaintenanceOperational = "operational"
	MaintenanceUnderRepair = "under-maintenance"
)

// Resource представляет развертываемый актив (транспорт, бригада, запасы).
// Инварианты: CurrentIncident != nil тогда и только тогда, когда Status == assigned;
// Status == maintenance влечет CurrentIncident == nil.
type Resource struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name              string              `bson:"name" json:"name"`
	Type              string              `bson:"type" json:"type"`
	Status            string              `bson:"status" json:"status"`
	Capacity          int                 `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Location          Location            `bson:"location" json:"location"`
	Description       string              `bson:"description" json:"description"`
	ContactInfo       string              `bson:"contact_info,omitempty" json:"contact_info,omitempty"`
	CurrentIncident   *primitive.ObjectID `bson:"current_incident" json:"current_incident,omitempty"`
	MaintenanceStatus string              `bson:"maintenance_status" json:"maintenance_status"`
	MaintenanceNotes  string              `bson:"maintenance_notes,omitempty" json:"maintenance_notes,omitempty"`
	MaintenanceStart  *time.Time          `bson:"maintenance_start,omitempty" json:"maintenance_start,omitempty"`
	MaintenanceEnd    *time.Time          `bson:"maintenance_end,omitempty" json:"maintenance_end,omitempty"`
	CreatedBy         string              `bson:"created_by" json:"created_by"`
	CreatedAt         time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time           `bson:"updated_at" json:"updated_at"`
}

// IsAvailable сообщает, можно ли закрепить ресурс за инцидентом
func (r *Resource) IsAvailable() bool {
	return r.Status == ResourceStatusAvailable && r.MaintenanceStatus == MaintenanceOperational
}

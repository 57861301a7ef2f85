package v1

import "time"

// LocationDTO - геоточка в запросах и ответах API
// @Description Геоточка с координатами и необязательным описанием района
type LocationDTO struct {
	// required здесь не используется: 0 — допустимая координата (экватор, нулевой меридиан)
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Area      string  `json:"area,omitempty"`
}

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
}

// LoginRequest DTO для входа пользователя
// @Description DTO для входа пользователя
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse DTO с публичными данными пользователя
// @Description DTO с публичными данными пользователя
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// AuthResponse DTO для ответа на успешный вход
// @Description DTO для ответа на успешный вход
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Title       string      `json:"title" validate:"required,min=2,max=255"`
	Type        string      `json:"type" validate:"required,oneof=natural-disaster industrial-accident medical-emergency infrastructure-failure security-incident other"`
	Severity    string      `json:"severity" validate:"required,oneof=low medium high critical"`
	Location    LocationDTO `json:"location" validate:"required"`
	Description string      `json:"description" validate:"required"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента
// @Description DTO для частичного обновления инцидента, nil-поля не меняются
type UpdateIncidentRequest struct {
	Title       *string      `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Type        *string      `json:"type,omitempty" validate:"omitempty,oneof=natural-disaster industrial-accident medical-emergency infrastructure-failure security-incident other"`
	Severity    *string      `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Description *string      `json:"description,omitempty"`
	Location    *LocationDTO `json:"location,omitempty"`
}

// CloseIncidentRequest DTO для закрытия инцидента
// @Description DTO для закрытия инцидента
type CloseIncidentRequest struct {
	ResolutionNotes string `json:"resolution_notes" validate:"required"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Type              string      `json:"type"`
	Severity          string      `json:"severity"`
	Status            string      `json:"status"`
	Location          LocationDTO `json:"location"`
	Description       string      `json:"description"`
	ResourcesAssigned []string    `json:"resources_assigned"`
	ResolutionNotes   string      `json:"resolution_notes,omitempty"`
	CreatedBy         string      `json:"created_by"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	ClosedAt          *time.Time  `json:"closed_at,omitempty"`
}

// CreateResourceRequest DTO для регистрации ресурса
// @Description DTO для регистрации ресурса
type CreateResourceRequest struct {
	Name        string      `json:"name" validate:"required,min=2,max=255"`
	Type        string      `json:"type" validate:"required,oneof=transportation medical shelter supply personnel equipment other"`
	Capacity    int         `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Location    LocationDTO `json:"location" validate:"required"`
	Description string      `json:"description" validate:"required"`
	ContactInfo string      `json:"contact_info,omitempty"`
}

// UpdateResourceRequest DTO для частичного обновления ресурса
// @Description DTO для частичного обновления ресурса, nil-поля не меняются
type UpdateResourceRequest struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Type        *string      `json:"type,omitempty" validate:"omitempty,oneof=transportation medical shelter supply personnel equipment other"`
	Capacity    *int         `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Description *string      `json:"description,omitempty"`
	ContactInfo *string      `json:"contact_info,omitempty"`
	Location    *LocationDTO `json:"location,omitempty"`
}

// MaintenanceRequest DTO для перевода ресурса в обслуживание
// @Description DTO для перевода ресурса в обслуживание
type MaintenanceRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=operational under-maintenance"`
	Notes  string `json:"notes,omitempty"`
}

// ResourceResponse DTO для ответа с информацией о ресурсе
// @Description DTO для ответа с информацией о ресурсе
type ResourceResponse struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Type              string      `json:"type"`
	Status            string      `json:"status"`
	Capacity          int         `json:"capacity,omitempty"`
	Location          LocationDTO `json:"location"`
	Description       string      `json:"description"`
	ContactInfo       string      `json:"contact_info,omitempty"`
	CurrentIncident   string      `json:"current_incident,omitempty"`
	MaintenanceStatus string      `json:"maintenance_status"`
	MaintenanceNotes  string      `json:"maintenance_notes,omitempty"`
	MaintenanceStart  *time.Time  `json:"maintenance_start,omitempty"`
	MaintenanceEnd    *time.Time  `json:"maintenance_end,omitempty"`
	CreatedBy         string      `json:"created_by"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

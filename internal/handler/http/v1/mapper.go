package v1

import (
	"github.com/disasterconnect/disaster_coordination_system/internal/models"
	"github.com/disasterconnect/disaster_coordination_system/internal/service"
)

// CreateRequestToIncidentModel преобразует DTO создания в доменную модель.
// created_by берется из JWT, а не из тела запроса.
func CreateRequestToIncidentModel(dto CreateIncidentRequest, createdBy string) *models.Incident {
	return &models.Incident{
		Title:       dto.Title,
		Type:        dto.Type,
		Severity:    dto.Severity,
		Location:    models.NewLocation(dto.Location.Latitude, dto.Location.Longitude, dto.Location.Area),
		Description: dto.Description,
		CreatedBy:   createdBy,
	}
}

// CreateRequestToResourceModel преобразует DTO регистрации ресурса в доменную модель
func CreateRequestToResourceModel(dto CreateResourceRequest, createdBy string) *models.Resource {
	return &models.Resource{
		Name:        dto.Name,
		Type:        dto.Type,
		Capacity:    dto.Capacity,
		Location:    models.NewLocation(dto.Location.Latitude, dto.Location.Longitude, dto.Location.Area),
		Description: dto.Description,
		ContactInfo: dto.ContactInfo,
		CreatedBy:   createdBy,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	assigned := make([]string, len(model.ResourcesAssigned))
	for i, id := range model.ResourcesAssigned {
		assigned[i] = id.Hex()
	}

	return &IncidentResponse{
		ID:       model.ID.Hex(),
		Title:    model.Title,
		Type:     model.Type,
		Severity: model.Severity,
		Status:   model.Status,
		Location: LocationDTO{
			Latitude:  model.Location.Lat,
			Longitude: model.Location.Lng,
			Area:      model.Location.Area,
		},
		Description:       model.Description,
		ResourcesAssigned: assigned,
		ResolutionNotes:   model.ResolutionNotes,
		CreatedBy:         model.CreatedBy,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
		ClosedAt:          model.ClosedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToResourceResponse преобразует доменную модель в DTO для ответа
func ModelToResourceResponse(model *models.Resource) *ResourceResponse {
	resp := &ResourceResponse{
		ID:       model.ID.Hex(),
		Name:     model.Name,
		Type:     model.Type,
		Status:   model.Status,
		Capacity: model.Capacity,
		Location: LocationDTO{
			Latitude:  model.Location.Lat,
			Longitude: model.Location.Lng,
			Area:      model.Location.Area,
		},
		Description:       model.Description,
		ContactInfo:       model.ContactInfo,
		MaintenanceStatus: model.MaintenanceStatus,
		MaintenanceNotes:  model.MaintenanceNotes,
		MaintenanceStart:  model.MaintenanceStart,
		MaintenanceEnd:    model.MaintenanceEnd,
		CreatedBy:         model.CreatedBy,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
	if model.CurrentIncident != nil {
		resp.CurrentIncident = model.CurrentIncident.Hex()
	}
	return resp
}

// ModelsToResourceResponses преобразует слайс моделей в слайс DTO
func ModelsToResourceResponses(resources []*models.Resource) []*ResourceResponse {
	responses := make([]*ResourceResponse, len(resources))
	for i, model := range resources {
		responses[i] = ModelToResourceResponse(model)
	}
	return responses
}

// ModelToUserResponse преобразует пользователя в публичный DTO
func ModelToUserResponse(model *models.User) UserResponse {
	return UserResponse{
		ID:        model.ID.Hex(),
		Username:  model.Username,
		Email:     model.Email,
		Role:      model.Role,
		LastLogin: model.LastLogin,
	}
}

// UpdateRequestToIncidentInput преобразует DTO обновления в сервисный input
func UpdateRequestToIncidentInput(dto UpdateIncidentRequest) service.UpdateIncidentInput {
	input := service.UpdateIncidentInput{
		Title:       dto.Title,
		Type:        dto.Type,
		Severity:    dto.Severity,
		Description: dto.Description,
	}
	if dto.Location != nil {
		loc := models.NewLocation(dto.Location.Latitude, dto.Location.Longitude, dto.Location.Area)
		input.Location = &loc
	}
	return input
}

// UpdateRequestToResourceInput преобразует DTO обновления в сервисный input
func UpdateRequestToResourceInput(dto UpdateResourceRequest) service.UpdateResourceInput {
	input := service.UpdateResourceInput{
		Name:        dto.Name,
		Type:        dto.Type,
		Capacity:    dto.Capacity,
		Description: dto.Description,
		ContactInfo: dto.ContactInfo,
	}
	if dto.Location != nil {
		loc := models.NewLocation(dto.Location.Latitude, dto.Location.Longitude, dto.Location.Area)
		input.Location = &loc
	}
	return input
}

package v1

import (
	"net/http"

	"github.com/disasterconnect/disaster_coordination_system/internal/service"
	"github.com/gin-gonic/gin"
)

// @Summary Create a new incident
// @Description Report a new incident. Requires JWT; created_by is taken from the token.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := CreateRequestToIncidentModel(input, c.GetString("username"))
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get incidents filtered by status/type/severity, newest first. Requires JWT.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(active, closed)
// @Param type query string false "Filter by incident type"
// @Param severity query string false "Filter by severity"
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	filter := service.IncidentFilter{
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Severity: c.Query("severity"),
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires JWT.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	log := h.logger.WithField("method", "getIncident").WithField("id", c.Param("id"))

	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update an existing incident
// @Description Merge the supplied fields into an incident. Empty body is a no-op. Requires JWT.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	log := h.logger.WithField("method", "updateIncident").WithField("id", c.Param("id"))

	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	var input UpdateIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.incidentService.UpdateIncident(c.Request.Context(), id, UpdateRequestToIncidentInput(input)); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Close an incident
// @Description Close an incident with resolution notes. Assigned resources are released first. Requires JWT.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param resolution body CloseIncidentRequest true "Resolution notes"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident already closed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/close [post]
func (h *Handler) closeIncident(c *gin.Context) {
	log := h.logger.WithField("method", "closeIncident").WithField("id", c.Param("id"))

	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	var input CloseIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Закрытие идет через workflow: сначала освобождаются все ресурсы
	if err := h.assignmentService.CloseIncident(c.Request.Context(), id, input.ResolutionNotes); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Assign a resource to an incident
// @Description Assign an available resource to an active incident. Requires JWT.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param resourceId path string true "Resource ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid identifier"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident or resource not found"
// @Failure 409 {object} map[string]string "Incident closed or resource unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/resources/{resourceId} [post]
func (h *Handler) assignResource(c *gin.Context) {
	log := h.logger.WithField("method", "assignResource").
		WithField("incident_id", c.Param("id")).
		WithField("resource_id", c.Param("resourceId"))

	incidentID, err := parseObjectID(c.Param("id"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	resourceID, err := parseObjectID(c.Param("resourceId"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	if err := h.assignmentService.Assign(c.Request.Context(), incidentID, resourceID); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Unassign a resource from an incident
// @Description Release a resource and remove it from the incident's assignment set. Requires JWT.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param resourceId path string true "Resource ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid identifier"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/resources/{resourceId} [delete]
func (h *Handler) unassignResource(c *gin.Context) {
	log := h.logger.WithField("method", "unassignResource").
		WithField("incident_id", c.Param("id")).
		WithField("resource_id", c.Param("resourceId"))

	if _, err := parseObjectID(c.Param("id")); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	resourceID, err := parseObjectID(c.Param("resourceId"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	if err := h.assignmentService.Release(c.Request.Context(), resourceID); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

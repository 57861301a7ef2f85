package v1

import (
	"net/http"

	"github.com/disasterconnect/disaster_coordination_system/internal/service"
	"github.com/gin-gonic/gin"
)

// @Summary Register a new resource
// @Description Register a deployable resource. Requires JWT; created_by is taken from the token.
// @Tags Resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource body CreateResourceRequest true "Resource creation request"
// @Success 201 {object} ResourceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources [post]
func (h *Handler) createResource(c *gin.Context) {
	var input CreateResourceRequest
	log := h.logger.WithField("method", "createResource")

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

	model := CreateRequestToResourceModel(input, c.GetString("username"))
	if err := h.resourceService.CreateResource(c.Request.Context(), model); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToResourceResponse(model))
}

// @Summary Get a list of resources
// @Description Get resources filtered by status/type/maintenance status. Requires JWT.
// @Tags Resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(available, assigned, maintenance)
// @Param type query string false "Filter by resource type"
// @Param maintenance_status query string false "Filter by maintenance status" Enums(operational, under-maintenance)
// @Success 200 {array} ResourceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources [get]
func (h *Handler) listResources(c *gin.Context) {
	log := h.logger.WithField("method", "listResources")

	filter := service.ResourceFilter{
		Status:            c.Query("status"),
		Type:              c.Query("type"),
		MaintenanceStatus: c.Query("maintenance_status"),
	}

	resources, err := h.resourceService.ListResources(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToResourceResponses(resources))
}

// @Summary Get resource by ID
// @Description Get a single resource by its ID. Requires JWT.
// @Tags Resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} ResourceResponse
// @Failure 400 {object} map[string]string "Invalid resource ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{id} [get]
func (h *Handler) getResource(c *gin.Context) {
	log := h.logger.WithField("method", "getResource").WithField("id", c.Param("id"))

	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	resource, err := h.resourceService.GetResource(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToResourceResponse(resource))
}

// @Summary Update an existing resource
// @Description Merge the supplied fields into a resource. Requires JWT.
// @Tags Resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param resource body UpdateResourceRequest true "Resource update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid resource ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{id} [put]
func (h *Handler) updateResource(c *gin.Context) {
	log := h.logger.WithField("method", "updateResource").WithField("id", c.Param("id"))

	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	var input UpdateResourceRequest
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

	if err := h.resourceService.UpdateResource(c.Request.Context(), id, UpdateRequestToResourceInput(input)); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete a resource
// @Description Delete a resource record. Explicit user action; references on the incident side are not cleaned up. Requires JWT.
// @Tags Resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid resource ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{id} [delete]
func (h *Handler) deleteResource(c *gin.Context) {
	log := h.logger.WithField("method", "deleteResource").WithField("id", c.Param("id"))

	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	if err := h.resourceService.DeleteResource(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Release a resource
// @Description Release a resource from its current incident, cleaning both sides of the link. No-op for unassigned resources. Requires JWT.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid resource ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{id}/release [post]
func (h *Handler) releaseResource(c *gin.Context) {
	log := h.logger.WithField("method", "releaseResource").WithField("id", c.Param("id"))

	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	if err := h.assignmentService.Release(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Send a resource to maintenance
// @Description Put a resource under maintenance. An assigned resource is released first. Requires JWT.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param maintenance body MaintenanceRequest true "Maintenance request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid resource ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{id}/maintenance [post]
func (h *Handler) markMaintenance(c *gin.Context) {
	log := h.logger.WithField("method", "markMaintenance").WithField("id", c.Param("id"))

	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	var input MaintenanceRequest
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

	if err := h.assignmentService.SendToMaintenance(c.Request.Context(), id, input.Status, input.Notes); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Complete resource maintenance
// @Description Return a resource from maintenance to the available pool. Requires JWT.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid resource ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{id}/maintenance/complete [post]
func (h *Handler) completeMaintenance(c *gin.Context) {
	log := h.logger.WithField("method", "completeMaintenance").WithField("id", c.Param("id"))

	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	if err := h.assignmentService.CompleteMaintenance(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

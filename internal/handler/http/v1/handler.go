package v1

import (
	"errors"
	"net/http"

	"github.com/disasterconnect/disaster_coordination_system/internal/config"
	"github.com/disasterconnect/disaster_coordination_system/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	incidentService   service.IncidentService
	resourceService   service.ResourceService
	assignmentService service.AssignmentService
	authService       service.AuthService
	reportService     service.ReportService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	resourceService service.ResourceService,
	assignmentService service.AssignmentService,
	authService service.AuthService,
	reportService service.ReportService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:   incidentService,
		resourceService:   resourceService,
		assignmentService: assignmentService,
		authService:       authService,
		reportService:     reportService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// parseObjectID проверяет формат идентификатора (24 hex-символа) до обращения к хранилищу
func parseObjectID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, service.ErrInvalidID
	}
	return id, nil
}

// respondServiceError сопоставляет сентинельные ошибки сервисного слоя с HTTP-статусами.
// StoreUnavailable отдается отдельным статусом, чтобы клиент мог предложить повтор.
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
	case errors.Is(err, service.ErrValidation):
		log.WithError(err).Warn("Validation failed in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, service.ErrIncidentClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "incident already closed"})
	case errors.Is(err, service.ErrResourceUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "resource is not available for assignment"})
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
	case errors.Is(err, service.ErrStoreUnavailable):
		log.WithError(err).Error("Record store unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "record store unavailable, try again"})
	default:
		log.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Register a new user
// @Description Register a new operator account.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Username already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

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

	user, err := h.authService.Register(c.Request.Context(), input.Username, input.Password, input.Email)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Log in
// @Description Exchange username/password for a JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

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

	token, user, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  ModelToUserResponse(user),
	})
}

// @Summary Get dashboard summary
// @Description Get incident and resource counters for the dashboard and report generator. Requires JWT.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/summary [get]
func (h *Handler) getDashboardSummary(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboardSummary")

	summary, err := h.reportService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

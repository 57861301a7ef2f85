package service

import (
	"context"
	"fmt"
	"time"

	"github.com/disasterconnect/disaster_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ReportRepository определяет контракт агрегирующих запросов для отчетов
type ReportRepository interface {
	CountIncidentsByField(ctx context.Context, field string) (map[string]int64, error)
	CountResourcesByField(ctx context.Context, field string) (map[string]int64, error)
	GetSummaryFromCache(ctx context.Context) (*models.DashboardSummary, error)
	SetSummaryCache(ctx context.Context, summary *models.DashboardSummary) error
}

// ReportService отдает сводку для дашборда и внешнего генератора отчетов.
// Чисто читающий потребитель, ничего не мутирует.
type ReportService interface {
	GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
}

type reportService struct {
	repo   ReportRepository
	logger *logrus.Logger
}

func NewReportService(repo ReportRepository, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

// GetDashboardSummary собирает счетчики по статусам/типам/серьезности.
// Сводка кешируется в Redis, так как дашборд перечитывает ее при каждом обновлении.
func (s *reportService) GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "GetDashboardSummary",
	})

	cached, err := s.repo.GetSummaryFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read summary from cache")
	}
	if cached != nil {
		log.Debug("Dashboard summary served from cache")
		return cached, nil
	}

	summary := &models.DashboardSummary{
		GeneratedAt: time.Now().UTC(),
	}

	if summary.IncidentsByStatus, err = s.repo.CountIncidentsByField(ctx, "status"); err != nil {
		log.WithError(err).Error("Failed to count incidents by status")
		return nil, fmt.Errorf("service: could not build summary: %w", err)
	}
	if summary.IncidentsBySeverity, err = s.repo.CountIncidentsByField(ctx, "severity"); err != nil {
		log.WithError(err).Error("Failed to count incidents by severity")
		return nil, fmt.Errorf("service: could not build summary: %w", err)
	}
	if summary.IncidentsByType, err = s.repo.CountIncidentsByField(ctx, "type"); err != nil {
		log.WithError(err).Error("Failed to count incidents by type")
		return nil, fmt.Errorf("service: could not build summary: %w", err)
	}
	if summary.ResourcesByStatus, err = s.repo.CountResourcesByField(ctx, "status"); err != nil {
		log.WithError(err).Error("Failed to count resources by status")
		return nil, fmt.Errorf("service: could not build summary: %w", err)
	}
	if summary.ResourcesByType, err = s.repo.CountResourcesByField(ctx, "type"); err != nil {
		log.WithError(err).Error("Failed to count resources by type")
		return nil, fmt.Errorf("service: could not build summary: %w", err)
	}

	summary.ActiveIncidents = summary.IncidentsByStatus[models.IncidentStatusActive]
	summary.AvailableResources = summary.ResourcesByStatus[models.ResourceStatusAvailable]

	if err := s.repo.SetSummaryCache(ctx, summary); err != nil {
		log.WithError(err).Warn("Failed to cache dashboard summary")
	}

	log.Debug("Dashboard summary built")
	return summary, nil
}

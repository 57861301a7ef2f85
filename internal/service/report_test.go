package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/disasterconnect/disaster_coordination_system/internal/models"
	"github.com/disasterconnect/disaster_coordination_system/internal/service"
	"github.com/disasterconnect/disaster_coordination_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestReportService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestReportService(t *testing.T) (service.ReportService, *mocks.MockReportRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := service.NewReportService(repoMock, logger)
	return svc, repoMock
}

func TestGetDashboardSummary_FromCache(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestReportService(t)
	ctx := context.Background()
	expected := &models.DashboardSummary{
		ActiveIncidents: 3,
		GeneratedAt:     time.Now().UTC(),
	}

	// Ожидания
	repoMock.EXPECT().GetSummaryFromCache(ctx).Return(expected, nil).Times(1)

	// Действие
	summary, err := svc.GetDashboardSummary(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, summary)
}

func TestGetDashboardSummary_BuildsCounters(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestReportService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetSummaryFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().CountIncidentsByField(ctx, "status").
		Return(map[string]int64{models.IncidentStatusActive: 2, models.IncidentStatusClosed: 5}, nil).Times(1)
	repoMock.EXPECT().CountIncidentsByField(ctx, "severity").
		Return(map[string]int64{models.SeverityHigh: 1, models.SeverityLow: 6}, nil).Times(1)
	repoMock.EXPECT().CountIncidentsByField(ctx, "type").
		Return(map[string]int64{models.IncidentTypeNaturalDisaster: 7}, nil).Times(1)
	repoMock.EXPECT().CountResourcesByField(ctx, "status").
		Return(map[string]int64{models.ResourceStatusAvailable: 4, models.ResourceStatusAssigned: 2}, nil).Times(1)
	repoMock.EXPECT().CountResourcesByField(ctx, "type").
		Return(map[string]int64{models.ResourceTypeMedical: 6}, nil).Times(1)
	repoMock.EXPECT().SetSummaryCache(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	summary, err := svc.GetDashboardSummary(ctx)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, summary)
	// Производные счетчики берутся из карт по статусу
	assert.Equal(t, int64(2), summary.ActiveIncidents)
	assert.Equal(t, int64(4), summary.AvailableResources)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestGetDashboardSummary_RepositoryError(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestReportService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetSummaryFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().CountIncidentsByField(ctx, "status").
		Return(nil, fmt.Errorf("%w: aggregation failed", service.ErrStoreUnavailable)).Times(1)

	// Действие
	summary, err := svc.GetDashboardSummary(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, service.ErrStoreUnavailable)
}

package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/disasterconnect/disaster_coordination_system/internal/models"
	"github.com/disasterconnect/disaster_coordination_system/internal/service"
	"github.com/disasterconnect/disaster_coordination_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (service.IncidentService, *mocks.MockIncidentRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewIncidentService(repoMock, logger)
	return svc, repoMock
}

// validIncident возвращает инцидент, проходящий валидацию создания
func validIncident() *models.Incident {
	return &models.Incident{
		Title:       "Наводнение в южном районе",
		Type:        models.IncidentTypeNaturalDisaster,
		Severity:    models.SeverityHigh,
		Location:    models.NewLocation(55.75, 37.61, "Южный район"),
		Description: "Подтоплены жилые кварталы, требуется эвакуация",
		CreatedBy:   "dispatcher-1",
	}
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := validIncident()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		// Симулируем, что БД присвоила ID
		DoAndReturn(func(ctx context.Context, inc *models.Incident) error {
			inc.ID = primitive.NewObjectID()
			return nil
		}).Times(1)

	// Действие
	err := svc.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusActive, incident.Status)
	assert.NotNil(t, incident.ResourcesAssigned)
	assert.Empty(t, incident.ResourcesAssigned)
	assert.Nil(t, incident.ClosedAt)
	assert.False(t, incident.CreatedAt.IsZero())
	assert.Equal(t, incident.CreatedAt, incident.UpdatedAt)
	assert.NotEqual(t, primitive.NilObjectID, incident.ID)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	// Подготовка
	svc, _ := newTestIncidentService(t)
	ctx := context.Background()
	incident := validIncident()
	incident.Title = ""

	// Действие
	// Репозиторий не должен вызываться, ожиданий нет
	err := svc.CreateIncident(ctx, incident)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.ErrorContains(t, err, "title is required")
}

func TestCreateIncident_MissingLocation(t *testing.T) {
	// Подготовка
	svc, _ := newTestIncidentService(t)
	ctx := context.Background()
	incident := validIncident()
	incident.Location = models.Location{}

	// Действие
	err := svc.CreateIncident(ctx, incident)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.ErrorContains(t, err, "location is required")
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	expectedIncident := &models.Incident{
		ID:    incidentID,
		Title: "Тестовый инцидент из кеша",
	}

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	expectedIncident := &models.Incident{
		ID:    incidentID,
		Title: "Тестовый инцидент из БД",
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetIncidentCache(ctx, expectedIncident).
		Return(nil).
		Times(1)

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	// 2. Промах в БД
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, service.ErrNotFound).
		Times(1)

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetIncident_CacheFailureFallsThroughToDB(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	expectedIncident := &models.Incident{ID: incidentID}

	// Ожидания
	// Ошибка кеша не должна ломать чтение
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, fmt.Errorf("redis: connection refused")).
		Times(1)

	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	repoMock.EXPECT().
		SetIncidentCache(ctx, expectedIncident).
		Return(nil).
		Times(1)

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestUpdateIncident_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	existingIncident := validIncident()
	existingIncident.ID = incidentID

	newTitle := "Обновленный заголовок"
	newSeverity := models.SeverityCritical
	input := service.UpdateIncidentInput{
		Title:    &newTitle,
		Severity: &newSeverity,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existingIncident, nil).Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		// Проверяем слияние: заданные поля перезаписаны, остальные не тронуты
		Do(func(ctx context.Context, inc *models.Incident) {
			assert.Equal(t, newTitle, inc.Title)
			assert.Equal(t, newSeverity, inc.Severity)
			assert.Equal(t, models.IncidentTypeNaturalDisaster, inc.Type)
		}).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := svc.UpdateIncident(ctx, incidentID, input)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateIncident_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(nil, service.ErrNotFound).Times(1)

	// Действие
	err := svc.UpdateIncident(ctx, incidentID, service.UpdateIncidentInput{})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.ErrorContains(t, err, "not found for update")
}

func TestListIncidents_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	filter := service.IncidentFilter{Status: models.IncidentStatusActive}
	expectedIncidents := []*models.Incident{
		{ID: primitive.NewObjectID(), Title: "Инцидент 1"},
		{ID: primitive.NewObjectID(), Title: "Инцидент 2"},
	}

	// Ожидания
	repoMock.EXPECT().List(ctx, filter).Return(expectedIncidents, nil).Times(1)

	// Действие
	incidents, err := svc.ListIncidents(ctx, filter)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncidents, incidents)
}

func TestCloseIncident_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	existingIncident := validIncident()
	existingIncident.ID = incidentID
	existingIncident.Status = models.IncidentStatusActive
	notes := "Эвакуация завершена, угроза снята"

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existingIncident, nil).Times(1)
	repoMock.EXPECT().Close(ctx, incidentID, notes, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := svc.CloseIncident(ctx, incidentID, notes)

	// Проверки
	require.NoError(t, err)
}

func TestIncidentService_CloseIncident_AlreadyClosed(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	existingIncident := validIncident()
	existingIncident.ID = incidentID
	existingIncident.Status = models.IncidentStatusClosed

	// Ожидания
	// Close не должен вызываться для уже закрытого инцидента
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existingIncident, nil).Times(1)

	// Действие
	err := svc.CloseIncident(ctx, incidentID, "повторное закрытие")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrIncidentClosed)
}

func TestAssignResource_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	// Ожидания
	repoMock.EXPECT().AddResource(ctx, incidentID, resourceID).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := svc.AssignResource(ctx, incidentID, resourceID)

	// Проверки
	require.NoError(t, err)
}

func TestUnassignResource_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	// Ожидания
	repoMock.EXPECT().RemoveResource(ctx, incidentID, resourceID).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := svc.UnassignResource(ctx, incidentID, resourceID)

	// Проверки
	require.NoError(t, err)
}

package service_test

import (
	"bytes"
	"context"
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

// newTestResourceService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestResourceService(t *testing.T) (service.ResourceService, *mocks.MockResourceRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockResourceRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := service.NewResourceService(repoMock, logger)
	return svc, repoMock
}

// validResource возвращает ресурс, проходящий валидацию создания
func validResource() *models.Resource {
	return &models.Resource{
		Name:        "Пожарный расчет N3",
		Type:        models.ResourceTypePersonnel,
		Capacity:    6,
		Location:    models.NewLocation(55.70, 37.50, "Депо N3"),
		Description: "Расчет с автоцистерной",
		ContactInfo: "+7 900 000-00-03",
		CreatedBy:   "dispatcher-1",
	}
}

func TestCreateResource_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestResourceService(t)
	ctx := context.Background()
	resource := validResource()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, r *models.Resource) error {
			r.ID = primitive.NewObjectID()
			return nil
		}).Times(1)

	// Действие
	err := svc.CreateResource(ctx, resource)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.ResourceStatusAvailable, resource.Status)
	assert.Equal(t, models.MaintenanceOperational, resource.MaintenanceStatus)
	assert.Nil(t, resource.CurrentIncident)
	assert.True(t, resource.IsAvailable())
}

func TestCreateResource_ValidationError(t *testing.T) {
	// Подготовка
	svc, _ := newTestResourceService(t)
	ctx := context.Background()
	resource := validResource()
	resource.Name = ""

	// Действие
	err := svc.CreateResource(ctx, resource)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.ErrorContains(t, err, "name is required")
}

func TestGetResource_Success_FromCache(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestResourceService(t)
	ctx := context.Background()
	resourceID := primitive.NewObjectID()
	expectedResource := &models.Resource{ID: resourceID, Name: "Из кеша"}

	// Ожидания
	repoMock.EXPECT().
		GetResourceFromCache(ctx, resourceID).
		Return(expectedResource, nil).
		Times(1)

	// Действие
	resource, err := svc.GetResource(ctx, resourceID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedResource, resource)
}

func TestGetResource_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestResourceService(t)
	ctx := context.Background()
	resourceID := primitive.NewObjectID()

	// Ожидания
	repoMock.EXPECT().GetResourceFromCache(ctx, resourceID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, resourceID).Return(nil, service.ErrNotFound).Times(1)

	// Действие
	resource, err := svc.GetResource(ctx, resourceID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, resource)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateResource_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestResourceService(t)
	ctx := context.Background()
	resourceID := primitive.NewObjectID()
	existingResource := validResource()
	existingResource.ID = resourceID

	newName := "Пожарный расчет N3 (усиленный)"
	newCapacity := 8
	input := service.UpdateResourceInput{
		Name:     &newName,
		Capacity: &newCapacity,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, resourceID).Return(existingResource, nil).Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		Do(func(ctx context.Context, r *models.Resource) {
			assert.Equal(t, newName, r.Name)
			assert.Equal(t, newCapacity, r.Capacity)
			assert.Equal(t, models.ResourceTypePersonnel, r.Type)
		}).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateResourceCache(ctx, resourceID).Return(nil).Times(1)

	// Действие
	err := svc.UpdateResource(ctx, resourceID, input)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateResource_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestResourceService(t)
	ctx := context.Background()
	resourceID := primitive.NewObjectID()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, resourceID).Return(nil, service.ErrNotFound).Times(1)

	// Действие
	err := svc.UpdateResource(ctx, resourceID, service.UpdateResourceInput{})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.ErrorContains(t, err, "not found for update")
}

func TestDeleteResource_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestResourceService(t)
	ctx := context.Background()
	resourceID := primitive.NewObjectID()
	existingResource := validResource()
	existingResource.ID = resourceID

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, resourceID).Return(existingResource, nil).Times(1)
	repoMock.EXPECT().Delete(ctx, resourceID).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateResourceCache(ctx, resourceID).Return(nil).Times(1)

	// Действие
	err := svc.DeleteResource(ctx, resourceID)

	// Проверки
	require.NoError(t, err)
}

func TestDeleteResource_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestResourceService(t)
	ctx := context.Background()
	resourceID := primitive.NewObjectID()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, resourceID).Return(nil, service.ErrNotFound).Times(1)

	// Действие
	err := svc.DeleteResource(ctx, resourceID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.ErrorContains(t, err, "not found for delete")
}

func TestListResources_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestResourceService(t)
	ctx := context.Background()
	// Фильтр диалога назначения: свободные и исправные
	filter := service.ResourceFilter{
		Status:            models.ResourceStatusAvailable,
		MaintenanceStatus: models.MaintenanceOperational,
	}
	expectedResources := []*models.Resource{
		{ID: primitive.NewObjectID(), Name: "Ресурс 1"},
		{ID: primitive.NewObjectID(), Name: "Ресурс 2"},
	}

	// Ожидания
	repoMock.EXPECT().List(ctx, filter).Return(expectedResources, nil).Times(1)

	// Действие
	resources, err := svc.ListResources(ctx, filter)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedResources, resources)
}

func TestMarkMaintenance_DefaultsStatus(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestResourceService(t)
	ctx := context.Background()
	resourceID := primitive.NewObjectID()

	// Ожидания
	// Пустой статус заменяется на under-maintenance
	repoMock.EXPECT().
		StartMaintenance(ctx, resourceID, models.MaintenanceUnderRepair, "замена масла", gomock.Any()).
		Return(nil).
		Times(1)
	repoMock.EXPECT().InvalidateResourceCache(ctx, resourceID).Return(nil).Times(1)

	// Действие
	err := svc.MarkMaintenance(ctx, resourceID, "", "замена масла")

	// Проверки
	require.NoError(t, err)
}

func TestResourceService_CompleteMaintenance_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestResourceService(t)
	ctx := context.Background()
	resourceID := primitive.NewObjectID()

	// Ожидания
	repoMock.EXPECT().FinishMaintenance(ctx, resourceID, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateResourceCache(ctx, resourceID).Return(nil).Times(1)

	// Действие
	err := svc.CompleteMaintenance(ctx, resourceID)

	// Проверки
	require.NoError(t, err)
}

package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/disasterconnect/disaster_coordination_system/internal/models"
	"github.com/disasterconnect/disaster_coordination_system/internal/service"
	"github.com/disasterconnect/disaster_coordination_system/internal/service/mocks"
	"github.com/disasterconnect/disaster_coordination_system/internal/webhook"
	webhook_mocks "github.com/disasterconnect/disaster_coordination_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

// newTestAssignmentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAssignmentService(t *testing.T) (service.AssignmentService, *mocks.MockIncidentService, *mocks.MockResourceService, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	incidentsMock := mocks.NewMockIncidentService(ctrl)
	resourcesMock := mocks.NewMockResourceService(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := service.NewAssignmentService(incidentsMock, resourcesMock, webhookMock, logger)
	return svc, incidentsMock, resourcesMock, webhookMock
}

func activeIncident(id primitive.ObjectID) *models.Incident {
	return &models.Incident{
		ID:                id,
		Title:             "Активный инцидент",
		Status:            models.IncidentStatusActive,
		ResourcesAssigned: []primitive.ObjectID{},
	}
}

func availableResource(id primitive.ObjectID) *models.Resource {
	return &models.Resource{
		ID:                id,
		Name:              "Свободный ресурс",
		Status:            models.ResourceStatusAvailable,
		MaintenanceStatus: models.MaintenanceOperational,
	}
}

func assignedResource(id, incidentID primitive.ObjectID) *models.Resource {
	return &models.Resource{
		ID:                id,
		Name:              "Занятый ресурс",
		Status:            models.ResourceStatusAssigned,
		MaintenanceStatus: models.MaintenanceOperational,
		CurrentIncident:   &incidentID,
	}
}

func TestAssign_Success(t *testing.T) {
	// Подготовка
	svc, incidentsMock, resourcesMock, webhookMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	// Ожидания
	incidentsMock.EXPECT().GetIncident(ctx, incidentID).Return(activeIncident(incidentID), nil).Times(1)
	resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(availableResource(resourceID), nil).Times(1)
	incidentsMock.EXPECT().AssignResource(ctx, incidentID, resourceID).Return(nil).Times(1)
	resourcesMock.EXPECT().AssignToIncident(ctx, resourceID, incidentID).Return(nil).Times(1)

	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, webhook.EventResourceAssigned, event.Type)
			assert.Equal(t, incidentID.Hex(), event.IncidentID)
			assert.Equal(t, resourceID.Hex(), event.ResourceID)
			assert.NotEmpty(t, event.ID)
		}).Return(nil).Times(1)

	// Действие
	err := svc.Assign(ctx, incidentID, resourceID)

	// Проверки
	require.NoError(t, err)
}

func TestAssign_ClosedIncident(t *testing.T) {
	// Подготовка
	svc, incidentsMock, _, webhookMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	closed := activeIncident(incidentID)
	closed.Status = models.IncidentStatusClosed

	// Ожидания
	incidentsMock.EXPECT().GetIncident(ctx, incidentID).Return(closed, nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.Assign(ctx, incidentID, resourceID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrIncidentClosed)
}

func TestAssign_ResourceUnavailable(t *testing.T) {
	// Подготовка
	svc, incidentsMock, resourcesMock, webhookMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	otherIncidentID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	// Ресурс уже закреплен за другим инцидентом
	busy := assignedResource(resourceID, otherIncidentID)

	// Ожидания
	incidentsMock.EXPECT().GetIncident(ctx, incidentID).Return(activeIncident(incidentID), nil).Times(1)
	resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(busy, nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.Assign(ctx, incidentID, resourceID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrResourceUnavailable)
}

func TestAssign_ResourceUnderMaintenance(t *testing.T) {
	// Подготовка
	svc, incidentsMock, resourcesMock, _ := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	inRepair := availableResource(resourceID)
	inRepair.MaintenanceStatus = models.MaintenanceUnderRepair

	// Ожидания
	incidentsMock.EXPECT().GetIncident(ctx, incidentID).Return(activeIncident(incidentID), nil).Times(1)
	resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(inRepair, nil).Times(1)

	// Действие
	err := svc.Assign(ctx, incidentID, resourceID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrResourceUnavailable)
}

func TestAssign_RollbackOnResourceSideFailure(t *testing.T) {
	// Подготовка
	svc, incidentsMock, resourcesMock, webhookMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()
	resourceErr := fmt.Errorf("update failed")

	// Ожидания
	incidentsMock.EXPECT().GetIncident(ctx, incidentID).Return(activeIncident(incidentID), nil).Times(1)
	resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(availableResource(resourceID), nil).Times(1)
	incidentsMock.EXPECT().AssignResource(ctx, incidentID, resourceID).Return(nil).Times(1)
	resourcesMock.EXPECT().AssignToIncident(ctx, resourceID, incidentID).Return(resourceErr).Times(1)

	// Компенсирующий откат стороны инцидента
	incidentsMock.EXPECT().UnassignResource(ctx, incidentID, resourceID).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.Assign(ctx, incidentID, resourceID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, resourceErr)
}

func TestRelease_Success(t *testing.T) {
	// Подготовка
	svc, incidentsMock, resourcesMock, webhookMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	// Ожидания
	// Чистятся обе стороны связи
	resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(assignedResource(resourceID, incidentID), nil).Times(1)
	resourcesMock.EXPECT().ReleaseFromIncident(ctx, resourceID).Return(nil).Times(1)
	incidentsMock.EXPECT().UnassignResource(ctx, incidentID, resourceID).Return(nil).Times(1)

	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, webhook.EventResourceReleased, event.Type)
			assert.Equal(t, incidentID.Hex(), event.IncidentID)
			assert.Equal(t, resourceID.Hex(), event.ResourceID)
		}).Return(nil).Times(1)

	// Действие
	err := svc.Release(ctx, resourceID)

	// Проверки
	require.NoError(t, err)
}

func TestRelease_NotAssigned_IsNoOp(t *testing.T) {
	// Подготовка
	svc, _, resourcesMock, webhookMock := newTestAssignmentService(t)
	ctx := context.Background()
	resourceID := primitive.NewObjectID()

	// Ожидания
	// Никаких мутаций и вебхуков для свободного ресурса
	resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(availableResource(resourceID), nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.Release(ctx, resourceID)

	// Проверки
	require.NoError(t, err)
}

func TestSendToMaintenance_ReleasesAssignedResourceFirst(t *testing.T) {
	// Подготовка
	svc, incidentsMock, resourcesMock, webhookMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	// Ожидания
	// Первый GetResource видит занятый ресурс, SendToMaintenance освобождает его через Release
	first := resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(assignedResource(resourceID, incidentID), nil).Times(1)
	resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(assignedResource(resourceID, incidentID), nil).After(first).Times(1)
	resourcesMock.EXPECT().ReleaseFromIncident(ctx, resourceID).Return(nil).Times(1)
	incidentsMock.EXPECT().UnassignResource(ctx, incidentID, resourceID).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	resourcesMock.EXPECT().MarkMaintenance(ctx, resourceID, models.MaintenanceUnderRepair, "плановый осмотр").Return(nil).Times(1)

	// Действие
	err := svc.SendToMaintenance(ctx, resourceID, models.MaintenanceUnderRepair, "плановый осмотр")

	// Проверки
	require.NoError(t, err)
}

func TestSendToMaintenance_AvailableResource(t *testing.T) {
	// Подготовка
	svc, _, resourcesMock, _ := newTestAssignmentService(t)
	ctx := context.Background()
	resourceID := primitive.NewObjectID()

	// Ожидания
	resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(availableResource(resourceID), nil).Times(1)
	resourcesMock.EXPECT().MarkMaintenance(ctx, resourceID, models.MaintenanceUnderRepair, "").Return(nil).Times(1)

	// Действие
	err := svc.SendToMaintenance(ctx, resourceID, models.MaintenanceUnderRepair, "")

	// Проверки
	require.NoError(t, err)
}

func TestCompleteMaintenance_NotUnderMaintenance_IsNoOp(t *testing.T) {
	// Подготовка
	svc, _, resourcesMock, _ := newTestAssignmentService(t)
	ctx := context.Background()
	resourceID := primitive.NewObjectID()

	// Ожидания
	resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(availableResource(resourceID), nil).Times(1)

	// Действие
	err := svc.CompleteMaintenance(ctx, resourceID)

	// Проверки
	require.NoError(t, err)
}

func TestCompleteMaintenance_Success(t *testing.T) {
	// Подготовка
	svc, _, resourcesMock, _ := newTestAssignmentService(t)
	ctx := context.Background()
	resourceID := primitive.NewObjectID()

	inMaintenance := availableResource(resourceID)
	inMaintenance.Status = models.ResourceStatusMaintenance
	inMaintenance.MaintenanceStatus = models.MaintenanceUnderRepair

	// Ожидания
	resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(inMaintenance, nil).Times(1)
	resourcesMock.EXPECT().CompleteMaintenance(ctx, resourceID).Return(nil).Times(1)

	// Действие
	err := svc.CompleteMaintenance(ctx, resourceID)

	// Проверки
	require.NoError(t, err)
}

func TestCloseIncident_CascadeReleasesResources(t *testing.T) {
	// Подготовка
	svc, incidentsMock, resourcesMock, webhookMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	resourceID1 := primitive.NewObjectID()
	resourceID2 := primitive.NewObjectID()

	incident := activeIncident(incidentID)
	incident.ResourcesAssigned = []primitive.ObjectID{resourceID1, resourceID2}
	notes := "Ликвидация завершена"

	// Ожидания
	incidentsMock.EXPECT().GetIncident(ctx, incidentID).Return(incident, nil).Times(1)

	// Каскадное освобождение каждого закрепленного ресурса
	for _, resourceID := range []primitive.ObjectID{resourceID1, resourceID2} {
		resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(assignedResource(resourceID, incidentID), nil).Times(1)
		resourcesMock.EXPECT().ReleaseFromIncident(ctx, resourceID).Return(nil).Times(1)
		incidentsMock.EXPECT().UnassignResource(ctx, incidentID, resourceID).Return(nil).Times(1)
	}

	incidentsMock.EXPECT().CloseIncident(ctx, incidentID, notes).Return(nil).Times(1)

	// Два события resource.released и одно incident.closed
	events := make([]string, 0, 3)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.WebhookEvent) {
			events = append(events, event.Type)
		}).Return(nil).Times(3)

	// Действие
	err := svc.CloseIncident(ctx, incidentID, notes)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{webhook.EventResourceReleased, webhook.EventResourceReleased, webhook.EventIncidentClosed}, events)
}

func TestCloseIncident_SkipsDeletedResourceReference(t *testing.T) {
	// Подготовка
	svc, incidentsMock, resourcesMock, webhookMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()
	deletedID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	incident := activeIncident(incidentID)
	incident.ResourcesAssigned = []primitive.ObjectID{deletedID, resourceID}
	notes := "Ликвидация завершена"

	// Ожидания
	incidentsMock.EXPECT().GetIncident(ctx, incidentID).Return(incident, nil).Times(1)

	// Первый ресурс был удален: висячая ссылка вычищается, закрытие продолжается
	resourcesMock.EXPECT().
		GetResource(ctx, deletedID).
		Return(nil, fmt.Errorf("service: could not get resource: %w", service.ErrNotFound)).
		Times(1)
	incidentsMock.EXPECT().UnassignResource(ctx, incidentID, deletedID).Return(nil).Times(1)

	// Второй ресурс освобождается штатно
	resourcesMock.EXPECT().GetResource(ctx, resourceID).Return(assignedResource(resourceID, incidentID), nil).Times(1)
	resourcesMock.EXPECT().ReleaseFromIncident(ctx, resourceID).Return(nil).Times(1)
	incidentsMock.EXPECT().UnassignResource(ctx, incidentID, resourceID).Return(nil).Times(1)

	incidentsMock.EXPECT().CloseIncident(ctx, incidentID, notes).Return(nil).Times(1)

	// Для удаленного ресурса события resource.released нет
	events := make([]string, 0, 2)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.WebhookEvent) {
			events = append(events, event.Type)
		}).Return(nil).Times(2)

	// Действие
	err := svc.CloseIncident(ctx, incidentID, notes)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{webhook.EventResourceReleased, webhook.EventIncidentClosed}, events)
}

func TestCloseIncident_AlreadyClosed(t *testing.T) {
	// Подготовка
	svc, incidentsMock, _, webhookMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()

	closed := activeIncident(incidentID)
	closed.Status = models.IncidentStatusClosed

	// Ожидания
	incidentsMock.EXPECT().GetIncident(ctx, incidentID).Return(closed, nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.CloseIncident(ctx, incidentID, "повторно")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrIncidentClosed)
}

func TestCloseIncident_PublishFailureDoesNotFailClose(t *testing.T) {
	// Подготовка
	svc, incidentsMock, _, webhookMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := primitive.NewObjectID()

	// Ожидания
	incidentsMock.EXPECT().GetIncident(ctx, incidentID).Return(activeIncident(incidentID), nil).Times(1)
	incidentsMock.EXPECT().CloseIncident(ctx, incidentID, "готово").Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("redis down")).Times(1)

	// Действие
	err := svc.CloseIncident(ctx, incidentID, "готово")

	// Проверки
	// Переход состояния уже выполнен, сбой публикации только логируется
	require.NoError(t, err)
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DerrickJaguar/rent/internal/domain/models"
)

func TestSynthesizeNotificationsRentDue(t *testing.T) {
	// 2024-01-25: 距2月1号7天，进入提醒窗口
	now := time.Date(2024, time.January, 25, 10, 0, 0, 0, time.UTC)
	tenants := []models.Tenant{fixtureTenant("t1", "p1", true)}
	tenants[0].FirstName = "Mutamba"
	tenants[0].LastName = "Sheenah"
	tenants[0].LeaseEndDate = time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	notifications := SynthesizeNotifications(now, tenants, nil)
	require.Len(t, notifications, 1)
	assert.Equal(t, "rent-due-t1", notifications[0].ID)
	assert.Equal(t, models.NotificationTypeRentDue, notifications[0].Type)
	assert.Equal(t, "Rent Due Soon", notifications[0].Title)
	assert.Equal(t, "Rent payment for Mutamba Sheenah is due in 7 days", notifications[0].Message)
	assert.True(t, notifications[0].IsSystem())
}

func TestSynthesizeNotificationsOutsideRentWindow(t *testing.T) {
	// 2024-01-10: 距2月1号22天，不提醒
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	tenants := []models.Tenant{fixtureTenant("t1", "p1", true)}
	tenants[0].LeaseEndDate = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, SynthesizeNotifications(now, tenants, nil))
}

func TestSynthesizeNotificationsLeaseExpiry(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	tenants := []models.Tenant{fixtureTenant("t1", "p1", true)}
	// 50天后到期，在60天通知窗口内
	tenants[0].LeaseEndDate = time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	notifications := SynthesizeNotifications(now, tenants, nil)
	require.Len(t, notifications, 1)
	assert.Equal(t, "lease-expiry-t1", notifications[0].ID)
	assert.Equal(t, models.NotificationTypeLeaseExpiry, notifications[0].Type)
	assert.Equal(t, "Lease for Tenant t1 expires in 50 days", notifications[0].Message)
}

func TestSynthesizeNotificationsOverduePayment(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	tenants := []models.Tenant{fixtureTenant("t1", "p1", true)}
	tenants[0].LeaseEndDate = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{fixturePayment("pay1", "t1", 250, dueDate, models.PaymentStatusOverdue)}

	notifications := SynthesizeNotifications(now, tenants, payments)
	require.Len(t, notifications, 1)
	assert.Equal(t, "overdue-pay1", notifications[0].ID)
	assert.Equal(t, "Payment of $250 from Tenant t1 is overdue", notifications[0].Message)
	// 逾期通知用账单到期日作为时间戳
	assert.Equal(t, dueDate, notifications[0].CreatedAt)
}

func TestSynthesizeNotificationsFractionalAmount(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	tenants := []models.Tenant{fixtureTenant("t1", "p1", true)}
	tenants[0].LeaseEndDate = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{fixturePayment("pay1", "t1", 250.5, now, models.PaymentStatusOverdue)}

	notifications := SynthesizeNotifications(now, tenants, payments)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "$250.50")
}

func TestSynthesizeNotificationsIsDeterministic(t *testing.T) {
	now := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)
	tenants := []models.Tenant{fixtureTenant("t1", "p1", true)}
	payments := []models.Payment{fixturePayment("pay1", "t1", 250, now, models.PaymentStatusOverdue)}

	first := SynthesizeNotifications(now, tenants, payments)
	second := SynthesizeNotifications(now, tenants, payments)
	assert.Equal(t, first, second)
}

func TestGetAllNotificationsMergesAndSorts(t *testing.T) {
	now := time.Date(2024, time.January, 25, 10, 0, 0, 0, time.UTC)
	tenants := []models.Tenant{fixtureTenant("t1", "p1", true)}
	tenants[0].LeaseEndDate = time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	store, _ := newTestStore(t, now, nil, tenants, []models.Payment{})
	svc := NewNotificationService(store, testConfig())

	// 一条较早的用户通知
	older := models.Notification{
		ID:          "user-1",
		Type:        models.NotificationTypeGeneral,
		Title:       "Water outage",
		Message:     "Maintenance on Friday",
		RecipientID: "landlord",
		CreatedAt:   now.Add(-48 * time.Hour),
	}
	require.NoError(t, store.SaveNotifications([]models.Notification{older}))

	all, err := svc.GetAllNotifications()
	require.NoError(t, err)
	require.Len(t, all, 2)
	// 系统通知CreatedAt=now，排在较早的用户通知前面
	assert.Equal(t, "rent-due-t1", all[0].ID)
	assert.Equal(t, "user-1", all[1].ID)
}

func TestUnreadCountsPerType(t *testing.T) {
	now := time.Date(2024, time.January, 25, 10, 0, 0, 0, time.UTC)
	tenants := []models.Tenant{fixtureTenant("t1", "p1", true)}
	tenants[0].LeaseEndDate = time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	store, _ := newTestStore(t, now, nil, tenants, []models.Payment{})
	svc := NewNotificationService(store, testConfig())

	// 一条已读、一条未读的用户通知
	require.NoError(t, store.SaveNotifications([]models.Notification{
		{ID: "user-1", Type: models.NotificationTypeGeneral, IsRead: true, CreatedAt: now},
		{ID: "user-2", Type: models.NotificationTypeMaintenance, CreatedAt: now},
	}))

	counts, err := svc.UnreadCounts()
	require.NoError(t, err)
	// 系统生成的rent-due通知永远是未读的
	assert.Equal(t, 1, counts[models.NotificationTypeRentDue])
	assert.Equal(t, 1, counts[models.NotificationTypeMaintenance])
	assert.Zero(t, counts[models.NotificationTypeGeneral])
}

func TestCreateNotificationRejectsSystemTypes(t *testing.T) {
	store, _ := newTestStore(t, testNow, nil, []models.Tenant{}, []models.Payment{})
	svc := NewNotificationService(store, testConfig())

	_, err := svc.CreateNotification(&NotificationRequest{
		Type: "rent_due", Title: "x", Message: "y",
	})
	assert.ErrorIs(t, err, ErrValidation)

	created, err := svc.CreateNotification(&NotificationRequest{
		Type: "maintenance", Title: "Leaky roof", Message: "Unit p1 reported a leak",
	})
	require.NoError(t, err)
	assert.Equal(t, "landlord", created.RecipientID)
	assert.False(t, created.IsSystem())
}

func TestMarkNotificationRead(t *testing.T) {
	store, _ := newTestStore(t, testNow, nil, []models.Tenant{}, []models.Payment{})
	svc := NewNotificationService(store, testConfig())

	created, err := svc.CreateNotification(&NotificationRequest{
		Type: "general", Title: "Note", Message: "Body",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkNotificationRead(created.ID))
	stored, err := store.GetNotifications()
	require.NoError(t, err)
	assert.True(t, stored[0].IsRead)

	assert.ErrorIs(t, svc.MarkNotificationRead("missing"), ErrNotificationNotFound)
}

func TestSystemNotificationMutationsAreNoOps(t *testing.T) {
	store, _ := newTestStore(t, testNow, nil, []models.Tenant{}, []models.Payment{})
	svc := NewNotificationService(store, testConfig())

	// 系统通知不落盘，标记已读与删除都静默成功
	assert.NoError(t, svc.MarkNotificationRead("rent-due-t1"))
	assert.NoError(t, svc.DeleteNotification("overdue-pay1"))

	stored, err := store.GetNotifications()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestDeleteNotification(t *testing.T) {
	store, _ := newTestStore(t, testNow, nil, []models.Tenant{}, []models.Payment{})
	svc := NewNotificationService(store, testConfig())

	created, err := svc.CreateNotification(&NotificationRequest{
		Type: "general", Title: "Note", Message: "Body",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteNotification(created.ID))
	stored, err := store.GetNotifications()
	require.NoError(t, err)
	assert.Empty(t, stored)

	assert.ErrorIs(t, svc.DeleteNotification(created.ID), ErrNotificationNotFound)
}

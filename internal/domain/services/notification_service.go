package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/infrastructure/config"
	"github.com/DerrickJaguar/rent/internal/infrastructure/storage"
)

// InterfaceNotificationService 定义通知服务接口。系统通知每次调用都从
// 当前租户/支付状态重新生成，只有用户通知会持久化。
type InterfaceNotificationService interface {
	GetAllNotifications() ([]models.Notification, error)
	GenerateSystemNotifications() ([]models.Notification, error)
	CreateNotification(req *NotificationRequest) (*models.Notification, error)
	MarkNotificationRead(id string) error
	MarkAllNotificationsRead() error
	DeleteNotification(id string) error
	UnreadCounts() (map[models.NotificationType]int, error)
}

// NotificationRequest 创建用户通知的载荷
type NotificationRequest struct {
	Type    string `json:"type" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// NotificationService 提供通知相关的服务
type NotificationService struct {
	Store  *storage.Store
	Config *config.Config
}

// NewNotificationService 创建一个新的通知服务
func NewNotificationService(store *storage.Store, cfg *config.Config) InterfaceNotificationService {
	return &NotificationService{
		Store:  store,
		Config: cfg,
	}
}

// 1. GetAllNotifications 合并用户通知与系统通知，按创建时间倒序
func (s *NotificationService) GetAllNotifications() ([]models.Notification, error) {
	stored, err := s.Store.GetNotifications()
	if err != nil {
		return nil, err
	}
	generated, err := s.GenerateSystemNotifications()
	if err != nil {
		return nil, err
	}

	all := make([]models.Notification, 0, len(stored)+len(generated))
	all = append(all, stored...)
	all = append(all, generated...)
	sort.SliceStable(all, func(a, b int) bool {
		return all[a].CreatedAt.After(all[b].CreatedAt)
	})
	return all, nil
}

// 2. GenerateSystemNotifications 从当前状态生成系统通知
func (s *NotificationService) GenerateSystemNotifications() ([]models.Notification, error) {
	tenants, err := s.Store.GetTenants()
	if err != nil {
		return nil, err
	}
	payments, err := s.Store.GetPayments()
	if err != nil {
		return nil, err
	}
	return SynthesizeNotifications(s.Store.Clock().Now(), tenants, payments), nil
}

// 3. CreateNotification 创建一条持久化的用户通知
func (s *NotificationService) CreateNotification(req *NotificationRequest) (*models.Notification, error) {
	switch models.NotificationType(req.Type) {
	case models.NotificationTypeMaintenance, models.NotificationTypeGeneral:
	default:
		return nil, fmt.Errorf("%w: user notifications must be maintenance or general, got %q", ErrValidation, req.Type)
	}

	stored, err := s.Store.GetNotifications()
	if err != nil {
		return nil, err
	}

	notification := models.Notification{
		ID:          s.Store.NextID(),
		Type:        models.NotificationType(req.Type),
		Title:       req.Title,
		Message:     req.Message,
		RecipientID: "landlord",
		CreatedAt:   s.Store.Clock().Now(),
	}

	stored = append(stored, notification)
	if err := s.Store.SaveNotifications(stored); err != nil {
		return nil, err
	}
	return &notification, nil
}

// 4. MarkNotificationRead 标记单条通知已读。系统通知不落盘，
// 标记只对本次会话的合并视图生效。
func (s *NotificationService) MarkNotificationRead(id string) error {
	if models.IsSystemNotificationID(id) {
		return nil
	}

	stored, err := s.Store.GetNotifications()
	if err != nil {
		return err
	}
	found := false
	for i := range stored {
		if stored[i].ID == id {
			stored[i].IsRead = true
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotificationNotFound, id)
	}
	return s.Store.SaveNotifications(stored)
}

// 5. MarkAllNotificationsRead 标记所有用户通知已读
func (s *NotificationService) MarkAllNotificationsRead() error {
	stored, err := s.Store.GetNotifications()
	if err != nil {
		return err
	}
	for i := range stored {
		stored[i].IsRead = true
	}
	return s.Store.SaveNotifications(stored)
}

// 6. DeleteNotification 删除单条用户通知。系统通知无从删除，
// 下次加载仍会按当前状态重新生成。
func (s *NotificationService) DeleteNotification(id string) error {
	if models.IsSystemNotificationID(id) {
		return nil
	}

	stored, err := s.Store.GetNotifications()
	if err != nil {
		return err
	}
	remaining := make([]models.Notification, 0, len(stored))
	found := false
	for i := range stored {
		if stored[i].ID == id {
			found = true
			continue
		}
		remaining = append(remaining, stored[i])
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotificationNotFound, id)
	}
	return s.Store.SaveNotifications(remaining)
}

// 7. UnreadCounts 统计合并视图中每种类型的未读数量
func (s *NotificationService) UnreadCounts() (map[models.NotificationType]int, error) {
	all, err := s.GetAllNotifications()
	if err != nil {
		return nil, err
	}
	counts := make(map[models.NotificationType]int)
	for i := range all {
		if !all[i].IsRead {
			counts[all[i].Type]++
		}
	}
	return counts, nil
}

// SynthesizeNotifications derives the system notifications for the given
// instant: rent due within RentDueSoonDays, lease expiry within
// LeaseExpiryNoticeDays, and one entry per overdue payment. Deterministic
// ids keep these distinguishable from persisted user records.
func SynthesizeNotifications(now time.Time, tenants []models.Tenant, payments []models.Payment) []models.Notification {
	notifications := make([]models.Notification, 0)

	for i := range tenants {
		tenant := &tenants[i]
		if !tenant.IsActive {
			continue
		}
		daysUntilDue := daysBetween(now, NextRentDueDate(now))
		if daysUntilDue >= 0 && daysUntilDue <= RentDueSoonDays {
			notifications = append(notifications, models.Notification{
				ID:          models.SystemIDPrefixRentDue + tenant.ID,
				Type:        models.NotificationTypeRentDue,
				Title:       "Rent Due Soon",
				Message:     fmt.Sprintf("Rent payment for %s is due in %d days", tenant.FullName(), daysUntilDue),
				RecipientID: "landlord",
				CreatedAt:   now,
			})
		}
	}

	for i := range tenants {
		tenant := &tenants[i]
		if !tenant.IsActive {
			continue
		}
		daysUntilExpiry := daysBetween(now, tenant.LeaseEndDate)
		if daysUntilExpiry >= 0 && daysUntilExpiry <= LeaseExpiryNoticeDays {
			notifications = append(notifications, models.Notification{
				ID:          models.SystemIDPrefixLeaseExpiry + tenant.ID,
				Type:        models.NotificationTypeLeaseExpiry,
				Title:       "Lease Expiring Soon",
				Message:     fmt.Sprintf("Lease for %s expires in %d days", tenant.FullName(), daysUntilExpiry),
				RecipientID: "landlord",
				CreatedAt:   now,
			})
		}
	}

	for i := range payments {
		payment := &payments[i]
		if payment.Status != models.PaymentStatusOverdue {
			continue
		}
		tenant := findTenant(tenants, payment.TenantID)
		if tenant == nil {
			continue
		}
		notifications = append(notifications, models.Notification{
			ID:          models.SystemIDPrefixOverdue + payment.ID,
			Type:        models.NotificationTypeOverduePayment,
			Title:       "Overdue Payment",
			Message:     fmt.Sprintf("Payment of $%s from %s is overdue", formatAmount(payment.Amount), tenant.FullName()),
			RecipientID: "landlord",
			CreatedAt:   payment.DueDate,
		})
	}

	return notifications
}

// findTenant 在集合中定位租户
func findTenant(tenants []models.Tenant, id string) *models.Tenant {
	for i := range tenants {
		if tenants[i].ID == id {
			return &tenants[i]
		}
	}
	return nil
}

// formatAmount 金额展示：整数金额不带小数位
func formatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%d", int64(amount))
	}
	return fmt.Sprintf("%.2f", amount)
}

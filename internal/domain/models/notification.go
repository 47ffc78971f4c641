package models

import (
	"strings"
	"time"
)

// NotificationType 通知类型
type NotificationType string

const (
	NotificationTypeRentDue        NotificationType = "rent_due"
	NotificationTypeLeaseExpiry    NotificationType = "lease_expiry"
	NotificationTypeOverduePayment NotificationType = "overdue_payment"
	NotificationTypeMaintenance    NotificationType = "maintenance"
	NotificationTypeGeneral        NotificationType = "general"
)

// 系统通知的确定性ID前缀。带这些前缀的通知由当前状态实时生成，
// 永远不会写入存储。
const (
	SystemIDPrefixRentDue     = "rent-due-"
	SystemIDPrefixLeaseExpiry = "lease-expiry-"
	SystemIDPrefixOverdue     = "overdue-"
)

// Notification is either a persisted user record or a system record derived
// from current tenant/payment state on every load.
type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	IsRead      bool             `json:"isRead"`
	RecipientID string           `json:"recipientId"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// IsSystemNotificationID reports whether an id belongs to the system-derived
// subpopulation.
func IsSystemNotificationID(id string) bool {
	return strings.HasPrefix(id, SystemIDPrefixRentDue) ||
		strings.HasPrefix(id, SystemIDPrefixLeaseExpiry) ||
		strings.HasPrefix(id, SystemIDPrefixOverdue)
}

// IsSystem 是否为系统生成的通知
func (n *Notification) IsSystem() bool {
	return IsSystemNotificationID(n.ID)
}

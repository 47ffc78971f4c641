package services

// 各页面曾各自硬编码的时间窗口，统一收敛到这里，
// 聚合器和通知生成器都只用这些常量。
const (
	// RentDueSoonDays 租金到期提醒窗口（天）
	RentDueSoonDays = 7
	// LeaseExpiryUrgentDays 租约即将到期的紧急窗口（天）
	LeaseExpiryUrgentDays = 14
	// UpcomingWindowDays 仪表盘"即将到期"列表的窗口（天）
	UpcomingWindowDays = 30
	// LeaseExpiryNoticeDays 租约到期通知窗口（天）
	LeaseExpiryNoticeDays = 60
)

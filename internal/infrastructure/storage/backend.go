package storage

import "errors"

// 各集合在后端中的存储键，与老版本控制台写入localStorage的键保持一致，
// 以便旧数据可以被直接读出。
const (
	KeyProperties    = "rental_properties"
	KeyTenants       = "rental_tenants"
	KeyPayments      = "rental_payments"
	KeyNotifications = "rental_notifications"
	KeyUser          = "rental_user"
)

// ErrUnavailable 表示存储介质不可用或已满。调用方必须把该错误反馈给
// 用户，并保持内存状态不被破坏。
var ErrUnavailable = errors.New("storage backend unavailable")

// Backend is the string key-value medium the store persists to. The core
// depends only on this interface, never on a concrete backing technology.
type Backend interface {
	// Read returns the value for key; ok is false when the key is absent.
	Read(key string) (value string, ok bool, err error)
	// Write stores value under key in one atomic step per key.
	Write(key, value string) error
}

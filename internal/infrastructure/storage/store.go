package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/pkg/clock"
)

// Store is the typed entity store over a Backend. Collections are loaded and
// saved whole; a save is one backend write, so readers never observe a
// partially updated collection. The store holds no cache: in-memory state
// lives with the caller, which stages mutations and publishes them through a
// save (failed saves therefore roll back for free).
type Store struct {
	backend Backend
	clock   clock.Clock
}

// NewStore 创建实体存储
func NewStore(backend Backend, clk clock.Clock) *Store {
	return &Store{
		backend: backend,
		clock:   clk,
	}
}

// Clock 返回存储使用的时钟
func (s *Store) Clock() clock.Clock {
	return s.clock
}

// GetProperties 读取全部房源，首次读取时写入示例数据
func (s *Store) GetProperties() ([]models.Property, error) {
	raw, ok, err := s.backend.Read(KeyProperties)
	if err != nil {
		return nil, ErrUnavailable
	}
	if !ok {
		seed := seedProperties()
		if err := s.SaveProperties(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var properties []models.Property
	if err := json.Unmarshal([]byte(raw), &properties); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	// 统一老数据的status/isAvailable两种形态
	for i := range properties {
		properties[i].Normalize()
	}
	return properties, nil
}

// SaveProperties 原子替换整个房源集合
func (s *Store) SaveProperties(properties []models.Property) error {
	return s.write(KeyProperties, properties)
}

// GetTenants 读取全部租户，首次读取时写入示例数据
func (s *Store) GetTenants() ([]models.Tenant, error) {
	raw, ok, err := s.backend.Read(KeyTenants)
	if err != nil {
		return nil, ErrUnavailable
	}
	if !ok {
		seed := seedTenants()
		if err := s.SaveTenants(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var tenants []models.Tenant
	if err := json.Unmarshal([]byte(raw), &tenants); err != nil {
		return nil, fmt.Errorf("decode tenants: %w", err)
	}
	return tenants, nil
}

// SaveTenants 原子替换整个租户集合
func (s *Store) SaveTenants(tenants []models.Tenant) error {
	return s.write(KeyTenants, tenants)
}

// GetPayments 读取全部支付记录，首次读取时写入示例数据
func (s *Store) GetPayments() ([]models.Payment, error) {
	raw, ok, err := s.backend.Read(KeyPayments)
	if err != nil {
		return nil, ErrUnavailable
	}
	if !ok {
		seed := seedPayments()
		if err := s.SavePayments(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var payments []models.Payment
	if err := json.Unmarshal([]byte(raw), &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

// SavePayments 原子替换整个支付集合
func (s *Store) SavePayments(payments []models.Payment) error {
	return s.write(KeyPayments, payments)
}

// GetNotifications 读取持久化的用户通知。系统通知从不落盘，
// 因此这里没有种子数据，空集合就是空集合。
func (s *Store) GetNotifications() ([]models.Notification, error) {
	raw, ok, err := s.backend.Read(KeyNotifications)
	if err != nil {
		return nil, ErrUnavailable
	}
	if !ok {
		return []models.Notification{}, nil
	}

	var notifications []models.Notification
	if err := json.Unmarshal([]byte(raw), &notifications); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return notifications, nil
}

// SaveNotifications 原子替换整个通知集合
func (s *Store) SaveNotifications(notifications []models.Notification) error {
	return s.write(KeyNotifications, notifications)
}

// GetUser 读取唯一的控制台账户，首次读取时写入示例账户
func (s *Store) GetUser() (*models.User, error) {
	raw, ok, err := s.backend.Read(KeyUser)
	if err != nil {
		return nil, ErrUnavailable
	}
	if !ok {
		seed := seedUser()
		if err := s.SaveUser(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

// SaveUser 写入控制台账户
func (s *Store) SaveUser(user *models.User) error {
	return s.write(KeyUser, user)
}

// write 编码并一次性写入一个集合
func (s *Store) write(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Write(key, string(data)); err != nil {
		return ErrUnavailable
	}
	return nil
}

// NextID produces a collision-resistant identifier: unix-milli in base36
// plus a random suffix, so rapid successive calls in the same millisecond
// still diverge.
func (s *Store) NextID() string {
	ms := s.clock.Now().UnixMilli()
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strconv.FormatInt(ms, 36) + suffix
}

// NextReceiptNumber 生成收据编号，形如 RCP-123456
func (s *Store) NextReceiptNumber() string {
	ms := strconv.FormatInt(s.clock.Now().UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "RCP-" + ms
}

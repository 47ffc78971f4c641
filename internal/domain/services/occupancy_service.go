package services

import (
	"fmt"
	"time"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/infrastructure/config"
	"github.com/DerrickJaguar/rent/internal/infrastructure/storage"
)

// InterfaceOccupancyService 定义房源占用协调服务接口。
// 它维护的不变量：任一时刻一个房源至多绑定一个在租租户，
// Property.Status/TenantID 始终与 Tenant.PropertyID/IsActive 一致。
type InterfaceOccupancyService interface {
	AssignTenant(propertyID, tenantID string) error
	ReleaseTenant(propertyID string) error
	TransferTenant(tenantID, oldPropertyID, newPropertyID string) error
}

// OccupancyService 提供房源占用协调服务
type OccupancyService struct {
	Store  *storage.Store
	Config *config.Config
}

// NewOccupancyService 创建一个新的占用协调服务
func NewOccupancyService(store *storage.Store, cfg *config.Config) InterfaceOccupancyService {
	return &OccupancyService{
		Store:  store,
		Config: cfg,
	}
}

// 1. AssignTenant 把房源标记为已租并绑定租户，同时把租户记录指向该房源
func (s *OccupancyService) AssignTenant(propertyID, tenantID string) error {
	properties, err := s.Store.GetProperties()
	if err != nil {
		return err
	}
	tenants, err := s.Store.GetTenants()
	if err != nil {
		return err
	}
	previousTenants := snapshotTenants(tenants)
	now := s.Store.Clock().Now()

	if err := assignTenant(properties, tenants, propertyID, tenantID, now); err != nil {
		return err
	}
	if !bindTenantRecord(tenants, tenantID, propertyID, now) {
		return fmt.Errorf("%w: %s", ErrTenantNotFound, tenantID)
	}
	return s.persist(tenants, properties, previousTenants)
}

// 2. ReleaseTenant 把房源恢复为可租并清除两侧绑定，幂等
func (s *OccupancyService) ReleaseTenant(propertyID string) error {
	properties, err := s.Store.GetProperties()
	if err != nil {
		return err
	}
	tenants, err := s.Store.GetTenants()
	if err != nil {
		return err
	}
	previousTenants := snapshotTenants(tenants)
	now := s.Store.Clock().Now()

	if !releaseTenant(properties, propertyID, now) {
		return fmt.Errorf("%w: %s", ErrPropertyNotFound, propertyID)
	}
	unbindTenantRecords(tenants, propertyID, now)
	return s.persist(tenants, properties, previousTenants)
}

// 3. TransferTenant 把租户从旧房源迁到新房源，要么全部成功要么全部失败
func (s *OccupancyService) TransferTenant(tenantID, oldPropertyID, newPropertyID string) error {
	properties, err := s.Store.GetProperties()
	if err != nil {
		return err
	}
	tenants, err := s.Store.GetTenants()
	if err != nil {
		return err
	}
	previousTenants := snapshotTenants(tenants)
	now := s.Store.Clock().Now()

	if err := transferTenant(properties, tenants, tenantID, oldPropertyID, newPropertyID, now); err != nil {
		return err
	}
	if !bindTenantRecord(tenants, tenantID, newPropertyID, now) {
		return fmt.Errorf("%w: %s", ErrTenantNotFound, tenantID)
	}
	return s.persist(tenants, properties, previousTenants)
}

// persist 先写租户集合再写房源集合。房源写失败时把租户集合恢复原状。
func (s *OccupancyService) persist(tenants []models.Tenant, properties []models.Property, previousTenants []models.Tenant) error {
	if err := s.Store.SaveTenants(tenants); err != nil {
		return err
	}
	if err := s.Store.SaveProperties(properties); err != nil {
		_ = s.Store.SaveTenants(previousTenants)
		return err
	}
	return nil
}

// findProperty 在集合中定位房源
func findProperty(properties []models.Property, id string) *models.Property {
	for i := range properties {
		if properties[i].ID == id {
			return &properties[i]
		}
	}
	return nil
}

// assignTenant 在内存集合上执行绑定。校验全部通过后才改动任何字段，
// 供租户服务在一次逻辑操作内与租户写入组合使用。
func assignTenant(properties []models.Property, tenants []models.Tenant, propertyID, tenantID string, now time.Time) error {
	property := findProperty(properties, propertyID)
	if property == nil {
		return fmt.Errorf("%w: %s", ErrPropertyNotFound, propertyID)
	}

	// 房源侧绑定检查
	if property.Occupied() && property.TenantID != "" && property.TenantID != tenantID {
		return fmt.Errorf("%w: %s", ErrPropertyOccupied, propertyID)
	}
	// 租户侧反向检查，防御两侧曾经写歪的数据
	for i := range tenants {
		if tenants[i].IsActive && tenants[i].PropertyID == propertyID && tenants[i].ID != tenantID {
			return fmt.Errorf("%w: %s", ErrPropertyOccupied, propertyID)
		}
	}

	property.Status = models.PropertyStatusOccupied
	property.IsAvailable = false
	property.TenantID = tenantID
	property.UpdatedAt = now
	return nil
}

// releaseTenant 在内存集合上执行解绑，返回房源是否存在。
// 已经可租的房源再次release是无操作。
func releaseTenant(properties []models.Property, propertyID string, now time.Time) bool {
	property := findProperty(properties, propertyID)
	if property == nil {
		return false
	}
	if !property.Occupied() && property.TenantID == "" {
		return true
	}

	property.Status = models.PropertyStatusAvailable
	property.IsAvailable = true
	property.TenantID = ""
	property.UpdatedAt = now
	return true
}

// transferTenant 组合 release(old) + assign(new)。先对新房源做冲突校验，
// 任何一步通不过就整体拒绝，旧房源保持原状。
func transferTenant(properties []models.Property, tenants []models.Tenant, tenantID, oldPropertyID, newPropertyID string, now time.Time) error {
	newProperty := findProperty(properties, newPropertyID)
	if newProperty == nil {
		return fmt.Errorf("%w: %s", ErrPropertyNotFound, newPropertyID)
	}
	if newProperty.Occupied() && newProperty.TenantID != "" && newProperty.TenantID != tenantID {
		return fmt.Errorf("%w: %s", ErrPropertyOccupied, newPropertyID)
	}
	for i := range tenants {
		if tenants[i].IsActive && tenants[i].PropertyID == newPropertyID && tenants[i].ID != tenantID {
			return fmt.Errorf("%w: %s", ErrPropertyOccupied, newPropertyID)
		}
	}

	if oldPropertyID != "" {
		releaseTenant(properties, oldPropertyID, now)
	}
	return assignTenant(properties, tenants, newPropertyID, tenantID, now)
}

// bindTenantRecord 把租户记录指向房源，返回租户是否存在
func bindTenantRecord(tenants []models.Tenant, tenantID, propertyID string, now time.Time) bool {
	for i := range tenants {
		if tenants[i].ID == tenantID {
			tenants[i].PropertyID = propertyID
			tenants[i].IsActive = true
			tenants[i].UpdatedAt = now
			return true
		}
	}
	return false
}

// unbindTenantRecords 清除所有指向该房源的租户绑定。
// 是否停租由租户服务决定，这里只断开指向。
func unbindTenantRecords(tenants []models.Tenant, propertyID string, now time.Time) {
	for i := range tenants {
		if tenants[i].PropertyID == propertyID {
			tenants[i].PropertyID = ""
			tenants[i].UpdatedAt = now
		}
	}
}

// snapshotTenants 复制租户集合，供写失败时回滚
func snapshotTenants(tenants []models.Tenant) []models.Tenant {
	previous := make([]models.Tenant, len(tenants))
	copy(previous, tenants)
	return previous
}

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/infrastructure/config"
	"github.com/DerrickJaguar/rent/internal/infrastructure/storage"
)

// InterfaceTenantService 定义租户服务接口
type InterfaceTenantService interface {
	GetAllTenants(page, pageSize int) ([]models.Tenant, int, error)
	GetTenantByID(id string) (*models.Tenant, error)
	CreateTenant(req *TenantRequest) (*models.Tenant, error)
	UpdateTenant(id string, req *TenantRequest) (*models.Tenant, error)
	DeleteTenant(id string) error
}

// TenantRequest 创建/更新租户的载荷，日期为 YYYY-MM-DD
type TenantRequest struct {
	FirstName        string                  `json:"firstName" binding:"required"`
	LastName         string                  `json:"lastName" binding:"required"`
	Email            string                  `json:"email" binding:"required"`
	Phone            string                  `json:"phone"`
	PropertyID       string                  `json:"propertyId"`
	LeaseStartDate   string                  `json:"leaseStartDate" binding:"required"`
	LeaseEndDate     string                  `json:"leaseEndDate" binding:"required"`
	RentAmount       float64                 `json:"rentAmount"`
	SecurityDeposit  float64                 `json:"securityDeposit"`
	EmergencyContact models.EmergencyContact `json:"emergencyContact"`
	Notes            string                  `json:"notes"`
	IsActive         *bool                   `json:"isActive"`
}

// TenantService 提供租户相关的服务。所有写操作先在内存副本上完成
// 租户与房源两侧的调整，再整集合落盘；落盘失败即回滚。
type TenantService struct {
	Store  *storage.Store
	Config *config.Config
}

// NewTenantService 创建一个新的租户服务
func NewTenantService(store *storage.Store, cfg *config.Config) InterfaceTenantService {
	return &TenantService{
		Store:  store,
		Config: cfg,
	}
}

// active 解析IsActive，创建时默认在租
func (r *TenantRequest) active(defaultValue bool) bool {
	if r.IsActive == nil {
		return defaultValue
	}
	return *r.IsActive
}

// parseLease 解析并校验租期
func (r *TenantRequest) parseLease() (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", r.LeaseStartDate)
	if err != nil {
		return start, end, fmt.Errorf("%w: invalid leaseStartDate %q", ErrValidation, r.LeaseStartDate)
	}
	end, err = time.Parse("2006-01-02", r.LeaseEndDate)
	if err != nil {
		return start, end, fmt.Errorf("%w: invalid leaseEndDate %q", ErrValidation, r.LeaseEndDate)
	}
	if !end.After(start) {
		return start, end, fmt.Errorf("%w: leaseEndDate must be after leaseStartDate", ErrValidation)
	}
	return start, end, nil
}

// validate 校验载荷，任何失败都发生在变更之前
func (r *TenantRequest) validate(isActive bool) error {
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("%w: firstName and lastName are required", ErrValidation)
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if isActive && r.PropertyID == "" {
		return fmt.Errorf("%w: an active tenant must reference a property", ErrValidation)
	}
	if r.RentAmount < 0 {
		return fmt.Errorf("%w: rentAmount must not be negative", ErrValidation)
	}
	if r.SecurityDeposit < 0 {
		return fmt.Errorf("%w: securityDeposit must not be negative", ErrValidation)
	}
	return nil
}

// 1. GetAllTenants 获取租户列表，支持分页
func (s *TenantService) GetAllTenants(page, pageSize int) ([]models.Tenant, int, error) {
	tenants, err := s.Store.GetTenants()
	if err != nil {
		return nil, 0, err
	}

	total := len(tenants)
	start := (page - 1) * pageSize
	if start >= total {
		return []models.Tenant{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return tenants[start:end], total, nil
}

// 2. GetTenantByID 根据ID获取租户
func (s *TenantService) GetTenantByID(id string) (*models.Tenant, error) {
	tenants, err := s.Store.GetTenants()
	if err != nil {
		return nil, err
	}
	for i := range tenants {
		if tenants[i].ID == id {
			result := tenants[i]
			return &result, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTenantNotFound, id)
}

// 3. CreateTenant 创建租户。在租租户同时绑定其房源，
// 房源已被占用时整个操作拒绝。
func (s *TenantService) CreateTenant(req *TenantRequest) (*models.Tenant, error) {
	isActive := req.active(true)
	if err := req.validate(isActive); err != nil {
		return nil, err
	}
	leaseStart, leaseEnd, err := req.parseLease()
	if err != nil {
		return nil, err
	}

	tenants, err := s.Store.GetTenants()
	if err != nil {
		return nil, err
	}
	properties, err := s.Store.GetProperties()
	if err != nil {
		return nil, err
	}

	now := s.Store.Clock().Now()
	tenant := models.Tenant{
		ID:               s.Store.NextID(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		PropertyID:       req.PropertyID,
		LeaseStartDate:   leaseStart,
		LeaseEndDate:     leaseEnd,
		RentAmount:       req.RentAmount,
		SecurityDeposit:  req.SecurityDeposit,
		EmergencyContact: req.EmergencyContact,
		Notes:            req.Notes,
		IsActive:         isActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if isActive {
		if err := assignTenant(properties, tenants, req.PropertyID, tenant.ID, now); err != nil {
			return nil, err
		}
	} else if req.PropertyID != "" && findProperty(properties, req.PropertyID) == nil {
		return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, req.PropertyID)
	}

	staged := append(append([]models.Tenant{}, tenants...), tenant)
	if err := s.persist(staged, properties, tenants, isActive); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// 4. UpdateTenant 更新租户。换房走整体迁移，停租/复租同步释放或绑定房源。
func (s *TenantService) UpdateTenant(id string, req *TenantRequest) (*models.Tenant, error) {
	tenants, err := s.Store.GetTenants()
	if err != nil {
		return nil, err
	}

	var tenant *models.Tenant
	for i := range tenants {
		if tenants[i].ID == id {
			tenant = &tenants[i]
			break
		}
	}
	if tenant == nil {
		return nil, fmt.Errorf("%w: %s", ErrTenantNotFound, id)
	}

	wasActive := tenant.IsActive
	oldPropertyID := tenant.PropertyID
	isActive := req.active(wasActive)
	if err := req.validate(isActive); err != nil {
		return nil, err
	}
	leaseStart, leaseEnd, err := req.parseLease()
	if err != nil {
		return nil, err
	}

	properties, err := s.Store.GetProperties()
	if err != nil {
		return nil, err
	}

	// 与创建侧一致：停租租户引用的房源也必须真实存在
	if !isActive && req.PropertyID != "" && findProperty(properties, req.PropertyID) == nil {
		return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, req.PropertyID)
	}

	now := s.Store.Clock().Now()
	propertiesTouched := false
	switch {
	case wasActive && isActive && req.PropertyID != oldPropertyID:
		if err := transferTenant(properties, tenants, id, oldPropertyID, req.PropertyID, now); err != nil {
			return nil, err
		}
		propertiesTouched = true
	case wasActive && !isActive:
		releaseTenant(properties, oldPropertyID, now)
		propertiesTouched = true
	case !wasActive && isActive:
		if err := assignTenant(properties, tenants, req.PropertyID, id, now); err != nil {
			return nil, err
		}
		propertiesTouched = true
	}

	tenant.FirstName = req.FirstName
	tenant.LastName = req.LastName
	tenant.Email = req.Email
	tenant.Phone = req.Phone
	tenant.PropertyID = req.PropertyID
	tenant.LeaseStartDate = leaseStart
	tenant.LeaseEndDate = leaseEnd
	tenant.RentAmount = req.RentAmount
	tenant.SecurityDeposit = req.SecurityDeposit
	tenant.EmergencyContact = req.EmergencyContact
	tenant.Notes = req.Notes
	tenant.IsActive = isActive
	tenant.UpdatedAt = now

	original, err := s.Store.GetTenants()
	if err != nil {
		return nil, err
	}
	if err := s.persist(tenants, properties, original, propertiesTouched); err != nil {
		return nil, err
	}
	result := *tenant
	return &result, nil
}

// 5. DeleteTenant 删除租户并释放其占用的房源
func (s *TenantService) DeleteTenant(id string) error {
	tenants, err := s.Store.GetTenants()
	if err != nil {
		return err
	}

	var deleted *models.Tenant
	remaining := make([]models.Tenant, 0, len(tenants))
	for i := range tenants {
		if tenants[i].ID == id {
			deleted = &tenants[i]
			continue
		}
		remaining = append(remaining, tenants[i])
	}
	if deleted == nil {
		return fmt.Errorf("%w: %s", ErrTenantNotFound, id)
	}

	properties, err := s.Store.GetProperties()
	if err != nil {
		return err
	}

	propertiesTouched := false
	if deleted.IsActive && deleted.PropertyID != "" {
		// 被删租户的房源可能已先被删除，这里按幂等release处理
		releaseTenant(properties, deleted.PropertyID, s.Store.Clock().Now())
		propertiesTouched = true
	}

	return s.persist(remaining, properties, tenants, propertiesTouched)
}

// persist 先写租户集合再写房源集合。房源写失败时把租户集合恢复原状，
// 避免展示状态与存储状态分叉。
func (s *TenantService) persist(tenants []models.Tenant, properties []models.Property, previousTenants []models.Tenant, propertiesTouched bool) error {
	if err := s.Store.SaveTenants(tenants); err != nil {
		return err
	}
	if !propertiesTouched {
		return nil
	}
	if err := s.Store.SaveProperties(properties); err != nil {
		// 回滚已写入的租户集合；介质仍不可用时也只能如实上报
		_ = s.Store.SaveTenants(previousTenants)
		return err
	}
	return nil
}

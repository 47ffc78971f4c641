package services

import (
	"fmt"
	"strings"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/infrastructure/config"
	"github.com/DerrickJaguar/rent/internal/infrastructure/storage"
)

// InterfacePropertyService 定义房源服务接口
type InterfacePropertyService interface {
	GetAllProperties(page, pageSize int) ([]models.Property, int, error)
	GetPropertyByID(id string) (*models.Property, error)
	CreateProperty(req *PropertyRequest) (*models.Property, error)
	UpdateProperty(id string, req *PropertyRequest) (*models.Property, error)
	DeleteProperty(id string) error
}

// PropertyRequest 创建/更新房源的载荷
type PropertyRequest struct {
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	ZipCode     string  `json:"zipCode"`
	Type        string  `json:"type" binding:"required"`
	RentAmount  float64 `json:"rentAmount"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	SquareFeet  int     `json:"squareFeet"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}

// PropertyService 提供房源相关的服务
type PropertyService struct {
	Store  *storage.Store
	Config *config.Config
}

// NewPropertyService 创建一个新的房源服务
func NewPropertyService(store *storage.Store, cfg *config.Config) InterfacePropertyService {
	return &PropertyService{
		Store:  store,
		Config: cfg,
	}
}

// validate 校验载荷，任何失败都发生在变更之前
func (r *PropertyRequest) validate() error {
	if strings.TrimSpace(r.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrValidation)
	}
	if !models.ValidPropertyType(models.PropertyType(r.Type)) {
		return fmt.Errorf("%w: invalid property type %q", ErrValidation, r.Type)
	}
	if r.RentAmount < 0 {
		return fmt.Errorf("%w: rentAmount must not be negative", ErrValidation)
	}
	if r.Bedrooms < 0 || r.Bathrooms < 0 || r.SquareFeet < 0 {
		return fmt.Errorf("%w: room counts must not be negative", ErrValidation)
	}
	if r.Status != "" {
		switch models.PropertyStatus(r.Status) {
		case models.PropertyStatusAvailable, models.PropertyStatusOccupied, models.PropertyStatusMaintenance:
		default:
			return fmt.Errorf("%w: invalid property status %q", ErrValidation, r.Status)
		}
	}
	return nil
}

// 1. GetAllProperties 获取房源列表，支持分页
func (s *PropertyService) GetAllProperties(page, pageSize int) ([]models.Property, int, error) {
	properties, err := s.Store.GetProperties()
	if err != nil {
		return nil, 0, err
	}

	total := len(properties)
	start := (page - 1) * pageSize
	if start >= total {
		return []models.Property{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return properties[start:end], total, nil
}

// 2. GetPropertyByID 根据ID获取房源
func (s *PropertyService) GetPropertyByID(id string) (*models.Property, error) {
	properties, err := s.Store.GetProperties()
	if err != nil {
		return nil, err
	}
	property := findProperty(properties, id)
	if property == nil {
		return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, id)
	}
	result := *property
	return &result, nil
}

// 3. CreateProperty 创建新房源
func (s *PropertyService) CreateProperty(req *PropertyRequest) (*models.Property, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	// 新建房源不允许直接声明occupied，占用状态只能由租户绑定产生
	if req.Status == string(models.PropertyStatusOccupied) {
		return nil, fmt.Errorf("%w: occupancy is derived from tenant assignment", ErrValidation)
	}

	properties, err := s.Store.GetProperties()
	if err != nil {
		return nil, err
	}

	now := s.Store.Clock().Now()
	property := models.Property{
		ID:          s.Store.NextID(),
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Type:        models.PropertyType(req.Type),
		RentAmount:  req.RentAmount,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		SquareFeet:  req.SquareFeet,
		Status:      models.PropertyStatusAvailable,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Status != "" {
		property.Status = models.PropertyStatus(req.Status)
	}
	property.Normalize()

	properties = append(properties, property)
	if err := s.Store.SaveProperties(properties); err != nil {
		return nil, err
	}
	return &property, nil
}

// 4. UpdateProperty 更新房源信息，占用绑定字段不在此处变更
func (s *PropertyService) UpdateProperty(id string, req *PropertyRequest) (*models.Property, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	properties, err := s.Store.GetProperties()
	if err != nil {
		return nil, err
	}
	property := findProperty(properties, id)
	if property == nil {
		return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, id)
	}

	// 已租房源不能经由编辑表单改回可租，必须走租户解绑
	if property.Occupied() && req.Status != "" && req.Status != string(models.PropertyStatusOccupied) {
		return nil, fmt.Errorf("%w: release the tenant before changing status", ErrValidation)
	}
	// 反向同样成立：未绑定租户的房源不能直接声明occupied
	if !property.Occupied() && req.Status == string(models.PropertyStatusOccupied) {
		return nil, fmt.Errorf("%w: occupancy is derived from tenant assignment", ErrValidation)
	}

	property.Address = req.Address
	property.City = req.City
	property.State = req.State
	property.ZipCode = req.ZipCode
	property.Type = models.PropertyType(req.Type)
	property.RentAmount = req.RentAmount
	property.Bedrooms = req.Bedrooms
	property.Bathrooms = req.Bathrooms
	property.SquareFeet = req.SquareFeet
	property.Description = req.Description
	if req.Status != "" && !property.Occupied() {
		property.Status = models.PropertyStatus(req.Status)
	}
	property.UpdatedAt = s.Store.Clock().Now()
	property.Normalize()

	if err := s.Store.SaveProperties(properties); err != nil {
		return nil, err
	}
	result := *property
	return &result, nil
}

// 5. DeleteProperty 删除房源。仍绑定在租租户时拒绝删除，
// 避免留下悬空的propertyId引用。
func (s *PropertyService) DeleteProperty(id string) error {
	properties, err := s.Store.GetProperties()
	if err != nil {
		return err
	}
	property := findProperty(properties, id)
	if property == nil {
		return fmt.Errorf("%w: %s", ErrPropertyNotFound, id)
	}

	tenants, err := s.Store.GetTenants()
	if err != nil {
		return err
	}
	for i := range tenants {
		if tenants[i].IsActive && tenants[i].PropertyID == id {
			return fmt.Errorf("%w: property has an active tenant, remove the tenant first", ErrValidation)
		}
	}

	remaining := make([]models.Property, 0, len(properties)-1)
	for i := range properties {
		if properties[i].ID != id {
			remaining = append(remaining, properties[i])
		}
	}
	return s.Store.SaveProperties(remaining)
}

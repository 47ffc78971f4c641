package container

import (
	"sync"

	"github.com/DerrickJaguar/rent/internal/domain/services"
	"github.com/DerrickJaguar/rent/internal/infrastructure/config"
	"github.com/DerrickJaguar/rent/internal/infrastructure/storage"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	store  *storage.Store
	config *config.Config

	// 基础服务
	authService services.InterfaceAuthService

	// 业务服务
	propertyService     services.InterfacePropertyService
	tenantService       services.InterfaceTenantService
	paymentService      services.InterfacePaymentService
	notificationService services.InterfaceNotificationService
	statsService        services.InterfaceStatsService
	occupancyService    services.InterfaceOccupancyService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(store *storage.Store, cfg *config.Config) *ServiceContainer {
	if store == nil {
		panic("实体存储为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		store:  store,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化认证服务，凭证校验基于存储中的账户
	verifier := services.NewStoreCredentialVerifier(c.store)
	c.authService = services.NewAuthService(c.config, verifier, c.store.Clock().Now)

	// 初始化业务服务
	c.occupancyService = services.NewOccupancyService(c.store, c.config)
	c.propertyService = services.NewPropertyService(c.store, c.config)
	c.tenantService = services.NewTenantService(c.store, c.config)
	c.paymentService = services.NewPaymentService(c.store, c.config)
	c.notificationService = services.NewNotificationService(c.store, c.config)
	c.statsService = services.NewStatsService(c.store, c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "store":
		return c.store
	case "auth":
		return c.authService
	case "property":
		return c.propertyService
	case "tenant":
		return c.tenantService
	case "payment":
		return c.paymentService
	case "notification":
		return c.notificationService
	case "stats":
		return c.statsService
	case "occupancy":
		return c.occupancyService
	default:
		return nil
	}
}

// GetStore 获取实体存储
func (c *ServiceContainer) GetStore() *storage.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

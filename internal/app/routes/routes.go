package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DerrickJaguar/rent/internal/app/controllers"
	"github.com/DerrickJaguar/rent/internal/app/middleware"
	"github.com/DerrickJaguar/rent/internal/domain/services"
	"github.com/DerrickJaguar/rent/internal/domain/services/container"
	"github.com/DerrickJaguar/rent/internal/infrastructure/config"
	"github.com/DerrickJaguar/rent/internal/infrastructure/storage"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(store *storage.Store, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(store, cfg)
	// 初始化中间件
	middleware.InitAuthMiddleware(serviceContainer.GetService("auth").(services.InterfaceAuthService))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许10个请求，最多突发20个请求
	api.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	health := controllers.NewHealthCheckController()
	api.GET("/ping", health.Ping)
	api.GET("/health", health.Ping) // 添加兼容Docker健康检查的路由

	// 认证路由，登录单独收紧限流防止暴力破解
	api.POST("/auth/login", middleware.CombinedRateLimiter(2, 5), controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateUser())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 写操作成功后清除统计缓存
	auth.Use(middleware.PurgeCacheOnWrite())

	// 房源路由
	propertyGroup := auth.Group("/properties")
	propertyGroup.GET("", controllers.HandlePropertyFunc(container, "getProperties"))
	propertyGroup.GET("/:id", controllers.HandlePropertyFunc(container, "getProperty"))
	propertyGroup.POST("", controllers.HandlePropertyFunc(container, "createProperty"))
	propertyGroup.PUT("/:id", controllers.HandlePropertyFunc(container, "updateProperty"))
	// 删除属于破坏性操作，只允许房东本人
	propertyGroup.DELETE("/:id", middleware.AuthenticateLandlord(), controllers.HandlePropertyFunc(container, "deleteProperty"))
	propertyGroup.PUT("/:id/assign", controllers.HandleOccupancyFunc(container, "assignTenant"))
	propertyGroup.PUT("/:id/release", controllers.HandleOccupancyFunc(container, "releaseTenant"))

	// 租户路由
	tenantGroup := auth.Group("/tenants")
	tenantGroup.GET("", controllers.HandleTenantFunc(container, "getTenants"))
	tenantGroup.GET("/:id", controllers.HandleTenantFunc(container, "getTenant"))
	tenantGroup.POST("", controllers.HandleTenantFunc(container, "createTenant"))
	tenantGroup.PUT("/:id", controllers.HandleTenantFunc(container, "updateTenant"))
	tenantGroup.DELETE("/:id", middleware.AuthenticateLandlord(), controllers.HandleTenantFunc(container, "deleteTenant"))
	tenantGroup.PUT("/:id/transfer", controllers.HandleOccupancyFunc(container, "transferTenant"))

	// 支付路由
	paymentGroup := auth.Group("/payments")
	paymentGroup.GET("", controllers.HandlePaymentFunc(container, "getPayments"))
	paymentGroup.GET("/rollup", controllers.HandlePaymentFunc(container, "getStatusRollup"))
	paymentGroup.GET("/:id", controllers.HandlePaymentFunc(container, "getPayment"))
	paymentGroup.POST("", controllers.HandlePaymentFunc(container, "recordPayment"))
	paymentGroup.PUT("/:id/status", controllers.HandlePaymentFunc(container, "updatePaymentStatus"))

	// 通知路由
	notificationGroup := auth.Group("/notifications")
	notificationGroup.GET("", controllers.HandleNotificationFunc(container, "getNotifications"))
	notificationGroup.GET("/unread-counts", controllers.HandleNotificationFunc(container, "getUnreadCounts"))
	notificationGroup.POST("", controllers.HandleNotificationFunc(container, "createNotification"))
	notificationGroup.PUT("/read-all", controllers.HandleNotificationFunc(container, "markAllNotificationsRead"))
	notificationGroup.PUT("/:id/read", controllers.HandleNotificationFunc(container, "markNotificationRead"))
	notificationGroup.DELETE("/:id", controllers.HandleNotificationFunc(container, "deleteNotification"))

	// 统计与报表路由，只读接口加短时缓存
	statsGroup := auth.Group("/stats")
	statsGroup.GET("/dashboard", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleStatsFunc(container, "getDashboardStats"))
	statsGroup.GET("/due-dates", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleStatsFunc(container, "getUpcomingDueDates"))
	statsGroup.GET("/monthly-income", middleware.CacheByParams(30*time.Second, "months"), controllers.HandleStatsFunc(container, "getMonthlyIncome"))

	auth.GET("/reports", middleware.CacheByParams(30*time.Second, "months"), controllers.HandleStatsFunc(container, "getReport"))
}

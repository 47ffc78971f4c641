// @title           Rent Console API
// @version         1.0
// @description     A single-landlord property management console: properties, tenants, rent payments, notifications and reports
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/DerrickJaguar/rent/internal/app/routes"
	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/infrastructure/config"
	"github.com/DerrickJaguar/rent/internal/infrastructure/storage"
	"github.com/DerrickJaguar/rent/pkg/clock"
	Logger "github.com/DerrickJaguar/rent/pkg/logger"
)

func main() {
	// 设置最大处理器数量，提高并发性能
	runtime.GOMAXPROCS(runtime.NumCPU())

	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 按配置选择存储后端
	backend, err := newBackend(cfg)
	if err != nil {
		log.Fatalf("初始化存储后端失败: %v", err)
	}
	store := storage.NewStore(backend, clock.SystemClock{})

	// 确保系统中有房东账户
	ensureLandlordExists(store, cfg)

	// 初始化路由
	r := routes.SetupRouter(store, cfg)

	// 使用配置中的端口，而不是直接从环境变量获取
	port := cfg.ServerPort

	// 打印系统信息
	printSystemInfo(cfg)

	// 启动服务器 - 注意监听所有接口(0.0.0.0)而不是只监听localhost
	Logger.Info("服务器启动在: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// newBackend 根据配置创建存储后端
func newBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.StorageDriver {
	case "memory":
		return storage.NewMemoryBackend(), nil
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return storage.NewGormBackend(db)
	case "mysql":
		db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return storage.NewGormBackend(db)
	case "redis":
		return storage.NewRedisBackend(cfg.GetRedisAddr(), cfg.RedisDB), nil
	case "file", "":
		return storage.NewFileBackend(cfg.StoragePath)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}
}

// ensureLandlordExists 确保系统中有房东账户
func ensureLandlordExists(store *storage.Store, cfg *config.Config) {
	user, err := store.GetUser()
	if err != nil {
		log.Fatalf("读取房东账户失败: %v", err)
	}

	if user == nil {
		// 如果没有账户，创建默认房东
		user = &models.User{
			ID:        store.NextID(),
			Email:     cfg.LandlordEmail,
			Name:      cfg.LandlordName,
			Role:      models.UserRoleLandlord,
			IsActive:  true,
			CreatedAt: store.Clock().Now(),
		}
	}

	// 密码哈希缺失时（首次启动或旧数据）用默认密码补齐
	if user.PasswordHash == "" {
		if err := user.SetPassword(cfg.DefaultLandlordPassword); err != nil {
			log.Fatalf("生成密码哈希失败: %v", err)
		}
		if err := store.SaveUser(user); err != nil {
			log.Fatalf("创建默认房东账户失败: %v", err)
		}
		log.Println("已创建默认房东账户")
	}
}

// printSystemInfo 打印系统信息
func printSystemInfo(cfg *config.Config) {
	log.Printf("存储驱动: %s", cfg.StorageDriver)

	// 打印系统资源信息
	log.Printf("系统CPU核心数: %d", runtime.NumCPU())
	log.Printf("当前Go协程数: %d", runtime.NumGoroutine())

	// 打印内存信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("系统内存使用: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}

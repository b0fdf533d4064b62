package container

import (
	"context"
	"log"
	"sync"
	"time"

	"ink-supply-service/internal/domain/services"
	"ink-supply-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService services.InterfaceJWTService

	// 数据存储服务
	redisService services.InterfaceRedisService

	// 库存通知服务
	notificationService services.InterfaceNotificationService

	// 业务服务
	accountService    services.InterfaceAccountService
	supplyTypeService services.InterfaceSupplyTypeService
	stockService      services.InterfaceStockService
	assignmentService services.InterfaceAssignmentService
	inkRequestService services.InterfaceInkRequestService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config, c.db)

	// 初始化Redis服务
	c.redisService = services.NewRedisService(c.config)

	// 初始化MQTT库存通知服务
	if c.config.MQTTEnabled {
		c.notificationService = services.NewNotificationService(c.config)

		// 连接MQTT服务器
		if err := c.notificationService.Connect(); err != nil {
			log.Printf("MQTT服务连接失败: %v", err)
		}
	}

	// 初始化业务服务
	c.accountService = services.NewAccountService(c.db, c.config)
	c.supplyTypeService = services.NewSupplyTypeService(c.db, c.config)
	c.stockService = services.NewStockService(c.db, c.config, c.redisService, c.notificationService)
	c.assignmentService = services.NewAssignmentService(c.db, c.config)
	c.inkRequestService = services.NewInkRequestService(c.db, c.config, c.redisService, c.notificationService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "notification":
		return c.notificationService
	case "account":
		return c.accountService
	case "supply_type":
		return c.supplyTypeService
	case "stock":
		return c.stockService
	case "assignment":
		return c.assignmentService
	case "ink_request":
		return c.inkRequestService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

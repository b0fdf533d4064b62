package routes

import (
	_ "ink-supply-service/docs"
	"ink-supply-service/internal/app/controllers"
	"ink-supply-service/internal/app/middleware"
	"ink-supply-service/internal/domain/services/container"
	"ink-supply-service/internal/infrastructure/config"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
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
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

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
	// 注册普通用户路由
	registerUserRoutes(api, container)
	// 注册管理员路由
	registerAdminRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping")) // 兼容Docker健康检查的路由

	// 健康状态路由组
	healthGroup := api.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))
	healthGroup.GET("/cache-stats", controllers.HandleHealthFunc(container, "cacheStats"))

	// 认证路由
	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))

	// 账户注册路由
	api.POST("/accounts/register", controllers.HandleAccountFunc(container, "register"))
}

// registerUserRoutes 注册普通用户路由（管理员同样可以访问）
func registerUserRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	user := api.Group("/")
	user.Use(middleware.AuthenticateUser())

	// 个人信息
	user.GET("/profile", controllers.HandleAccountFunc(container, "getProfile"))

	// 我的配额分配
	user.GET("/assignments/mine", controllers.HandleAssignmentFunc(container, "getMyAssignments"))

	// 耗材申请
	user.POST("/requests", controllers.HandleInkRequestFunc(container, "submitRequest"))
	user.GET("/requests/mine", controllers.HandleInkRequestFunc(container, "getMyRequests"))
	user.GET("/requests/:id", controllers.HandleInkRequestFunc(container, "getRequest"))
}

// registerAdminRoutes 注册管理员路由
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateAdmin())

	// 账户路由
	accountGroup := admin.Group("/accounts")
	accountGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleAccountFunc(container, "getAccounts"))
	accountGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleAccountFunc(container, "getAccount"))

	// 耗材类型路由
	supplyTypeGroup := admin.Group("/supply-types")
	{
		supplyTypeGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleSupplyTypeFunc(container, "getSupplyTypes"))
		supplyTypeGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleSupplyTypeFunc(container, "getSupplyType"))
		supplyTypeGroup.POST("", controllers.HandleSupplyTypeFunc(container, "createSupplyType"))
		supplyTypeGroup.PUT("/:id", controllers.HandleSupplyTypeFunc(container, "updateSupplyType"))
		supplyTypeGroup.DELETE("/:id", controllers.HandleSupplyTypeFunc(container, "deleteSupplyType"))
	}

	// 库存路由
	stockGroup := admin.Group("/stock")
	stockGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 10 * time.Second}), controllers.HandleStockFunc(container, "getStockLevels"))
	stockGroup.GET("/low", controllers.HandleStockFunc(container, "getLowStockLevels"))
	stockGroup.GET("/:supply_type_id", controllers.HandleStockFunc(container, "getStockLevel"))
	stockGroup.PUT("/:supply_type_id", controllers.HandleStockFunc(container, "adjustStock"))

	// 配额分配路由
	assignmentGroup := admin.Group("/assignments")
	assignmentGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleAssignmentFunc(container, "getAssignments"))
	assignmentGroup.GET("/account/:account_id", controllers.HandleAssignmentFunc(container, "getAssignmentsByAccount"))
	assignmentGroup.POST("", controllers.HandleAssignmentFunc(container, "grantAssignment"))
	assignmentGroup.PUT("/:id", controllers.HandleAssignmentFunc(container, "updateAssignmentMax"))
	assignmentGroup.DELETE("/:id", controllers.HandleAssignmentFunc(container, "revokeAssignment"))

	// 申请审核路由
	requestGroup := admin.Group("/requests")
	requestGroup.GET("", controllers.HandleInkRequestFunc(container, "getRequests"))
	requestGroup.GET("/pending", controllers.HandleInkRequestFunc(container, "getPendingRequests"))
	requestGroup.POST("/:id/review", controllers.HandleInkRequestFunc(container, "reviewRequest"))
}

package services

import (
	"testing"

	"ink-supply-service/internal/domain/models"
	"ink-supply-service/internal/infrastructure/config"
	"ink-supply-service/pkg/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB 创建一个内存SQLite数据库并迁移所有模型
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// 内存数据库的每个连接各自独立，限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.SupplyType{},
		&models.StockLevel{},
		&models.Assignment{},
		&models.InkRequest{},
	))

	return db
}

// testConfig 返回测试用配置
func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret-key",
		DefaultAdminPassword: "admin123",
	}
}

// createTestAccount 创建一个测试账户，密码为 secret123
func createTestAccount(t *testing.T, db *gorm.DB, username string, role models.AccountRole) *models.Account {
	t.Helper()

	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	account := &models.Account{
		Username: username,
		Email:    username + "@example.com",
		Password: hashed,
		Role:     role,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

// createTestSupplyType 创建一个测试耗材类型及对应库存记录
func createTestSupplyType(t *testing.T, db *gorm.DB, name string, currentQuantity, minimumQuantity int) *models.SupplyType {
	t.Helper()

	supplyType := &models.SupplyType{
		Name: name,
		Unit: "盒",
	}
	require.NoError(t, db.Create(supplyType).Error)

	level := &models.StockLevel{
		SupplyTypeID:    supplyType.ID,
		CurrentQuantity: currentQuantity,
		MinimumQuantity: minimumQuantity,
	}
	require.NoError(t, db.Create(level).Error)

	return supplyType
}

// grantTestAssignment 为某账户授予某耗材类型的配额
func grantTestAssignment(t *testing.T, db *gorm.DB, accountID, supplyTypeID uint, maxQuantity int) *models.Assignment {
	t.Helper()

	assignment := &models.Assignment{
		AccountID:    accountID,
		SupplyTypeID: supplyTypeID,
		MaxQuantity:  maxQuantity,
	}
	require.NoError(t, db.Create(assignment).Error)
	return assignment
}

// stockQuantity 读取某耗材类型的当前库存数量
func stockQuantity(t *testing.T, db *gorm.DB, supplyTypeID uint) int {
	t.Helper()

	var level models.StockLevel
	require.NoError(t, db.Where("supply_type_id = ?", supplyTypeID).First(&level).Error)
	return level.CurrentQuantity
}

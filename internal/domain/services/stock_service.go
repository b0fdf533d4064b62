package services

import (
	"errors"
	"ink-supply-service/internal/domain/models"
	"ink-supply-service/internal/infrastructure/config"
	"ink-supply-service/pkg/logger"
	"time"

	"gorm.io/gorm"
)

// InterfaceStockService defines the stock service interface
type InterfaceStockService interface {
	GetAllStockLevels() ([]models.StockLevel, error)
	GetStockBySupplyType(supplyTypeID uint) (*models.StockLevel, error)
	AdjustStock(supplyTypeID uint, currentQuantity, minimumQuantity int) (*models.StockLevel, error)
	GetLowStockLevels() ([]models.StockLevel, error)
}

// 库存缓存过期时间
const stockCacheExpiration = 60 * time.Second

// StockService 提供库存相关的服务
type StockService struct {
	DB       *gorm.DB
	Config   *config.Config
	Redis    InterfaceRedisService        // 可为nil，nil时跳过缓存
	Notifier InterfaceNotificationService // 可为nil，nil时跳过MQTT告警
}

// NewStockService 创建一个新的库存服务
func NewStockService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService, notifier InterfaceNotificationService) InterfaceStockService {
	return &StockService{
		DB:       db,
		Config:   cfg,
		Redis:    redisService,
		Notifier: notifier,
	}
}

// 1 GetAllStockLevels 获取所有库存记录，带出耗材类型信息
func (s *StockService) GetAllStockLevels() ([]models.StockLevel, error) {
	var levels []models.StockLevel
	if err := s.DB.Preload("SupplyType").Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

// 2 GetStockBySupplyType 根据耗材类型ID获取库存记录，优先读缓存
func (s *StockService) GetStockBySupplyType(supplyTypeID uint) (*models.StockLevel, error) {
	// 尝试从缓存获取
	if s.Redis != nil {
		if cached, err := s.Redis.GetCachedStockLevel(supplyTypeID); err == nil {
			return cached, nil
		}
	}

	var level models.StockLevel
	if err := s.DB.Preload("SupplyType").Where("supply_type_id = ?", supplyTypeID).First(&level).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockNotFound
		}
		return nil, err
	}

	// 写入缓存，失败不影响主流程
	if s.Redis != nil {
		if err := s.Redis.CacheStockLevel(&level, stockCacheExpiration); err != nil {
			logger.Warning("缓存库存记录失败: %v", err)
		}
	}

	return &level, nil
}

// 3 AdjustStock 管理员手动调整库存数量和告警阈值
func (s *StockService) AdjustStock(supplyTypeID uint, currentQuantity, minimumQuantity int) (*models.StockLevel, error) {
	if currentQuantity < 0 || minimumQuantity < 0 {
		return nil, errors.New("库存数量和告警阈值不能为负数")
	}

	var level models.StockLevel
	if err := s.DB.Where("supply_type_id = ?", supplyTypeID).First(&level).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"current_quantity": currentQuantity,
		"minimum_quantity": minimumQuantity,
	}
	if err := s.DB.Model(&level).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 使缓存失效
	s.invalidateCache(supplyTypeID)

	// 重新获取调整后的库存记录
	if err := s.DB.Preload("SupplyType").Where("supply_type_id = ?", supplyTypeID).First(&level).Error; err != nil {
		return nil, err
	}

	// 调整后处于低位则发布告警
	s.alertIfLow(&level)

	return &level, nil
}

// 4 GetLowStockLevels 获取所有处于低位的库存记录
func (s *StockService) GetLowStockLevels() ([]models.StockLevel, error) {
	var levels []models.StockLevel
	if err := s.DB.Preload("SupplyType").
		Where("current_quantity <= minimum_quantity").
		Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

// invalidateCache 清除某耗材类型的库存缓存
func (s *StockService) invalidateCache(supplyTypeID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.InvalidateStockLevel(supplyTypeID); err != nil {
		logger.Warning("清除库存缓存失败: %v", err)
	}
	if err := s.Redis.InvalidateLowStockList(); err != nil {
		logger.Warning("清除低库存列表缓存失败: %v", err)
	}
}

// alertIfLow 库存处于低位时发布MQTT告警
func (s *StockService) alertIfLow(level *models.StockLevel) {
	if s.Notifier == nil || !level.IsLow() {
		return
	}

	name := ""
	if level.SupplyType != nil {
		name = level.SupplyType.Name
	}
	if err := s.Notifier.PublishLowStockAlert(level, name); err != nil {
		logger.Warning("发布低库存告警失败: %v", err)
	}
}

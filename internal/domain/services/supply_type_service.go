package services

import (
	"errors"
	"ink-supply-service/internal/domain/models"
	"ink-supply-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceSupplyTypeService defines the supply type service interface
type InterfaceSupplyTypeService interface {
	CreateSupplyType(name, description, unit string, initialQuantity, minimumQuantity int) (*models.SupplyType, error)
	GetAllSupplyTypes(page, pageSize int, search string) ([]models.SupplyType, int64, error)
	GetSupplyTypeByID(id uint) (*models.SupplyType, error)
	UpdateSupplyType(id uint, updates map[string]interface{}) (*models.SupplyType, error)
	DeleteSupplyType(id uint) error
}

// SupplyTypeService 提供耗材类型相关的服务
type SupplyTypeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSupplyTypeService 创建一个新的耗材类型服务
func NewSupplyTypeService(db *gorm.DB, cfg *config.Config) InterfaceSupplyTypeService {
	return &SupplyTypeService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CreateSupplyType 创建新耗材类型，同时在同一事务中创建对应的库存记录
func (s *SupplyTypeService) CreateSupplyType(name, description, unit string, initialQuantity, minimumQuantity int) (*models.SupplyType, error) {
	supplyType := &models.SupplyType{
		Name:        name,
		Description: description,
		Unit:        unit,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(supplyType).Error; err != nil {
			return err
		}

		// 每种耗材类型有且仅有一条库存记录
		stock := &models.StockLevel{
			SupplyTypeID:    supplyType.ID,
			CurrentQuantity: initialQuantity,
			MinimumQuantity: minimumQuantity,
		}
		return tx.Create(stock).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetSupplyTypeByID(supplyType.ID)
}

// 2 GetAllSupplyTypes 获取所有耗材类型，支持分页和搜索
func (s *SupplyTypeService) GetAllSupplyTypes(page, pageSize int, search string) ([]models.SupplyType, int64, error) {
	var supplyTypes []models.SupplyType
	var total int64

	query := s.DB.Model(&models.SupplyType{})

	// 如果有搜索关键词，添加搜索条件
	if search != "" {
		query = query.Where("name LIKE ? OR description LIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询，带出库存记录
	offset := (page - 1) * pageSize
	if err := query.Preload("StockLevel").Limit(pageSize).Offset(offset).Find(&supplyTypes).Error; err != nil {
		return nil, 0, err
	}

	return supplyTypes, total, nil
}

// 3 GetSupplyTypeByID 根据ID获取耗材类型
func (s *SupplyTypeService) GetSupplyTypeByID(id uint) (*models.SupplyType, error) {
	var supplyType models.SupplyType
	if err := s.DB.Preload("StockLevel").First(&supplyType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplyTypeNotFound
		}
		return nil, err
	}
	return &supplyType, nil
}

// 4 UpdateSupplyType 更新耗材类型信息
func (s *SupplyTypeService) UpdateSupplyType(id uint, updates map[string]interface{}) (*models.SupplyType, error) {
	supplyType, err := s.GetSupplyTypeByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(supplyType).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新获取更新后的耗材类型信息
	return s.GetSupplyTypeByID(id)
}

// 5 DeleteSupplyType 删除耗材类型，同时在同一事务中删除其库存记录
func (s *SupplyTypeService) DeleteSupplyType(id uint) error {
	if _, err := s.GetSupplyTypeByID(id); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("supply_type_id = ?", id).Delete(&models.StockLevel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SupplyType{}, id).Error
	})
}

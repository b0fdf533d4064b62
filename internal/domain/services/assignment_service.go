package services

import (
	"errors"
	"ink-supply-service/internal/domain/models"
	"ink-supply-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceAssignmentService defines the assignment service interface
type InterfaceAssignmentService interface {
	GrantAssignment(accountID, supplyTypeID uint, maxQuantity int) (*models.Assignment, error)
	GetAllAssignments() ([]models.Assignment, error)
	GetAssignmentsByAccount(accountID uint) ([]models.Assignment, error)
	RevokeAssignment(id uint) error
	UpdateAssignmentMax(id uint, maxQuantity int) (*models.Assignment, error)
}

// AssignmentService 提供申领配额分配相关的服务
type AssignmentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAssignmentService 创建一个新的配额分配服务
func NewAssignmentService(db *gorm.DB, cfg *config.Config) InterfaceAssignmentService {
	return &AssignmentService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GrantAssignment 授予某账户对某耗材类型的申领配额
func (s *AssignmentService) GrantAssignment(accountID, supplyTypeID uint, maxQuantity int) (*models.Assignment, error) {
	if maxQuantity <= 0 {
		return nil, errors.New("配额上限必须大于0")
	}

	// 验证账户存在
	var count int64
	if err := s.DB.Model(&models.Account{}).Where("id = ?", accountID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrAccountNotFound
	}

	// 验证耗材类型存在
	if err := s.DB.Model(&models.SupplyType{}).Where("id = ?", supplyTypeID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrSupplyTypeNotFound
	}

	// 验证该组合尚未分配过配额；复合唯一索引兜底并发下的重复创建
	if err := s.DB.Model(&models.Assignment{}).
		Where("account_id = ? AND supply_type_id = ?", accountID, supplyTypeID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAssignmentExists
	}

	assignment := &models.Assignment{
		AccountID:    accountID,
		SupplyTypeID: supplyTypeID,
		MaxQuantity:  maxQuantity,
	}

	if err := s.DB.Create(assignment).Error; err != nil {
		return nil, err
	}

	return s.getAssignmentByID(assignment.ID)
}

// 2 GetAllAssignments 获取所有配额分配，带出账户和耗材类型信息
func (s *AssignmentService) GetAllAssignments() ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := s.DB.Preload("Account").Preload("SupplyType").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// 3 GetAssignmentsByAccount 获取某账户的所有配额分配
func (s *AssignmentService) GetAssignmentsByAccount(accountID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := s.DB.Where("account_id = ?", accountID).
		Preload("Account").Preload("SupplyType").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// 4 RevokeAssignment 撤销配额分配
func (s *AssignmentService) RevokeAssignment(id uint) error {
	var count int64
	if err := s.DB.Model(&models.Assignment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrAssignmentNotFound
	}

	return s.DB.Delete(&models.Assignment{}, id).Error
}

// 5 UpdateAssignmentMax 更新配额上限
func (s *AssignmentService) UpdateAssignmentMax(id uint, maxQuantity int) (*models.Assignment, error) {
	if maxQuantity <= 0 {
		return nil, errors.New("配额上限必须大于0")
	}

	assignment, err := s.getAssignmentByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(assignment).Update("max_quantity", maxQuantity).Error; err != nil {
		return nil, err
	}

	return s.getAssignmentByID(id)
}

// getAssignmentByID 根据ID获取配额分配，带出关联信息
func (s *AssignmentService) getAssignmentByID(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := s.DB.Preload("Account").Preload("SupplyType").First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

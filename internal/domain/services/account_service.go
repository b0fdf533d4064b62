package services

import (
	"errors"
	"ink-supply-service/internal/domain/models"
	"ink-supply-service/internal/infrastructure/config"
	"ink-supply-service/pkg/utils"

	"gorm.io/gorm"
)

// InterfaceAccountService defines the account service interface
type InterfaceAccountService interface {
	Register(username, email, password string, role models.AccountRole) (*models.Account, error)
	GetAccountByID(id uint) (*models.Account, error)
	GetAccountByUsername(username string) (*models.Account, error)
	GetAllAccounts(page, pageSize int, search string) ([]models.Account, int64, error)
}

// AccountService 提供账户相关的服务
type AccountService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAccountService 创建一个新的账户服务
func NewAccountService(db *gorm.DB, cfg *config.Config) InterfaceAccountService {
	return &AccountService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Register 注册新账户
func (s *AccountService) Register(username, email, password string, role models.AccountRole) (*models.Account, error) {
	// 验证用户名唯一性
	var count int64
	if err := s.DB.Model(&models.Account{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAccountExists
	}

	// 验证邮箱唯一性
	if err := s.DB.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAccountExists
	}

	// 对密码进行哈希处理
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, errors.New("密码加密失败")
	}

	if role == "" {
		role = models.AccountRoleUser
	}

	account := &models.Account{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
	}

	if err := s.DB.Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

// 2 GetAccountByID 根据ID获取账户
func (s *AccountService) GetAccountByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.DB.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// 3 GetAccountByUsername 根据用户名获取账户
func (s *AccountService) GetAccountByUsername(username string) (*models.Account, error) {
	var account models.Account
	if err := s.DB.Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// 4 GetAllAccounts 获取所有账户，支持分页和搜索
func (s *AccountService) GetAllAccounts(page, pageSize int, search string) ([]models.Account, int64, error) {
	var accounts []models.Account
	var total int64

	query := s.DB.Model(&models.Account{})

	// 如果有搜索关键词，添加搜索条件
	if search != "" {
		query = query.Where("username LIKE ? OR email LIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&accounts).Error; err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

package services

import (
	"errors"
	"ink-supply-service/internal/domain/models"
	"ink-supply-service/internal/infrastructure/config"
	"ink-supply-service/pkg/logger"
	"time"

	"gorm.io/gorm"
)

// InterfaceInkRequestService 定义耗材申请工作流服务接口
type InterfaceInkRequestService interface {
	SubmitRequest(accountID, supplyTypeID uint, quantity int, reason string) (*models.InkRequest, error)
	GetAllRequests() ([]models.InkRequest, error)
	GetRequestsByAccount(accountID uint) ([]models.InkRequest, error)
	GetPendingRequests() ([]models.InkRequest, error)
	GetRequestByID(id uint) (*models.InkRequest, error)
	ReviewRequest(reviewerID, requestID uint, decision models.RequestStatus, approvedQuantity *int, adminNotes string) (*models.InkRequest, error)
}

// InkRequestService 提供耗材申请工作流服务
// 申请在 pending 状态创建，由管理员一次性审核为 approved 或 rejected；
// 批准时在同一事务内原子扣减库存
type InkRequestService struct {
	DB       *gorm.DB
	Config   *config.Config
	Redis    InterfaceRedisService        // 可为nil，nil时跳过缓存失效
	Notifier InterfaceNotificationService // 可为nil，nil时跳过MQTT通知
}

// NewInkRequestService 创建一个新的耗材申请服务
func NewInkRequestService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService, notifier InterfaceNotificationService) InterfaceInkRequestService {
	return &InkRequestService{
		DB:       db,
		Config:   cfg,
		Redis:    redisService,
		Notifier: notifier,
	}
}

// 1 SubmitRequest 提交耗材申请
// 账户必须持有该耗材类型的配额分配，且申请数量不得超过配额上限
func (s *InkRequestService) SubmitRequest(accountID, supplyTypeID uint, quantity int, reason string) (*models.InkRequest, error) {
	if quantity <= 0 {
		return nil, errors.New("申请数量必须大于0")
	}

	// 查找该账户对该耗材类型的配额分配
	var assignment models.Assignment
	if err := s.DB.Where("account_id = ? AND supply_type_id = ?", accountID, supplyTypeID).
		First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAssigned
		}
		return nil, err
	}

	// 配额检查
	if quantity > assignment.MaxQuantity {
		return nil, ErrQuotaExceeded
	}

	request := &models.InkRequest{
		AccountID:         accountID,
		SupplyTypeID:      supplyTypeID,
		RequestedQuantity: quantity,
		Status:            models.RequestStatusPending,
		Reason:            reason,
	}

	if err := s.DB.Create(request).Error; err != nil {
		return nil, err
	}

	return s.getRequestByID(request.ID)
}

// 2 GetAllRequests 获取所有申请，带出申请人、耗材类型和审核人信息
func (s *InkRequestService) GetAllRequests() ([]models.InkRequest, error) {
	var requests []models.InkRequest
	if err := s.DB.Preload("Account").Preload("SupplyType").Preload("Reviewer").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// 3 GetRequestsByAccount 获取某账户的所有申请
func (s *InkRequestService) GetRequestsByAccount(accountID uint) ([]models.InkRequest, error) {
	var requests []models.InkRequest
	if err := s.DB.Where("account_id = ?", accountID).
		Preload("Account").Preload("SupplyType").Preload("Reviewer").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// 4 GetPendingRequests 获取所有待审核的申请
// 待审核的申请没有审核人，不需要带出Reviewer
func (s *InkRequestService) GetPendingRequests() ([]models.InkRequest, error) {
	var requests []models.InkRequest
	if err := s.DB.Where("status = ?", models.RequestStatusPending).
		Preload("Account").Preload("SupplyType").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// 5 GetRequestByID 根据ID获取单条申请
// 申请不存在时返回 (nil, nil)，读操作对缺失不报错
func (s *InkRequestService) GetRequestByID(id uint) (*models.InkRequest, error) {
	request, err := s.getRequestByID(id)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return request, nil
}

// 6 ReviewRequest 审核申请（批准或驳回）
// 整个检查-扣减-状态转移序列在单个事务内完成：
//   - 状态转移带 status = 'pending' 条件，并发的第二个审核人会干净地失败
//   - 批准时的库存扣减带 current_quantity >= ? 条件，单条原子语句，
//     库存不足时事务回滚，申请保持 pending，库存不变
//
// approvedQuantity 为nil时默认按申请数量批准；显式传0是合法输入
func (s *InkRequestService) ReviewRequest(reviewerID, requestID uint, decision models.RequestStatus, approvedQuantity *int, adminNotes string) (*models.InkRequest, error) {
	if decision != models.RequestStatusApproved && decision != models.RequestStatusRejected {
		return nil, errors.New("无效的审核决定，必须是 approved 或 rejected")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 获取申请
		var request models.InkRequest
		if err := tx.First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		// 只有待审核的申请可以被审核
		if request.Status != models.RequestStatusPending {
			return ErrAlreadyReviewed
		}

		var approved *int
		if decision == models.RequestStatusApproved {
			// 确定实际批准数量：调用方未提供时默认为申请数量
			quantity := request.RequestedQuantity
			if approvedQuantity != nil {
				quantity = *approvedQuantity
			}
			if quantity < 0 {
				return errors.New("批准数量不能为负数")
			}

			// 库存记录必须存在
			var count int64
			if err := tx.Model(&models.StockLevel{}).
				Where("supply_type_id = ?", request.SupplyTypeID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrStockNotFound
			}

			// 原子条件扣减：仅当剩余库存足够时才执行
			result := tx.Model(&models.StockLevel{}).
				Where("supply_type_id = ? AND current_quantity >= ?", request.SupplyTypeID, quantity).
				Update("current_quantity", gorm.Expr("current_quantity - ?", quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrInsufficientStock
			}

			approved = &quantity
		}

		// 条件状态转移：只有仍处于 pending 的申请才能被本次审核占有
		now := time.Now()
		result := tx.Model(&models.InkRequest{}).
			Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
			Updates(map[string]interface{}{
				"status":            decision,
				"approved_quantity": approved,
				"admin_notes":       adminNotes,
				"reviewed_by":       reviewerID,
				"reviewed_at":       now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyReviewed
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	request, err := s.getRequestByID(requestID)
	if err != nil {
		return nil, err
	}

	s.afterReview(request)

	return request, nil
}

// getRequestByID 根据ID获取申请，带出关联信息
func (s *InkRequestService) getRequestByID(id uint) (*models.InkRequest, error) {
	var request models.InkRequest
	if err := s.DB.Preload("Account").Preload("SupplyType").Preload("Reviewer").
		First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// afterReview 审核提交后的收尾：缓存失效、MQTT通知、低库存告警
func (s *InkRequestService) afterReview(request *models.InkRequest) {
	if s.Redis != nil {
		if err := s.Redis.InvalidateStockLevel(request.SupplyTypeID); err != nil {
			logger.Warning("清除库存缓存失败: %v", err)
		}
		if err := s.Redis.InvalidateLowStockList(); err != nil {
			logger.Warning("清除低库存列表缓存失败: %v", err)
		}
	}

	if s.Notifier == nil {
		return
	}

	if err := s.Notifier.PublishRequestReviewed(request); err != nil {
		logger.Warning("发布申请审核通知失败: %v", err)
	}

	// 批准导致库存跌破阈值时发布低库存告警
	if request.Status == models.RequestStatusApproved {
		var level models.StockLevel
		if err := s.DB.Preload("SupplyType").
			Where("supply_type_id = ?", request.SupplyTypeID).
			First(&level).Error; err == nil && level.IsLow() {
			name := ""
			if level.SupplyType != nil {
				name = level.SupplyType.Name
			}
			if err := s.Notifier.PublishLowStockAlert(&level, name); err != nil {
				logger.Warning("发布低库存告警失败: %v", err)
			}
		}
	}
}

package controllers

import (
	"errors"

	"ink-supply-service/internal/error/code"
	"ink-supply-service/internal/domain/services"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"104000"`
	Message string      `json:"message" example:"配额分配不存在"`
	Data    interface{} `json:"data"`
}

// mapServiceError 将服务层哨兵错误映射为错误码
func mapServiceError(err error) int {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		return code.ErrAccountNotFound
	case errors.Is(err, services.ErrSupplyTypeNotFound):
		return code.ErrSupplyTypeNotFound
	case errors.Is(err, services.ErrAssignmentNotFound):
		return code.ErrAssignmentNotFound
	case errors.Is(err, services.ErrRequestNotFound):
		return code.ErrRequestNotFound
	case errors.Is(err, services.ErrStockNotFound):
		return code.ErrStockNotFound
	case errors.Is(err, services.ErrAccountExists):
		return code.ErrAccountAlreadyExist
	case errors.Is(err, services.ErrInvalidCredentials):
		return code.ErrPasswordIncorrect
	case errors.Is(err, services.ErrAssignmentExists):
		return code.ErrAssignmentExists
	case errors.Is(err, services.ErrNotAssigned):
		return code.ErrNotAssigned
	case errors.Is(err, services.ErrQuotaExceeded):
		return code.ErrQuotaExceeded
	case errors.Is(err, services.ErrAlreadyReviewed):
		return code.ErrAlreadyReviewed
	case errors.Is(err, services.ErrInsufficientStock):
		return code.ErrInsufficientStock
	default:
		return code.ErrDatabase
	}
}

// currentAccountID 从上下文中获取当前登录账户ID
// JWT中间件存入的claims值经JSON解析后是float64
func currentAccountID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("accountID")
	if !exists {
		return 0, false
	}
	switch id := v.(type) {
	case float64:
		return uint(id), true
	case uint:
		return id, true
	default:
		return 0, false
	}
}

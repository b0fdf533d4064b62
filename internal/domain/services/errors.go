package services

import "errors"

// 服务层哨兵错误
// 控制器通过 errors.Is 将其映射为 internal/error/code 中的错误码；
// 写操作对资源缺失返回硬错误，读操作对缺失返回空结果而不是错误
var (
	// 资源不存在
	ErrAccountNotFound    = errors.New("账户不存在")
	ErrSupplyTypeNotFound = errors.New("耗材类型不存在")
	ErrAssignmentNotFound = errors.New("配额分配不存在")
	ErrRequestNotFound    = errors.New("申请记录不存在")
	ErrStockNotFound      = errors.New("没有该耗材类型的库存信息")

	// 账户相关
	ErrAccountExists      = errors.New("用户名或邮箱已被使用")
	ErrInvalidCredentials = errors.New("用户名或密码错误")

	// 配额分配相关
	ErrAssignmentExists = errors.New("该账户已有此耗材类型的配额分配")

	// 申请工作流相关
	ErrNotAssigned       = errors.New("账户未被分配该耗材类型的申请配额")
	ErrQuotaExceeded     = errors.New("申请数量超出配额上限")
	ErrAlreadyReviewed   = errors.New("申请已被审核，不能重复审核")
	ErrInsufficientStock = errors.New("库存不足，无法批准该数量")
)

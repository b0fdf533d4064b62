package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:      "成功",
	ErrUnknown:      "未知错误",
	ErrBind:         "请求参数绑定错误",
	ErrValidation:   "请求参数验证错误",
	ErrTokenInvalid: "无效的认证令牌",

	// 账户相关错误码
	ErrAccountNotFound:     "账户不存在",
	ErrAccountAlreadyExist: "账户已存在",
	ErrPasswordIncorrect:   "用户密码错误",
	ErrPermissionDenied:    "没有权限执行该操作",

	// 耗材类型相关错误码
	ErrSupplyTypeNotFound: "耗材类型不存在",
	ErrSupplyTypeInvalid:  "耗材类型参数无效",

	// 库存相关错误码
	ErrStockNotFound:     "库存记录不存在",
	ErrInsufficientStock: "库存不足",

	// 配额分配相关错误码
	ErrAssignmentNotFound: "配额分配不存在",
	ErrAssignmentExists:   "该账户已有此耗材类型的配额分配",
	ErrAssignmentInvalid:  "配额参数无效",

	// 申请相关错误码
	ErrRequestNotFound: "申请记录不存在",
	ErrNotAssigned:     "账户未被分配该耗材类型的申请配额",
	ErrQuotaExceeded:   "申请数量超出配额上限",
	ErrAlreadyReviewed: "申请已被审核，不能重复审核",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:      StatusOK,
	ErrUnknown:      StatusInternalServerError,
	ErrBind:         StatusBadRequest,
	ErrValidation:   StatusBadRequest,
	ErrTokenInvalid: StatusUnauthorized,

	// 账户相关错误码
	ErrAccountNotFound:     StatusNotFound,
	ErrAccountAlreadyExist: StatusBadRequest,
	ErrPasswordIncorrect:   StatusUnauthorized,
	ErrPermissionDenied:    StatusForbidden,

	// 耗材类型相关错误码
	ErrSupplyTypeNotFound: StatusNotFound,
	ErrSupplyTypeInvalid:  StatusBadRequest,

	// 库存相关错误码
	ErrStockNotFound:     StatusNotFound,
	ErrInsufficientStock: StatusBadRequest,

	// 配额分配相关错误码
	ErrAssignmentNotFound: StatusNotFound,
	ErrAssignmentExists:   StatusBadRequest,
	ErrAssignmentInvalid:  StatusBadRequest,

	// 申请相关错误码
	ErrRequestNotFound: StatusNotFound,
	ErrNotAssigned:     StatusForbidden,
	ErrQuotaExceeded:   StatusBadRequest,
	ErrAlreadyReviewed: StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}

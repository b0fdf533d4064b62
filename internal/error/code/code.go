package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
)

// 账户相关错误码 (101xxx).
const (
	// ErrAccountNotFound - 404: 账户不存在.
	ErrAccountNotFound int = iota + 101000
	// ErrAccountAlreadyExist - 400: 账户已存在.
	ErrAccountAlreadyExist
	// ErrPasswordIncorrect - 401: 用户密码错误.
	ErrPasswordIncorrect
	// ErrPermissionDenied - 403: 没有权限执行该操作.
	ErrPermissionDenied
)

// 耗材类型相关错误码 (102xxx).
const (
	// ErrSupplyTypeNotFound - 404: 耗材类型不存在.
	ErrSupplyTypeNotFound int = iota + 102000
	// ErrSupplyTypeInvalid - 400: 耗材类型参数无效.
	ErrSupplyTypeInvalid
)

// 库存相关错误码 (103xxx).
const (
	// ErrStockNotFound - 404: 库存记录不存在.
	ErrStockNotFound int = iota + 103000
	// ErrInsufficientStock - 400: 库存不足.
	ErrInsufficientStock
)

// 配额分配相关错误码 (104xxx).
const (
	// ErrAssignmentNotFound - 404: 配额分配不存在.
	ErrAssignmentNotFound int = iota + 104000
	// ErrAssignmentExists - 400: 该账户已有此耗材类型的配额分配.
	ErrAssignmentExists
	// ErrAssignmentInvalid - 400: 配额参数无效.
	ErrAssignmentInvalid
)

// 申请相关错误码 (105xxx).
const (
	// ErrRequestNotFound - 404: 申请记录不存在.
	ErrRequestNotFound int = iota + 105000
	// ErrNotAssigned - 403: 账户未被分配该耗材类型的申请配额.
	ErrNotAssigned
	// ErrQuotaExceeded - 400: 申请数量超出配额上限.
	ErrQuotaExceeded
	// ErrAlreadyReviewed - 400: 申请已被审核.
	ErrAlreadyReviewed
)

// 数据库相关错误码 (106xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)

package controllers

import (
	"ink-supply-service/internal/domain/models"
	"ink-supply-service/internal/domain/services"
	"ink-supply-service/internal/domain/services/container"
	"ink-supply-service/internal/error/code"
	"ink-supply-service/internal/error/response"
	"strconv"

	"github.com/gin-gonic/gin"
)

// InterfaceInkRequestController 定义耗材申请控制器接口
type InterfaceInkRequestController interface {
	SubmitRequest()
	GetRequests()
	GetMyRequests()
	GetPendingRequests()
	GetRequest()
	ReviewRequest()
}

// InkRequestController 处理耗材申请相关的请求
type InkRequestController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewInkRequestController 创建一个新的耗材申请控制器
func NewInkRequestController(ctx *gin.Context, container *container.ServiceContainer) *InkRequestController {
	return &InkRequestController{
		Ctx:       ctx,
		Container: container,
	}
}

// SubmitRequestRequest 表示提交耗材申请的请求
type SubmitRequestRequest struct {
	SupplyTypeID      uint   `json:"supply_type_id" binding:"required" example:"1"`
	RequestedQuantity int    `json:"requested_quantity" binding:"required,gt=0" example:"2"`
	Reason            string `json:"reason" example:"打印机墨盒耗尽"`
}

// ReviewRequestRequest 表示审核耗材申请的请求
// approved_quantity 省略时默认按申请数量批准，显式传0是合法输入
type ReviewRequestRequest struct {
	Decision         string `json:"decision" binding:"required,oneof=approved rejected" example:"approved"`
	ApprovedQuantity *int   `json:"approved_quantity" example:"2"`
	AdminNotes       string `json:"admin_notes" example:"本月配额内批准"`
}

// HandleInkRequestFunc 返回一个处理耗材申请请求的Gin处理函数
func HandleInkRequestFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInkRequestController(ctx, container)

		switch method {
		case "submitRequest":
			controller.SubmitRequest()
		case "getRequests":
			controller.GetRequests()
		case "getMyRequests":
			controller.GetMyRequests()
		case "getPendingRequests":
			controller.GetPendingRequests()
		case "getRequest":
			controller.GetRequest()
		case "reviewRequest":
			controller.ReviewRequest()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// buildRequestResponse 构建耗材申请响应数据，带出申请人、耗材类型和审核人信息
func buildRequestResponse(request *models.InkRequest) gin.H {
	resp := gin.H{
		"id":                 request.ID,
		"account_id":         request.AccountID,
		"supply_type_id":     request.SupplyTypeID,
		"requested_quantity": request.RequestedQuantity,
		"status":             request.Status,
		"reason":             request.Reason,
		"admin_notes":        request.AdminNotes,
		"created_at":         request.CreatedAt,
	}

	if request.ApprovedQuantity != nil {
		resp["approved_quantity"] = *request.ApprovedQuantity
	}
	if request.ReviewedBy != nil {
		resp["reviewed_by"] = *request.ReviewedBy
	}
	if request.ReviewedAt != nil {
		resp["reviewed_at"] = *request.ReviewedAt
	}

	if request.Account != nil {
		resp["username"] = request.Account.Username
		resp["email"] = request.Account.Email
	}
	if request.SupplyType != nil {
		resp["supply_type_name"] = request.SupplyType.Name
		resp["unit"] = request.SupplyType.Unit
	}
	if request.Reviewer != nil {
		resp["reviewer_username"] = request.Reviewer.Username
	}

	return resp
}

// buildRequestListResponse 构建耗材申请列表响应
func buildRequestListResponse(requests []models.InkRequest) gin.H {
	requestResponses := make([]gin.H, 0, len(requests))
	for i := range requests {
		requestResponses = append(requestResponses, buildRequestResponse(&requests[i]))
	}

	return gin.H{
		"total": len(requests),
		"data":  requestResponses,
	}
}

// SubmitRequest 提交耗材申请
// @Summary      提交耗材申请
// @Description  当前登录账户对某耗材类型提交申请，必须持有配额且数量不超过上限
// @Tags         InkRequest
// @Accept       json
// @Produce      json
// @Param        request body SubmitRequestRequest true "申请参数"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /requests [post]
// @Security     BearerAuth
func (c *InkRequestController) SubmitRequest() {
	accountID, ok := currentAccountID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req SubmitRequestRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	requestService := c.Container.GetService("ink_request").(services.InterfaceInkRequestService)

	request, err := requestService.SubmitRequest(accountID, req.SupplyTypeID, req.RequestedQuantity, req.Reason)
	if err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildRequestResponse(request))
}

// GetRequests 获取所有耗材申请
// @Summary      获取申请列表
// @Description  获取所有耗材申请，仅管理员可用
// @Tags         InkRequest
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /requests [get]
// @Security     BearerAuth
func (c *InkRequestController) GetRequests() {
	requestService := c.Container.GetService("ink_request").(services.InterfaceInkRequestService)

	requests, err := requestService.GetAllRequests()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询申请列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildRequestListResponse(requests))
}

// GetMyRequests 获取当前登录账户的申请
// @Summary      获取我的申请
// @Description  获取当前登录账户提交的所有耗材申请
// @Tags         InkRequest
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /requests/mine [get]
// @Security     BearerAuth
func (c *InkRequestController) GetMyRequests() {
	accountID, ok := currentAccountID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	requestService := c.Container.GetService("ink_request").(services.InterfaceInkRequestService)

	requests, err := requestService.GetRequestsByAccount(accountID)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询申请列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildRequestListResponse(requests))
}

// GetPendingRequests 获取待审核的申请
// @Summary      获取待审核申请列表
// @Description  获取所有处于待审核状态的耗材申请，仅管理员可用
// @Tags         InkRequest
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /requests/pending [get]
// @Security     BearerAuth
func (c *InkRequestController) GetPendingRequests() {
	requestService := c.Container.GetService("ink_request").(services.InterfaceInkRequestService)

	requests, err := requestService.GetPendingRequests()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询待审核申请列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildRequestListResponse(requests))
}

// GetRequest 获取单条申请详情
// @Summary      获取申请详情
// @Description  根据ID获取单条耗材申请，申请不存在时data为null
// @Tags         InkRequest
// @Produce      json
// @Param        id path int true "申请ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /requests/{id} [get]
// @Security     BearerAuth
func (c *InkRequestController) GetRequest() {
	idStr := c.Ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	requestService := c.Container.GetService("ink_request").(services.InterfaceInkRequestService)

	request, err := requestService.GetRequestByID(uint(id))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询申请失败: "+err.Error(), nil)
		return
	}

	// 读操作对缺失不报错，申请不存在时返回空数据
	if request == nil {
		response.Success(c.Ctx, nil)
		return
	}

	response.Success(c.Ctx, buildRequestResponse(request))
}

// ReviewRequest 审核耗材申请
// @Summary      审核申请
// @Description  管理员批准或驳回待审核的申请，批准时原子扣减库存，仅管理员可用
// @Tags         InkRequest
// @Accept       json
// @Produce      json
// @Param        id path int true "申请ID" example:"1"
// @Param        request body ReviewRequestRequest true "审核参数"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /requests/{id}/review [post]
// @Security     BearerAuth
func (c *InkRequestController) ReviewRequest() {
	reviewerID, ok := currentAccountID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	idStr := c.Ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	var req ReviewRequestRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	requestService := c.Container.GetService("ink_request").(services.InterfaceInkRequestService)

	request, err := requestService.ReviewRequest(reviewerID, uint(id), models.RequestStatus(req.Decision), req.ApprovedQuantity, req.AdminNotes)
	if err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildRequestResponse(request))
}

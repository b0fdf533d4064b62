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

// InterfaceAssignmentController 定义配额分配控制器接口
type InterfaceAssignmentController interface {
	GrantAssignment()
	GetAssignments()
	GetAssignmentsByAccount()
	GetMyAssignments()
	UpdateAssignmentMax()
	RevokeAssignment()
}

// AssignmentController 处理配额分配相关的请求
type AssignmentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAssignmentController 创建一个新的配额分配控制器
func NewAssignmentController(ctx *gin.Context, container *container.ServiceContainer) *AssignmentController {
	return &AssignmentController{
		Ctx:       ctx,
		Container: container,
	}
}

// GrantAssignmentRequest 表示授予配额的请求
type GrantAssignmentRequest struct {
	AccountID    uint `json:"account_id" binding:"required" example:"2"`
	SupplyTypeID uint `json:"supply_type_id" binding:"required" example:"1"`
	MaxQuantity  int  `json:"max_quantity" binding:"required,gt=0" example:"10"`
}

// UpdateAssignmentMaxRequest 表示更新配额上限的请求
type UpdateAssignmentMaxRequest struct {
	MaxQuantity int `json:"max_quantity" binding:"required,gt=0" example:"20"`
}

// HandleAssignmentFunc 返回一个处理配额分配请求的Gin处理函数
func HandleAssignmentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAssignmentController(ctx, container)

		switch method {
		case "grantAssignment":
			controller.GrantAssignment()
		case "getAssignments":
			controller.GetAssignments()
		case "getAssignmentsByAccount":
			controller.GetAssignmentsByAccount()
		case "getMyAssignments":
			controller.GetMyAssignments()
		case "updateAssignmentMax":
			controller.UpdateAssignmentMax()
		case "revokeAssignment":
			controller.RevokeAssignment()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// buildAssignmentResponse 构建配额分配响应数据，带出账户和耗材类型展示字段
func buildAssignmentResponse(assignment *models.Assignment) gin.H {
	resp := gin.H{
		"id":             assignment.ID,
		"account_id":     assignment.AccountID,
		"supply_type_id": assignment.SupplyTypeID,
		"max_quantity":   assignment.MaxQuantity,
		"created_at":     assignment.CreatedAt,
	}

	if assignment.Account != nil {
		resp["username"] = assignment.Account.Username
	}
	if assignment.SupplyType != nil {
		resp["supply_type_name"] = assignment.SupplyType.Name
		resp["unit"] = assignment.SupplyType.Unit
	}

	return resp
}

// buildAssignmentListResponse 构建配额分配列表响应
func buildAssignmentListResponse(assignments []models.Assignment) gin.H {
	assignmentResponses := make([]gin.H, 0, len(assignments))
	for i := range assignments {
		assignmentResponses = append(assignmentResponses, buildAssignmentResponse(&assignments[i]))
	}

	return gin.H{
		"total": len(assignments),
		"data":  assignmentResponses,
	}
}

// GrantAssignment 授予配额分配
// @Summary      授予配额
// @Description  授予某账户对某耗材类型的申领配额，每个(账户,耗材类型)组合至多一条，仅管理员可用
// @Tags         Assignment
// @Accept       json
// @Produce      json
// @Param        request body GrantAssignmentRequest true "授予请求参数"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /assignments [post]
// @Security     BearerAuth
func (c *AssignmentController) GrantAssignment() {
	var req GrantAssignmentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	assignmentService := c.Container.GetService("assignment").(services.InterfaceAssignmentService)

	assignment, err := assignmentService.GrantAssignment(req.AccountID, req.SupplyTypeID, req.MaxQuantity)
	if err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildAssignmentResponse(assignment))
}

// GetAssignments 获取所有配额分配
// @Summary      获取配额分配列表
// @Description  获取所有配额分配，仅管理员可用
// @Tags         Assignment
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /assignments [get]
// @Security     BearerAuth
func (c *AssignmentController) GetAssignments() {
	assignmentService := c.Container.GetService("assignment").(services.InterfaceAssignmentService)

	assignments, err := assignmentService.GetAllAssignments()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询配额分配列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildAssignmentListResponse(assignments))
}

// GetAssignmentsByAccount 获取某账户的配额分配
// @Summary      获取指定账户的配额分配
// @Description  根据账户ID获取其所有配额分配，仅管理员可用
// @Tags         Assignment
// @Produce      json
// @Param        account_id path int true "账户ID" example:"2"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /assignments/account/{account_id} [get]
// @Security     BearerAuth
func (c *AssignmentController) GetAssignmentsByAccount() {
	idStr := c.Ctx.Param("account_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	assignmentService := c.Container.GetService("assignment").(services.InterfaceAssignmentService)

	assignments, err := assignmentService.GetAssignmentsByAccount(uint(id))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询配额分配列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildAssignmentListResponse(assignments))
}

// GetMyAssignments 获取当前登录账户的配额分配
// @Summary      获取我的配额分配
// @Description  获取当前登录账户的所有配额分配
// @Tags         Assignment
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /assignments/mine [get]
// @Security     BearerAuth
func (c *AssignmentController) GetMyAssignments() {
	accountID, ok := currentAccountID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	assignmentService := c.Container.GetService("assignment").(services.InterfaceAssignmentService)

	assignments, err := assignmentService.GetAssignmentsByAccount(accountID)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询配额分配列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildAssignmentListResponse(assignments))
}

// UpdateAssignmentMax 更新配额上限
// @Summary      更新配额上限
// @Description  更新某条配额分配的单次申请数量上限，仅管理员可用
// @Tags         Assignment
// @Accept       json
// @Produce      json
// @Param        id path int true "配额分配ID" example:"1"
// @Param        request body UpdateAssignmentMaxRequest true "更新请求参数"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /assignments/{id} [put]
// @Security     BearerAuth
func (c *AssignmentController) UpdateAssignmentMax() {
	idStr := c.Ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	var req UpdateAssignmentMaxRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	assignmentService := c.Container.GetService("assignment").(services.InterfaceAssignmentService)

	assignment, err := assignmentService.UpdateAssignmentMax(uint(id), req.MaxQuantity)
	if err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildAssignmentResponse(assignment))
}

// RevokeAssignment 撤销配额分配
// @Summary      撤销配额
// @Description  撤销某条配额分配，仅管理员可用
// @Tags         Assignment
// @Produce      json
// @Param        id path int true "配额分配ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /assignments/{id} [delete]
// @Security     BearerAuth
func (c *AssignmentController) RevokeAssignment() {
	idStr := c.Ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	assignmentService := c.Container.GetService("assignment").(services.InterfaceAssignmentService)

	if err := assignmentService.RevokeAssignment(uint(id)); err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"revoked": true})
}

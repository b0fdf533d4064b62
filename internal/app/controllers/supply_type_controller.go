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

// InterfaceSupplyTypeController 定义耗材类型控制器接口
type InterfaceSupplyTypeController interface {
	GetSupplyTypes()
	GetSupplyType()
	CreateSupplyType()
	UpdateSupplyType()
	DeleteSupplyType()
}

// SupplyTypeController 处理耗材类型相关的请求
type SupplyTypeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSupplyTypeController 创建一个新的耗材类型控制器
func NewSupplyTypeController(ctx *gin.Context, container *container.ServiceContainer) *SupplyTypeController {
	return &SupplyTypeController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateSupplyTypeRequest 表示创建耗材类型的请求
type CreateSupplyTypeRequest struct {
	Name            string `json:"name" binding:"required" example:"黑色墨盒 HP-803"`
	Description     string `json:"description" example:"适用于HP DeskJet系列"`
	Unit            string `json:"unit" binding:"required" example:"盒"`
	InitialQuantity int    `json:"initial_quantity" binding:"gte=0" example:"100"`
	MinimumQuantity int    `json:"minimum_quantity" binding:"gte=0" example:"10"`
}

// UpdateSupplyTypeRequest 表示更新耗材类型的请求
type UpdateSupplyTypeRequest struct {
	Name        string `json:"name" example:"黑色墨盒 HP-803"`
	Description string `json:"description" example:"适用于HP DeskJet系列"`
	Unit        string `json:"unit" example:"盒"`
}

// HandleSupplyTypeFunc 返回一个处理耗材类型请求的Gin处理函数
func HandleSupplyTypeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSupplyTypeController(ctx, container)

		switch method {
		case "getSupplyTypes":
			controller.GetSupplyTypes()
		case "getSupplyType":
			controller.GetSupplyType()
		case "createSupplyType":
			controller.CreateSupplyType()
		case "updateSupplyType":
			controller.UpdateSupplyType()
		case "deleteSupplyType":
			controller.DeleteSupplyType()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// buildSupplyTypeResponse 构建耗材类型响应数据，带出库存信息
func buildSupplyTypeResponse(supplyType *models.SupplyType) gin.H {
	resp := gin.H{
		"id":          supplyType.ID,
		"name":        supplyType.Name,
		"description": supplyType.Description,
		"unit":        supplyType.Unit,
		"created_at":  supplyType.CreatedAt,
		"updated_at":  supplyType.UpdatedAt,
	}

	if supplyType.StockLevel != nil {
		resp["current_quantity"] = supplyType.StockLevel.CurrentQuantity
		resp["minimum_quantity"] = supplyType.StockLevel.MinimumQuantity
	}

	return resp
}

// GetSupplyTypes 获取耗材类型列表
// @Summary      获取耗材类型列表
// @Description  获取所有耗材类型的列表，支持分页和搜索
// @Tags         SupplyType
// @Produce      json
// @Param        page query int false "页码，默认为1" example:"1"
// @Param        page_size query int false "每页条数，默认为10" example:"10"
// @Param        search query string false "搜索关键词(名称、描述)" example:"墨盒"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /supply-types [get]
// @Security     BearerAuth
func (c *SupplyTypeController) GetSupplyTypes() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	search := c.Ctx.Query("search")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	supplyTypeService := c.Container.GetService("supply_type").(services.InterfaceSupplyTypeService)

	supplyTypes, total, err := supplyTypeService.GetAllSupplyTypes(page, pageSize, search)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询耗材类型列表失败: "+err.Error(), nil)
		return
	}

	// 构建响应
	var typeResponses []gin.H
	for i := range supplyTypes {
		typeResponses = append(typeResponses, buildSupplyTypeResponse(&supplyTypes[i]))
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        typeResponses,
	})
}

// GetSupplyType 获取单个耗材类型详情
// @Summary      获取耗材类型详情
// @Description  根据ID获取特定耗材类型的详细信息
// @Tags         SupplyType
// @Produce      json
// @Param        id path int true "耗材类型ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /supply-types/{id} [get]
// @Security     BearerAuth
func (c *SupplyTypeController) GetSupplyType() {
	idStr := c.Ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	supplyTypeService := c.Container.GetService("supply_type").(services.InterfaceSupplyTypeService)

	supplyType, err := supplyTypeService.GetSupplyTypeByID(uint(id))
	if err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildSupplyTypeResponse(supplyType))
}

// CreateSupplyType 创建新耗材类型
// @Summary      创建耗材类型
// @Description  创建新的耗材类型，同时创建对应的库存记录，仅管理员可用
// @Tags         SupplyType
// @Accept       json
// @Produce      json
// @Param        request body CreateSupplyTypeRequest true "创建请求参数"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /supply-types [post]
// @Security     BearerAuth
func (c *SupplyTypeController) CreateSupplyType() {
	var req CreateSupplyTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	supplyTypeService := c.Container.GetService("supply_type").(services.InterfaceSupplyTypeService)

	supplyType, err := supplyTypeService.CreateSupplyType(req.Name, req.Description, req.Unit, req.InitialQuantity, req.MinimumQuantity)
	if err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildSupplyTypeResponse(supplyType))
}

// UpdateSupplyType 更新耗材类型信息
// @Summary      更新耗材类型
// @Description  更新耗材类型的名称、描述和计量单位，仅管理员可用
// @Tags         SupplyType
// @Accept       json
// @Produce      json
// @Param        id path int true "耗材类型ID" example:"1"
// @Param        request body UpdateSupplyTypeRequest true "更新请求参数"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /supply-types/{id} [put]
// @Security     BearerAuth
func (c *SupplyTypeController) UpdateSupplyType() {
	idStr := c.Ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	var req UpdateSupplyTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	// 只更新提供了的字段
	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Unit != "" {
		updates["unit"] = req.Unit
	}

	supplyTypeService := c.Container.GetService("supply_type").(services.InterfaceSupplyTypeService)

	supplyType, err := supplyTypeService.UpdateSupplyType(uint(id), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildSupplyTypeResponse(supplyType))
}

// DeleteSupplyType 删除耗材类型
// @Summary      删除耗材类型
// @Description  删除耗材类型及其库存记录，仅管理员可用
// @Tags         SupplyType
// @Produce      json
// @Param        id path int true "耗材类型ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /supply-types/{id} [delete]
// @Security     BearerAuth
func (c *SupplyTypeController) DeleteSupplyType() {
	idStr := c.Ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	supplyTypeService := c.Container.GetService("supply_type").(services.InterfaceSupplyTypeService)

	if err := supplyTypeService.DeleteSupplyType(uint(id)); err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": true})
}

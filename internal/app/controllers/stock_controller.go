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

// InterfaceStockController 定义库存控制器接口
type InterfaceStockController interface {
	GetStockLevels()
	GetStockLevel()
	AdjustStock()
	GetLowStockLevels()
}

// StockController 处理库存相关的请求
type StockController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStockController 创建一个新的库存控制器
func NewStockController(ctx *gin.Context, container *container.ServiceContainer) *StockController {
	return &StockController{
		Ctx:       ctx,
		Container: container,
	}
}

// AdjustStockRequest 表示库存调整请求
type AdjustStockRequest struct {
	CurrentQuantity int `json:"current_quantity" binding:"gte=0" example:"100"`
	MinimumQuantity int `json:"minimum_quantity" binding:"gte=0" example:"10"`
}

// HandleStockFunc 返回一个处理库存请求的Gin处理函数
func HandleStockFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStockController(ctx, container)

		switch method {
		case "getStockLevels":
			controller.GetStockLevels()
		case "getStockLevel":
			controller.GetStockLevel()
		case "adjustStock":
			controller.AdjustStock()
		case "getLowStockLevels":
			controller.GetLowStockLevels()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// buildStockResponse 构建库存响应数据，带出耗材类型信息
func buildStockResponse(level *models.StockLevel) gin.H {
	resp := gin.H{
		"id":               level.ID,
		"supply_type_id":   level.SupplyTypeID,
		"current_quantity": level.CurrentQuantity,
		"minimum_quantity": level.MinimumQuantity,
		"is_low":           level.IsLow(),
		"updated_at":       level.UpdatedAt,
	}

	if level.SupplyType != nil {
		resp["supply_type_name"] = level.SupplyType.Name
		resp["unit"] = level.SupplyType.Unit
	}

	return resp
}

// GetStockLevels 获取所有库存记录
// @Summary      获取库存列表
// @Description  获取所有耗材类型的库存记录
// @Tags         Stock
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /stock [get]
// @Security     BearerAuth
func (c *StockController) GetStockLevels() {
	stockService := c.Container.GetService("stock").(services.InterfaceStockService)

	levels, err := stockService.GetAllStockLevels()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询库存列表失败: "+err.Error(), nil)
		return
	}

	var stockResponses []gin.H
	for i := range levels {
		stockResponses = append(stockResponses, buildStockResponse(&levels[i]))
	}

	response.Success(c.Ctx, gin.H{
		"total": len(levels),
		"data":  stockResponses,
	})
}

// GetStockLevel 获取某耗材类型的库存记录
// @Summary      获取库存详情
// @Description  根据耗材类型ID获取库存记录
// @Tags         Stock
// @Produce      json
// @Param        supply_type_id path int true "耗材类型ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /stock/{supply_type_id} [get]
// @Security     BearerAuth
func (c *StockController) GetStockLevel() {
	idStr := c.Ctx.Param("supply_type_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	stockService := c.Container.GetService("stock").(services.InterfaceStockService)

	level, err := stockService.GetStockBySupplyType(uint(id))
	if err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildStockResponse(level))
}

// AdjustStock 手动调整库存
// @Summary      调整库存
// @Description  管理员手动调整库存数量和告警阈值
// @Tags         Stock
// @Accept       json
// @Produce      json
// @Param        supply_type_id path int true "耗材类型ID" example:"1"
// @Param        request body AdjustStockRequest true "调整请求参数"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /stock/{supply_type_id} [put]
// @Security     BearerAuth
func (c *StockController) AdjustStock() {
	idStr := c.Ctx.Param("supply_type_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	var req AdjustStockRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	stockService := c.Container.GetService("stock").(services.InterfaceStockService)

	level, err := stockService.AdjustStock(uint(id), req.CurrentQuantity, req.MinimumQuantity)
	if err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildStockResponse(level))
}

// GetLowStockLevels 获取低库存列表
// @Summary      获取低库存列表
// @Description  获取所有当前数量不高于告警阈值的库存记录
// @Tags         Stock
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /stock/low [get]
// @Security     BearerAuth
func (c *StockController) GetLowStockLevels() {
	stockService := c.Container.GetService("stock").(services.InterfaceStockService)

	levels, err := stockService.GetLowStockLevels()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询低库存列表失败: "+err.Error(), nil)
		return
	}

	var stockResponses []gin.H
	for i := range levels {
		stockResponses = append(stockResponses, buildStockResponse(&levels[i]))
	}

	response.Success(c.Ctx, gin.H{
		"total": len(levels),
		"data":  stockResponses,
	})
}

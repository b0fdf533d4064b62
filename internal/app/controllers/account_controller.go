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

// InterfaceAccountController 定义账户控制器接口
type InterfaceAccountController interface {
	Register()
	GetAccounts()
	GetAccount()
	GetProfile()
}

// AccountController 处理账户相关的请求
type AccountController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAccountController 创建一个新的账户控制器
func NewAccountController(ctx *gin.Context, container *container.ServiceContainer) *AccountController {
	return &AccountController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"zhangsan"`
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// HandleAccountFunc 返回一个处理账户请求的Gin处理函数
func HandleAccountFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAccountController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "getAccounts":
			controller.GetAccounts()
		case "getAccount":
			controller.GetAccount()
		case "getProfile":
			controller.GetProfile()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// buildAccountResponse 构建账户响应数据
func buildAccountResponse(account *models.Account) gin.H {
	return gin.H{
		"id":         account.ID,
		"username":   account.Username,
		"email":      account.Email,
		"role":       account.Role,
		"created_at": account.CreatedAt,
		"updated_at": account.UpdatedAt,
	}
}

// Register 注册新账户
// @Summary      注册账户
// @Description  注册一个新的普通用户账户，用户名和邮箱必须唯一
// @Tags         Account
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "注册请求参数"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /accounts/register [post]
func (c *AccountController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)

	account, err := accountService.Register(req.Username, req.Email, req.Password, models.AccountRoleUser)
	if err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildAccountResponse(account))
}

// GetAccounts 获取账户列表
// @Summary      获取账户列表
// @Description  获取所有账户的列表，支持分页和搜索，仅管理员可用
// @Tags         Account
// @Produce      json
// @Param        page query int false "页码，默认为1" example:"1"
// @Param        page_size query int false "每页条数，默认为10" example:"10"
// @Param        search query string false "搜索关键词(用户名、邮箱)" example:"zhangsan"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /accounts [get]
// @Security     BearerAuth
func (c *AccountController) GetAccounts() {
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

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)

	accounts, total, err := accountService.GetAllAccounts(page, pageSize, search)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询账户列表失败: "+err.Error(), nil)
		return
	}

	// 构建响应
	var accountResponses []gin.H
	for i := range accounts {
		accountResponses = append(accountResponses, buildAccountResponse(&accounts[i]))
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        accountResponses,
	})
}

// GetAccount 获取单个账户详情
// @Summary      获取账户详情
// @Description  根据ID获取特定账户的详细信息，仅管理员可用
// @Tags         Account
// @Produce      json
// @Param        id path int true "账户ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /accounts/{id} [get]
// @Security     BearerAuth
func (c *AccountController) GetAccount() {
	idStr := c.Ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的ID参数")
		return
	}

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)

	account, err := accountService.GetAccountByID(uint(id))
	if err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildAccountResponse(account))
}

// GetProfile 获取当前登录账户的信息
// @Summary      获取个人信息
// @Description  获取当前登录账户的详细信息
// @Tags         Account
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /profile [get]
// @Security     BearerAuth
func (c *AccountController) GetProfile() {
	accountID, ok := currentAccountID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)

	account, err := accountService.GetAccountByID(accountID)
	if err != nil {
		response.FailWithMessage(c.Ctx, mapServiceError(err), err.Error(), nil)
		return
	}

	response.Success(c.Ctx, buildAccountResponse(account))
}

package middleware

import (
	"ink-supply-service/internal/domain/services"
	"ink-supply-service/internal/infrastructure/config"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// abortUnauthorized 以401中断请求
func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"code":    401,
		"message": message,
		"data":    nil,
	})
	c.Abort()
}

// validateAndStoreClaims 验证token并把声明存入上下文，返回角色
func validateAndStoreClaims(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		abortUnauthorized(c, "Authorization header is required")
		return "", false
	}

	tokenString := extractToken(authHeader)
	token, err := jwtService.ValidateToken(tokenString)
	if err != nil {
		abortUnauthorized(c, "Invalid token: "+err.Error())
		return "", false
	}

	if !token.Valid {
		abortUnauthorized(c, "Invalid token")
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		abortUnauthorized(c, "Invalid token claims")
		return "", false
	}

	role, _ := claims["role"].(string)

	// 存储claims到上下文
	c.Set("accountID", claims["account_id"])
	c.Set("role", role)
	c.Set("claims", claims)
	return role, true
}

// AuthenticateAdmin 验证管理员权限
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := validateAndStoreClaims(c)
		if !ok {
			return
		}

		// 检查是否是管理员
		if role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires admin role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AuthenticateUser 验证普通用户权限（管理员也可以访问用户接口）
func AuthenticateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := validateAndStoreClaims(c)
		if !ok {
			return
		}

		if role != "user" && role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires valid user role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Authentication 通用的认证中间件，只要求持有有效令牌
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := validateAndStoreClaims(c); !ok {
			return
		}
		c.Next()
	}
}

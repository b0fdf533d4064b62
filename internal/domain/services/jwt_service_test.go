package services

import (
	"testing"

	"ink-supply-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	db := setupTestDB(t)
	service := NewJWTService(testConfig(), db)

	token, err := service.GenerateToken(42, models.AccountRoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "ink-supply-service", claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := setupTestDB(t)
	service := NewJWTService(testConfig(), db)

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	service := NewJWTService(testConfig(), db)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)

	result, err := service.Login("zhangsan", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, account.ID, result.AccountID)
	assert.Equal(t, "user", result.Role)
	assert.Equal(t, "zhangsan", result.Username)

	// 令牌中携带账户ID和角色
	claims, err := service.ExtractClaims(result.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, "user", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	service := NewJWTService(testConfig(), db)

	createTestAccount(t, db, "zhangsan", models.AccountRoleUser)

	_, err := service.Login("zhangsan", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownAccount(t *testing.T) {
	db := setupTestDB(t)
	service := NewJWTService(testConfig(), db)

	_, err := service.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

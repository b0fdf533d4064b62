package services

import (
	"testing"

	"ink-supply-service/internal/domain/models"
	"ink-supply-service/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	service := NewAccountService(db, testConfig())

	account, err := service.Register("zhangsan", "zhangsan@example.com", "secret123", models.AccountRoleUser)
	require.NoError(t, err)
	assert.NotZero(t, account.ID)
	assert.Equal(t, "zhangsan", account.Username)
	assert.Equal(t, models.AccountRoleUser, account.Role)

	// 密码必须以哈希形式存储
	assert.NotEqual(t, "secret123", account.Password)
	assert.True(t, utils.CheckPasswordHash("secret123", account.Password))
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	db := setupTestDB(t)
	service := NewAccountService(db, testConfig())

	account, err := service.Register("lisi", "lisi@example.com", "secret123", "")
	require.NoError(t, err)
	assert.Equal(t, models.AccountRoleUser, account.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	service := NewAccountService(db, testConfig())

	_, err := service.Register("zhangsan", "zhangsan@example.com", "secret123", models.AccountRoleUser)
	require.NoError(t, err)

	_, err = service.Register("zhangsan", "other@example.com", "secret123", models.AccountRoleUser)
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	service := NewAccountService(db, testConfig())

	_, err := service.Register("zhangsan", "zhangsan@example.com", "secret123", models.AccountRoleUser)
	require.NoError(t, err)

	_, err = service.Register("wangwu", "zhangsan@example.com", "secret123", models.AccountRoleUser)
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestGetAccountByID(t *testing.T) {
	db := setupTestDB(t)
	service := NewAccountService(db, testConfig())

	created := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)

	account, err := service.GetAccountByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, account.Username)

	_, err = service.GetAccountByID(9999)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestGetAccountByUsername(t *testing.T) {
	db := setupTestDB(t)
	service := NewAccountService(db, testConfig())

	createTestAccount(t, db, "zhangsan", models.AccountRoleUser)

	account, err := service.GetAccountByUsername("zhangsan")
	require.NoError(t, err)
	assert.Equal(t, "zhangsan", account.Username)

	_, err = service.GetAccountByUsername("nobody")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestGetAllAccounts(t *testing.T) {
	db := setupTestDB(t)
	service := NewAccountService(db, testConfig())

	createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	createTestAccount(t, db, "lisi", models.AccountRoleUser)
	createTestAccount(t, db, "admin", models.AccountRoleAdmin)

	accounts, total, err := service.GetAllAccounts(1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, accounts, 3)

	// 分页
	accounts, total, err = service.GetAllAccounts(2, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, accounts, 1)

	// 搜索
	accounts, total, err = service.GetAllAccounts(1, 10, "zhang")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, accounts, 1)
	assert.Equal(t, "zhangsan", accounts[0].Username)
}

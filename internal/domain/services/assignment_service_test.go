package services

import (
	"testing"

	"ink-supply-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantAssignment(t *testing.T) {
	db := setupTestDB(t)
	service := NewAssignmentService(db, testConfig())

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)

	assignment, err := service.GrantAssignment(account.ID, supplyType.ID, 5)
	require.NoError(t, err)
	assert.NotZero(t, assignment.ID)
	assert.Equal(t, 5, assignment.MaxQuantity)

	// 带出账户和耗材类型信息
	require.NotNil(t, assignment.Account)
	assert.Equal(t, "zhangsan", assignment.Account.Username)
	require.NotNil(t, assignment.SupplyType)
	assert.Equal(t, "黑色墨盒", assignment.SupplyType.Name)
}

func TestGrantAssignmentValidation(t *testing.T) {
	db := setupTestDB(t)
	service := NewAssignmentService(db, testConfig())

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)

	// 配额上限必须为正数
	_, err := service.GrantAssignment(account.ID, supplyType.ID, 0)
	assert.Error(t, err)

	// 账户必须存在
	_, err = service.GrantAssignment(9999, supplyType.ID, 5)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	// 耗材类型必须存在
	_, err = service.GrantAssignment(account.ID, 9999, 5)
	assert.ErrorIs(t, err, ErrSupplyTypeNotFound)
}

func TestGrantAssignmentDuplicate(t *testing.T) {
	db := setupTestDB(t)
	service := NewAssignmentService(db, testConfig())

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)

	_, err := service.GrantAssignment(account.ID, supplyType.ID, 5)
	require.NoError(t, err)

	// 同一(账户,耗材类型)组合不能重复授予
	_, err = service.GrantAssignment(account.ID, supplyType.ID, 10)
	assert.ErrorIs(t, err, ErrAssignmentExists)

	// 其他组合不受影响
	other := createTestSupplyType(t, db, "彩色墨盒", 50, 5)
	_, err = service.GrantAssignment(account.ID, other.ID, 3)
	assert.NoError(t, err)
}

func TestGetAssignmentsByAccount(t *testing.T) {
	db := setupTestDB(t)
	service := NewAssignmentService(db, testConfig())

	zhangsan := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	lisi := createTestAccount(t, db, "lisi", models.AccountRoleUser)
	black := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	color := createTestSupplyType(t, db, "彩色墨盒", 50, 5)

	grantTestAssignment(t, db, zhangsan.ID, black.ID, 5)
	grantTestAssignment(t, db, zhangsan.ID, color.ID, 3)
	grantTestAssignment(t, db, lisi.ID, black.ID, 2)

	assignments, err := service.GetAssignmentsByAccount(zhangsan.ID)
	require.NoError(t, err)
	assert.Len(t, assignments, 2)

	all, err := service.GetAllAssignments()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateAssignmentMax(t *testing.T) {
	db := setupTestDB(t)
	service := NewAssignmentService(db, testConfig())

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	assignment := grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	updated, err := service.UpdateAssignmentMax(assignment.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, updated.MaxQuantity)

	_, err = service.UpdateAssignmentMax(assignment.ID, 0)
	assert.Error(t, err)

	_, err = service.UpdateAssignmentMax(9999, 10)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestRevokeAssignment(t *testing.T) {
	db := setupTestDB(t)
	service := NewAssignmentService(db, testConfig())

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	assignment := grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	require.NoError(t, service.RevokeAssignment(assignment.ID))

	assignments, err := service.GetAssignmentsByAccount(account.ID)
	require.NoError(t, err)
	assert.Empty(t, assignments)

	assert.ErrorIs(t, service.RevokeAssignment(assignment.ID), ErrAssignmentNotFound)
}

func TestRevokeAssignmentAllowsRegrant(t *testing.T) {
	db := setupTestDB(t)
	service := NewAssignmentService(db, testConfig())

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)

	first, err := service.GrantAssignment(account.ID, supplyType.ID, 5)
	require.NoError(t, err)
	require.NoError(t, service.RevokeAssignment(first.ID))

	// 撤销后可以重新授予
	second, err := service.GrantAssignment(account.ID, supplyType.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, second.MaxQuantity)
}

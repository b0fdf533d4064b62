package services

import (
	"testing"

	"ink-supply-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRequest(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	request, err := service.SubmitRequest(account.ID, supplyType.ID, 3, "打印机墨盒耗尽")
	require.NoError(t, err)
	assert.NotZero(t, request.ID)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, 3, request.RequestedQuantity)
	assert.Equal(t, "打印机墨盒耗尽", request.Reason)

	// 审核前的字段均为空
	assert.Nil(t, request.ApprovedQuantity)
	assert.Nil(t, request.ReviewedBy)
	assert.Nil(t, request.ReviewedAt)

	// 提交申请不影响库存
	assert.Equal(t, 100, stockQuantity(t, db, supplyType.ID))
}

func TestSubmitRequestWithoutAssignment(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)

	// 未持有配额的账户不能提交申请
	_, err := service.SubmitRequest(account.ID, supplyType.ID, 1, "")
	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestSubmitRequestQuotaExceeded(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	_, err := service.SubmitRequest(account.ID, supplyType.ID, 6, "")
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	// 正好等于配额上限是允许的
	_, err = service.SubmitRequest(account.ID, supplyType.ID, 5, "")
	assert.NoError(t, err)
}

func TestSubmitRequestInvalidQuantity(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	_, err := service.SubmitRequest(account.ID, supplyType.ID, 0, "")
	assert.Error(t, err)

	_, err = service.SubmitRequest(account.ID, supplyType.ID, -1, "")
	assert.Error(t, err)
}

func TestReviewRequestApprove(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	admin := createTestAccount(t, db, "admin", models.AccountRoleAdmin)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	request, err := service.SubmitRequest(account.ID, supplyType.ID, 3, "")
	require.NoError(t, err)

	reviewed, err := service.ReviewRequest(admin.ID, request.ID, models.RequestStatusApproved, nil, "照常批准")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, reviewed.Status)
	assert.Equal(t, "照常批准", reviewed.AdminNotes)

	// 未指定批准数量时默认按申请数量批准
	require.NotNil(t, reviewed.ApprovedQuantity)
	assert.Equal(t, 3, *reviewed.ApprovedQuantity)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, admin.ID, *reviewed.ReviewedBy)
	assert.NotNil(t, reviewed.ReviewedAt)

	// 库存按批准数量扣减
	assert.Equal(t, 97, stockQuantity(t, db, supplyType.ID))
}

func TestReviewRequestApproveExplicitQuantity(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	admin := createTestAccount(t, db, "admin", models.AccountRoleAdmin)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	request, err := service.SubmitRequest(account.ID, supplyType.ID, 5, "")
	require.NoError(t, err)

	// 管理员可以批准少于申请数量
	two := 2
	reviewed, err := service.ReviewRequest(admin.ID, request.ID, models.RequestStatusApproved, &two, "")
	require.NoError(t, err)
	require.NotNil(t, reviewed.ApprovedQuantity)
	assert.Equal(t, 2, *reviewed.ApprovedQuantity)
	assert.Equal(t, 98, stockQuantity(t, db, supplyType.ID))
}

func TestReviewRequestApproveZeroQuantity(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	admin := createTestAccount(t, db, "admin", models.AccountRoleAdmin)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	request, err := service.SubmitRequest(account.ID, supplyType.ID, 3, "")
	require.NoError(t, err)

	// 显式批准0是合法的，不同于未指定批准数量
	zero := 0
	reviewed, err := service.ReviewRequest(admin.ID, request.ID, models.RequestStatusApproved, &zero, "")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ApprovedQuantity)
	assert.Equal(t, 0, *reviewed.ApprovedQuantity)

	// 批准0不扣减库存
	assert.Equal(t, 100, stockQuantity(t, db, supplyType.ID))
}

func TestReviewRequestReject(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	admin := createTestAccount(t, db, "admin", models.AccountRoleAdmin)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	request, err := service.SubmitRequest(account.ID, supplyType.ID, 3, "")
	require.NoError(t, err)

	reviewed, err := service.ReviewRequest(admin.ID, request.ID, models.RequestStatusRejected, nil, "库存优先保障设计部")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, reviewed.Status)
	assert.Equal(t, "库存优先保障设计部", reviewed.AdminNotes)
	assert.Nil(t, reviewed.ApprovedQuantity)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, admin.ID, *reviewed.ReviewedBy)

	// 驳回不触碰库存
	assert.Equal(t, 100, stockQuantity(t, db, supplyType.ID))
}

func TestReviewRequestAlreadyReviewed(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	admin := createTestAccount(t, db, "admin", models.AccountRoleAdmin)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	request, err := service.SubmitRequest(account.ID, supplyType.ID, 3, "")
	require.NoError(t, err)

	_, err = service.ReviewRequest(admin.ID, request.ID, models.RequestStatusApproved, nil, "")
	require.NoError(t, err)

	// 已审核的申请不能被再次审核
	_, err = service.ReviewRequest(admin.ID, request.ID, models.RequestStatusRejected, nil, "")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	// 第二次审核未造成额外扣减
	assert.Equal(t, 97, stockQuantity(t, db, supplyType.ID))
}

func TestReviewRequestInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	admin := createTestAccount(t, db, "admin", models.AccountRoleAdmin)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 2, 1)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	request, err := service.SubmitRequest(account.ID, supplyType.ID, 3, "")
	require.NoError(t, err)

	_, err = service.ReviewRequest(admin.ID, request.ID, models.RequestStatusApproved, nil, "")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// 事务回滚：库存不变，申请保持待审核可再次处理
	assert.Equal(t, 2, stockQuantity(t, db, supplyType.ID))
	pending, err := service.GetRequestByID(request.ID)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, models.RequestStatusPending, pending.Status)

	// 库存不足时仍可驳回，或按库存量批准
	two := 2
	reviewed, err := service.ReviewRequest(admin.ID, request.ID, models.RequestStatusApproved, &two, "按现有库存批准")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, reviewed.Status)
	assert.Equal(t, 0, stockQuantity(t, db, supplyType.ID))
}

func TestReviewRequestNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	admin := createTestAccount(t, db, "admin", models.AccountRoleAdmin)

	_, err := service.ReviewRequest(admin.ID, 9999, models.RequestStatusApproved, nil, "")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestReviewRequestInvalidDecision(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	admin := createTestAccount(t, db, "admin", models.AccountRoleAdmin)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	request, err := service.SubmitRequest(account.ID, supplyType.ID, 3, "")
	require.NoError(t, err)

	// 审核决定只能是 approved 或 rejected
	_, err = service.ReviewRequest(admin.ID, request.ID, models.RequestStatusPending, nil, "")
	assert.Error(t, err)

	_, err = service.ReviewRequest(admin.ID, request.ID, models.RequestStatus("cancelled"), nil, "")
	assert.Error(t, err)
}

func TestReviewRequestNegativeApprovedQuantity(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	admin := createTestAccount(t, db, "admin", models.AccountRoleAdmin)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	request, err := service.SubmitRequest(account.ID, supplyType.ID, 3, "")
	require.NoError(t, err)

	negative := -1
	_, err = service.ReviewRequest(admin.ID, request.ID, models.RequestStatusApproved, &negative, "")
	assert.Error(t, err)
	assert.Equal(t, 100, stockQuantity(t, db, supplyType.ID))
}

func TestGetRequestByID(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	created, err := service.SubmitRequest(account.ID, supplyType.ID, 3, "")
	require.NoError(t, err)

	request, err := service.GetRequestByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, created.ID, request.ID)
	require.NotNil(t, request.Account)
	assert.Equal(t, "zhangsan", request.Account.Username)
	require.NotNil(t, request.SupplyType)
	assert.Equal(t, "黑色墨盒", request.SupplyType.Name)

	// 申请不存在时返回空而非错误
	missing, err := service.GetRequestByID(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetPendingRequests(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	admin := createTestAccount(t, db, "admin", models.AccountRoleAdmin)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	first, err := service.SubmitRequest(account.ID, supplyType.ID, 1, "")
	require.NoError(t, err)
	_, err = service.SubmitRequest(account.ID, supplyType.ID, 2, "")
	require.NoError(t, err)

	_, err = service.ReviewRequest(admin.ID, first.ID, models.RequestStatusApproved, nil, "")
	require.NoError(t, err)

	pending, err := service.GetPendingRequests()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0].RequestedQuantity)

	all, err := service.GetAllRequests()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetRequestsByAccount(t *testing.T) {
	db := setupTestDB(t)
	service := NewInkRequestService(db, testConfig(), nil, nil)

	zhangsan := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	lisi := createTestAccount(t, db, "lisi", models.AccountRoleUser)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	grantTestAssignment(t, db, zhangsan.ID, supplyType.ID, 5)
	grantTestAssignment(t, db, lisi.ID, supplyType.ID, 5)

	_, err := service.SubmitRequest(zhangsan.ID, supplyType.ID, 1, "")
	require.NoError(t, err)
	_, err = service.SubmitRequest(zhangsan.ID, supplyType.ID, 2, "")
	require.NoError(t, err)
	_, err = service.SubmitRequest(lisi.ID, supplyType.ID, 3, "")
	require.NoError(t, err)

	requests, err := service.GetRequestsByAccount(zhangsan.ID)
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}

// 配额撤销后不能再提交新申请，但已有申请仍可被审核
func TestRequestLifecycleAfterRevoke(t *testing.T) {
	db := setupTestDB(t)
	requestService := NewInkRequestService(db, testConfig(), nil, nil)
	assignmentService := NewAssignmentService(db, testConfig())

	account := createTestAccount(t, db, "zhangsan", models.AccountRoleUser)
	admin := createTestAccount(t, db, "admin", models.AccountRoleAdmin)
	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	assignment := grantTestAssignment(t, db, account.ID, supplyType.ID, 5)

	request, err := requestService.SubmitRequest(account.ID, supplyType.ID, 3, "")
	require.NoError(t, err)

	require.NoError(t, assignmentService.RevokeAssignment(assignment.ID))

	_, err = requestService.SubmitRequest(account.ID, supplyType.ID, 1, "")
	assert.ErrorIs(t, err, ErrNotAssigned)

	reviewed, err := requestService.ReviewRequest(admin.ID, request.ID, models.RequestStatusApproved, nil, "")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, reviewed.Status)
	assert.Equal(t, 97, stockQuantity(t, db, supplyType.ID))
}

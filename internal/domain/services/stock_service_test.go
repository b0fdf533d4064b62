package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStockBySupplyType(t *testing.T) {
	db := setupTestDB(t)
	service := NewStockService(db, testConfig(), nil, nil)

	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)

	level, err := service.GetStockBySupplyType(supplyType.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, level.CurrentQuantity)
	assert.Equal(t, 10, level.MinimumQuantity)
	assert.False(t, level.IsLow())

	_, err = service.GetStockBySupplyType(9999)
	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestAdjustStock(t *testing.T) {
	db := setupTestDB(t)
	service := NewStockService(db, testConfig(), nil, nil)

	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)

	level, err := service.AdjustStock(supplyType.ID, 30, 20)
	require.NoError(t, err)
	assert.Equal(t, 30, level.CurrentQuantity)
	assert.Equal(t, 20, level.MinimumQuantity)

	// 负数被拒绝
	_, err = service.AdjustStock(supplyType.ID, -1, 0)
	assert.Error(t, err)

	_, err = service.AdjustStock(9999, 10, 5)
	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestAdjustStockToZero(t *testing.T) {
	db := setupTestDB(t)
	service := NewStockService(db, testConfig(), nil, nil)

	supplyType := createTestSupplyType(t, db, "黑色墨盒", 100, 10)

	// 调整为0是合法的
	level, err := service.AdjustStock(supplyType.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, level.CurrentQuantity)
	assert.True(t, level.IsLow())
}

func TestGetAllStockLevels(t *testing.T) {
	db := setupTestDB(t)
	service := NewStockService(db, testConfig(), nil, nil)

	createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	createTestSupplyType(t, db, "彩色墨盒", 50, 5)

	levels, err := service.GetAllStockLevels()
	require.NoError(t, err)
	assert.Len(t, levels, 2)

	// 带出耗材类型信息
	for _, level := range levels {
		assert.NotNil(t, level.SupplyType)
	}
}

func TestGetLowStockLevels(t *testing.T) {
	db := setupTestDB(t)
	service := NewStockService(db, testConfig(), nil, nil)

	createTestSupplyType(t, db, "充足的墨盒", 100, 10)
	low := createTestSupplyType(t, db, "告急的墨盒", 5, 10)
	boundary := createTestSupplyType(t, db, "刚好到阈值的墨盒", 10, 10)

	levels, err := service.GetLowStockLevels()
	require.NoError(t, err)
	require.Len(t, levels, 2)

	ids := []uint{levels[0].SupplyTypeID, levels[1].SupplyTypeID}
	assert.Contains(t, ids, low.ID)
	assert.Contains(t, ids, boundary.ID)
}

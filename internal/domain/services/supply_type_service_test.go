package services

import (
	"testing"

	"ink-supply-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSupplyType(t *testing.T) {
	db := setupTestDB(t)
	service := NewSupplyTypeService(db, testConfig())

	supplyType, err := service.CreateSupplyType("黑色墨盒 HP-803", "适用于HP DeskJet系列", "盒", 100, 10)
	require.NoError(t, err)
	assert.NotZero(t, supplyType.ID)
	assert.Equal(t, "黑色墨盒 HP-803", supplyType.Name)
	assert.Equal(t, "盒", supplyType.Unit)

	// 创建耗材类型时必须同时建立库存记录
	require.NotNil(t, supplyType.StockLevel)
	assert.Equal(t, 100, supplyType.StockLevel.CurrentQuantity)
	assert.Equal(t, 10, supplyType.StockLevel.MinimumQuantity)
}

func TestGetSupplyTypeByID(t *testing.T) {
	db := setupTestDB(t)
	service := NewSupplyTypeService(db, testConfig())

	created := createTestSupplyType(t, db, "彩色墨盒", 50, 5)

	supplyType, err := service.GetSupplyTypeByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "彩色墨盒", supplyType.Name)
	require.NotNil(t, supplyType.StockLevel)
	assert.Equal(t, 50, supplyType.StockLevel.CurrentQuantity)

	_, err = service.GetSupplyTypeByID(9999)
	assert.ErrorIs(t, err, ErrSupplyTypeNotFound)
}

func TestGetAllSupplyTypes(t *testing.T) {
	db := setupTestDB(t)
	service := NewSupplyTypeService(db, testConfig())

	createTestSupplyType(t, db, "黑色墨盒", 100, 10)
	createTestSupplyType(t, db, "彩色墨盒", 50, 5)
	createTestSupplyType(t, db, "打印纸", 500, 100)

	supplyTypes, total, err := service.GetAllSupplyTypes(1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, supplyTypes, 3)

	// 搜索
	supplyTypes, total, err = service.GetAllSupplyTypes(1, 10, "墨盒")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, supplyTypes, 2)
}

func TestUpdateSupplyType(t *testing.T) {
	db := setupTestDB(t)
	service := NewSupplyTypeService(db, testConfig())

	created := createTestSupplyType(t, db, "黑色墨盒", 100, 10)

	updated, err := service.UpdateSupplyType(created.ID, map[string]interface{}{
		"name": "黑色墨盒 HP-805",
		"unit": "支",
	})
	require.NoError(t, err)
	assert.Equal(t, "黑色墨盒 HP-805", updated.Name)
	assert.Equal(t, "支", updated.Unit)

	_, err = service.UpdateSupplyType(9999, map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, ErrSupplyTypeNotFound)
}

func TestDeleteSupplyType(t *testing.T) {
	db := setupTestDB(t)
	service := NewSupplyTypeService(db, testConfig())

	created := createTestSupplyType(t, db, "黑色墨盒", 100, 10)

	require.NoError(t, service.DeleteSupplyType(created.ID))

	_, err := service.GetSupplyTypeByID(created.ID)
	assert.ErrorIs(t, err, ErrSupplyTypeNotFound)

	// 库存记录随耗材类型一并删除
	var count int64
	require.NoError(t, db.Model(&models.StockLevel{}).Where("supply_type_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteSupplyTypeNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewSupplyTypeService(db, testConfig())

	err := service.DeleteSupplyType(9999)
	assert.ErrorIs(t, err, ErrSupplyTypeNotFound)
}

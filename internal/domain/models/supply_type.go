package models

// SupplyType 表示一种可申领的耗材类型（如某型号墨盒）
type SupplyType struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	Unit        string `gorm:"type:varchar(20);not null" json:"unit"` // 计量单位，如"盒"、"瓶"

	// Relations - 关联关系
	StockLevel *StockLevel `gorm:"foreignKey:SupplyTypeID" json:"stock_level,omitempty"` // 对应的库存记录（一对一）
}

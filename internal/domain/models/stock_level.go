package models

import "time"

// StockLevel 表示某耗材类型的库存水平，与耗材类型一一对应
type StockLevel struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	SupplyTypeID    uint      `gorm:"uniqueIndex;not null" json:"supply_type_id"` // 每种耗材类型只有一条库存记录
	CurrentQuantity int       `gorm:"not null;default:0" json:"current_quantity"`
	MinimumQuantity int       `gorm:"not null;default:0" json:"minimum_quantity"` // 低库存告警阈值
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations
	SupplyType *SupplyType `gorm:"foreignKey:SupplyTypeID" json:"supply_type,omitempty"`
}

// IsLow 判断当前库存是否处于低位
func (s *StockLevel) IsLow() bool {
	return s.CurrentQuantity <= s.MinimumQuantity
}

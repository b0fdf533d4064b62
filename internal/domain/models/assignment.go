package models

import "time"

// Assignment 表示管理员授予某账户对某耗材类型的申领配额
// (account_id, supply_type_id) 上的复合唯一索引保证每对组合至多一条分配记录
type Assignment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AccountID    uint      `gorm:"not null;uniqueIndex:idx_account_supply_type" json:"account_id"`
	SupplyTypeID uint      `gorm:"not null;uniqueIndex:idx_account_supply_type" json:"supply_type_id"`
	MaxQuantity  int       `gorm:"not null" json:"max_quantity"` // 单次申请允许的最大数量
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Account    *Account    `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	SupplyType *SupplyType `gorm:"foreignKey:SupplyTypeID" json:"supply_type,omitempty"`
}

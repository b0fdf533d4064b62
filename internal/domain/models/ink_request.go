package models

import "time"

// RequestStatus represents the lifecycle state of an ink request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// InkRequest 表示一条耗材申领申请
// 申请创建后处于 pending 状态，经管理员审核一次性转入 approved 或 rejected，
// 之后不再变更，也不会被删除
type InkRequest struct {
	BaseModel
	AccountID         uint          `gorm:"not null;index" json:"account_id"`
	SupplyTypeID      uint          `gorm:"not null;index" json:"supply_type_id"`
	RequestedQuantity int           `gorm:"not null" json:"requested_quantity"`
	ApprovedQuantity  *int          `json:"approved_quantity"` // 审核通过前为null；显式批准0是合法的
	Status            RequestStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Reason            string        `gorm:"type:varchar(255)" json:"reason"`      // 申请人填写的申请理由
	AdminNotes        string        `gorm:"type:varchar(255)" json:"admin_notes"` // 审核人备注
	ReviewedBy        *uint         `json:"reviewed_by"`                          // 审核人账户ID，未审核时为null
	ReviewedAt        *time.Time    `json:"reviewed_at"`

	// Relations
	Account    *Account    `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	SupplyType *SupplyType `gorm:"foreignKey:SupplyTypeID" json:"supply_type,omitempty"`
	Reviewer   *Account    `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
}

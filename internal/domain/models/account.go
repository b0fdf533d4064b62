package models

// AccountRole represents the role of an account
type AccountRole string

const (
	AccountRoleUser  AccountRole = "user"
	AccountRoleAdmin AccountRole = "admin"
)

// Account represents a system account (regular user or administrator)
type Account struct {
	BaseModel
	Username string      `gorm:"type:varchar(50);unique;not null" json:"username"`
	Email    string      `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password string      `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Role     AccountRole `gorm:"type:varchar(20);default:'user'" json:"role"`
}

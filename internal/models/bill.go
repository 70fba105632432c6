package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is an expense inside an account. A paid bill flagged as a transfer is
// mirrored by exactly one income in another account; LinkedIncomeID points at
// that row. The transfer flag itself is never stored, it arrives with each
// save and the link is re-derived from it.
type Bill struct {
	Base
	AccountID      string          `gorm:"type:uuid;not null;index" json:"account_id"`
	LinkedIncomeID *string         `gorm:"type:uuid" json:"linked_income_id,omitempty"`
	Name           string          `gorm:"not null" json:"name"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"amount"`
	DueDate        *time.Time      `gorm:"type:date" json:"due_date,omitempty"`
	Category       string          `gorm:"default:'general'" json:"category"`
	IsPaid         bool            `gorm:"default:false" json:"is_paid"`
	Owner          string          `gorm:"default:'Shared'" json:"owner"`

	LinkedIncome *Income `gorm:"foreignKey:LinkedIncomeID" json:"linked_income,omitempty"`
}

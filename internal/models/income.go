package models

import "github.com/shopspring/decimal"

// Income is money arriving into an account. It is either entered directly or
// created as the mirror of a paid transfer bill, in which case that bill's
// LinkedIncomeID points here.
type Income struct {
	Base
	AccountID   string          `gorm:"type:uuid;not null;index" json:"account_id"`
	Name        string          `gorm:"not null" json:"name"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"amount"`
	Contributor string          `gorm:"default:'Unknown'" json:"contributor"`
}

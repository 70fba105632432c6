package models

import "github.com/shopspring/decimal"

// Account is a named pot of bills and incomes inside a month. The layout
// fields persist the card's position and size on the month board.
type Account struct {
	Base
	MonthID string `gorm:"type:uuid;not null;index" json:"month_id"`
	Name    string `gorm:"not null" json:"name"`
	PosX    int    `gorm:"default:0" json:"pos_x"`
	PosY    int    `gorm:"default:0" json:"pos_y"`
	Width   int    `gorm:"default:300" json:"width"`
	Height  int    `gorm:"default:250" json:"height"`

	Bills   []Bill   `gorm:"foreignKey:AccountID" json:"bills,omitempty"`
	Incomes []Income `gorm:"foreignKey:AccountID" json:"incomes,omitempty"`

	// Computed from the loaded bills and incomes on read, never stored.
	TotalBills   decimal.Decimal `gorm:"-" json:"total_bills"`
	TotalIncomes decimal.Decimal `gorm:"-" json:"total_incomes"`
	Remainder    decimal.Decimal `gorm:"-" json:"remainder"`
}

// ComputeTotals fills the derived total fields from the bills and incomes
// currently loaded on the account. A zero-value amount contributes zero, so
// the totals never fail on a row with no usable amount.
func (a *Account) ComputeTotals() {
	totalBills := decimal.Zero
	for i := range a.Bills {
		totalBills = totalBills.Add(a.Bills[i].Amount)
	}
	totalIncomes := decimal.Zero
	for i := range a.Incomes {
		totalIncomes = totalIncomes.Add(a.Incomes[i].Amount)
	}
	a.TotalBills = totalBills
	a.TotalIncomes = totalIncomes
	a.Remainder = totalIncomes.Sub(totalBills)
}

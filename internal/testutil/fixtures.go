package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"hearth/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestMonth creates a month with a unique name.
func CreateTestMonth(t *testing.T, db *gorm.DB) *models.Month {
	t.Helper()

	month := &models.Month{
		Name: fmt.Sprintf("Test Month %d", nextID()),
	}
	if err := db.Create(month).Error; err != nil {
		t.Fatalf("failed to create test month: %v", err)
	}
	return month
}

// CreateTestAccount creates an account in the given month with a unique name.
func CreateTestAccount(t *testing.T, db *gorm.DB, monthID string) *models.Account {
	t.Helper()
	return CreateTestAccountWithName(t, db, monthID, fmt.Sprintf("Test Account %d", nextID()))
}

// CreateTestAccountWithName creates an account with the given name.
func CreateTestAccountWithName(t *testing.T, db *gorm.DB, monthID, name string) *models.Account {
	t.Helper()

	account := &models.Account{
		MonthID: monthID,
		Name:    name,
		Width:   300,
		Height:  250,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestBill creates an unpaid bill with the given amount.
func CreateTestBill(t *testing.T, db *gorm.DB, accountID string, amount decimal.Decimal) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		AccountID: accountID,
		Name:      fmt.Sprintf("Test Bill %d", nextID()),
		Amount:    amount,
		Category:  "general",
		Owner:     "Shared",
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}

// CreateTestIncome creates an income with the given amount.
func CreateTestIncome(t *testing.T, db *gorm.DB, accountID string, amount decimal.Decimal) *models.Income {
	t.Helper()

	income := &models.Income{
		AccountID:   accountID,
		Name:        fmt.Sprintf("Test Income %d", nextID()),
		Amount:      amount,
		Contributor: "Unknown",
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

package services

import (
	"time"

	"github.com/shopspring/decimal"

	"hearth/internal/models"
	"hearth/internal/pagination"
)

// BillInput carries the user-submitted fields for a bill save. Transfer and
// DestinationAccountID are the form-only transfer intent: they are consumed
// by reconciliation on every save and never persisted on the bill.
type BillInput struct {
	Name                 string
	Amount               decimal.Decimal
	DueDate              *time.Time
	Category             string
	Owner                string
	IsPaid               bool
	Transfer             bool
	DestinationAccountID string
}

// AccountLayout holds the position and size of an account card on the month board.
type AccountLayout struct {
	PosX   int
	PosY   int
	Width  int
	Height int
}

// MonthServicer defines the contract for month-related business logic.
type MonthServicer interface {
	CreateMonth(name string) (*models.Month, error)
	GetMonths(page pagination.PageRequest) (*pagination.PageResponse[models.Month], error)
	GetMonthByID(monthID string) (*models.Month, error)
	UpdateMonth(monthID string, name *string, archived *bool) (*models.Month, error)
	DeleteMonth(monthID string) error
	DuplicateMonth(monthID string) (*models.Month, error)
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(monthID, name string) (*models.Account, error)
	GetAccountByID(accountID string) (*models.Account, error)
	GetMonthAccounts(monthID string) ([]models.Account, error)
	UpdateAccount(accountID, name string) (*models.Account, error)
	UpdateAccountLayout(accountID string, layout AccountLayout) (*models.Account, error)
	DeleteAccount(accountID string) error
}

// BillServicer defines the contract for bill-related business logic,
// including transfer reconciliation on every save.
type BillServicer interface {
	CreateBill(accountID string, input BillInput) (*models.Bill, error)
	GetBillByID(billID string) (*models.Bill, error)
	UpdateBill(billID string, input BillInput) (*models.Bill, error)
	DeleteBill(billID string) error
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	CreateIncome(accountID, name string, amount decimal.Decimal, contributor string) (*models.Income, error)
	GetIncomeByID(incomeID string) (*models.Income, error)
	UpdateIncome(incomeID, name string, amount decimal.Decimal, contributor string) (*models.Income, error)
	DeleteIncome(incomeID string) error
}

package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hearth/internal/models"
	"hearth/internal/testutil"
	"hearth/internal/uuid"
)

func TestCreateAccount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		month := testutil.CreateTestMonth(t, db)

		account, err := svc.CreateAccount(month.ID, "Groceries")
		testutil.AssertNoError(t, err)

		if account.ID == "" {
			t.Fatal("expected non-empty account ID")
		}
		if account.MonthID != month.ID {
			t.Errorf("expected account in month %s, got %s", month.ID, account.MonthID)
		}
		if account.Width != 300 || account.Height != 250 {
			t.Errorf("expected default card size 300x250, got %dx%d", account.Width, account.Height)
		}
	})

	t.Run("month_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount(uuid.New(), "Orphan")
		testutil.AssertAppError(t, err, "MONTH_NOT_FOUND")
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		month := testutil.CreateTestMonth(t, db)

		_, err := svc.CreateAccount(month.ID, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetAccountByID(t *testing.T) {
	t.Run("computes_totals_and_remainder", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		month := testutil.CreateTestMonth(t, db)
		account := testutil.CreateTestAccount(t, db, month.ID)

		testutil.CreateTestBill(t, db, account.ID, decimal.NewFromFloat(400.00))
		testutil.CreateTestBill(t, db, account.ID, decimal.NewFromFloat(200.00))
		testutil.CreateTestIncome(t, db, account.ID, decimal.NewFromFloat(1000.00))

		got, err := svc.GetAccountByID(account.ID)
		testutil.AssertNoError(t, err)

		if !got.TotalBills.Equal(decimal.NewFromFloat(600.00)) {
			t.Errorf("expected total bills 600.00, got %s", got.TotalBills)
		}
		if !got.TotalIncomes.Equal(decimal.NewFromFloat(1000.00)) {
			t.Errorf("expected total incomes 1000.00, got %s", got.TotalIncomes)
		}
		if !got.Remainder.Equal(decimal.NewFromFloat(400.00)) {
			t.Errorf("expected remainder 400.00, got %s", got.Remainder)
		}
	})

	t.Run("zero_amount_rows_contribute_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		month := testutil.CreateTestMonth(t, db)
		account := testutil.CreateTestAccount(t, db, month.ID)

		testutil.CreateTestBill(t, db, account.ID, decimal.Zero)
		testutil.CreateTestBill(t, db, account.ID, decimal.NewFromFloat(50.00))
		testutil.CreateTestIncome(t, db, account.ID, decimal.Zero)

		got, err := svc.GetAccountByID(account.ID)
		testutil.AssertNoError(t, err)

		if !got.TotalBills.Equal(decimal.NewFromFloat(50.00)) {
			t.Errorf("expected total bills 50.00, got %s", got.TotalBills)
		}
		if !got.Remainder.Equal(decimal.NewFromFloat(-50.00)) {
			t.Errorf("expected remainder -50.00, got %s", got.Remainder)
		}
	})

	t.Run("empty_account_totals_are_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		month := testutil.CreateTestMonth(t, db)
		account := testutil.CreateTestAccount(t, db, month.ID)

		got, err := svc.GetAccountByID(account.ID)
		testutil.AssertNoError(t, err)

		if !got.TotalBills.IsZero() || !got.TotalIncomes.IsZero() || !got.Remainder.IsZero() {
			t.Errorf("expected zero totals, got %s/%s/%s", got.TotalBills, got.TotalIncomes, got.Remainder)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.GetAccountByID(uuid.New())
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestGetMonthAccounts(t *testing.T) {
	t.Run("returns_month_accounts_with_totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		month := testutil.CreateTestMonth(t, db)
		first := testutil.CreateTestAccount(t, db, month.ID)
		testutil.CreateTestAccount(t, db, month.ID)
		testutil.CreateTestBill(t, db, first.ID, decimal.NewFromFloat(30.00))

		accounts, err := svc.GetMonthAccounts(month.ID)
		testutil.AssertNoError(t, err)

		if len(accounts) != 2 {
			t.Fatalf("expected 2 accounts, got %d", len(accounts))
		}
		for i := range accounts {
			if accounts[i].ID != first.ID {
				continue
			}
			if !accounts[i].TotalBills.Equal(decimal.NewFromFloat(30.00)) {
				t.Errorf("expected total bills 30.00, got %s", accounts[i].TotalBills)
			}
		}
	})

	t.Run("month_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.GetMonthAccounts(uuid.New())
		testutil.AssertAppError(t, err, "MONTH_NOT_FOUND")
	})
}

func TestUpdateAccountLayout(t *testing.T) {
	t.Run("persists_position_and_size", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		month := testutil.CreateTestMonth(t, db)
		account := testutil.CreateTestAccount(t, db, month.ID)

		_, err := svc.UpdateAccountLayout(account.ID, AccountLayout{PosX: 10, PosY: 20, Width: 500, Height: 400})
		testutil.AssertNoError(t, err)

		var stored models.Account
		if err := db.First(&stored, "id = ?", account.ID).Error; err != nil {
			t.Fatalf("failed to reload account: %v", err)
		}
		if stored.PosX != 10 || stored.PosY != 20 || stored.Width != 500 || stored.Height != 400 {
			t.Errorf("expected layout 10/20/500/400, got %d/%d/%d/%d",
				stored.PosX, stored.PosY, stored.Width, stored.Height)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.UpdateAccountLayout(uuid.New(), AccountLayout{})
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("cascades_to_bills_and_incomes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		month := testutil.CreateTestMonth(t, db)
		account := testutil.CreateTestAccount(t, db, month.ID)
		bill := testutil.CreateTestBill(t, db, account.ID, decimal.NewFromFloat(25))
		income := testutil.CreateTestIncome(t, db, account.ID, decimal.NewFromFloat(75))

		testutil.AssertNoError(t, svc.DeleteAccount(account.ID))

		for _, check := range []struct {
			name string
			err  error
		}{
			{"account", db.First(&models.Account{}, "id = ?", account.ID).Error},
			{"bill", db.First(&models.Bill{}, "id = ?", bill.ID).Error},
			{"income", db.First(&models.Income{}, "id = ?", income.ID).Error},
		} {
			if !errors.Is(check.err, gorm.ErrRecordNotFound) {
				t.Errorf("expected %s to be deleted, got %v", check.name, check.err)
			}
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		err := svc.DeleteAccount(uuid.New())
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

package services

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hearth/internal/models"
	"hearth/internal/testutil"
	"hearth/internal/uuid"
)

func TestCreateMonth(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthService(db)

		month, err := svc.CreateMonth("March 2026")
		testutil.AssertNoError(t, err)

		if month.ID == "" {
			t.Fatal("expected non-empty month ID")
		}
		if month.Name != "March 2026" {
			t.Errorf("expected name March 2026, got %s", month.Name)
		}
		if month.Archived {
			t.Error("expected new month to be unarchived")
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthService(db)

		_, err := svc.CreateMonth("")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateMonth(t *testing.T) {
	t.Run("rename_and_archive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthService(db)
		month := testutil.CreateTestMonth(t, db)

		name := "Renamed"
		archived := true
		updated, err := svc.UpdateMonth(month.ID, &name, &archived)
		testutil.AssertNoError(t, err)

		if updated.Name != "Renamed" {
			t.Errorf("expected name Renamed, got %s", updated.Name)
		}
		if !updated.Archived {
			t.Error("expected month to be archived")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthService(db)

		name := "Nope"
		_, err := svc.UpdateMonth(uuid.New(), &name, nil)
		testutil.AssertAppError(t, err, "MONTH_NOT_FOUND")
	})
}

func TestDeleteMonth(t *testing.T) {
	t.Run("cascades_to_accounts_bills_and_incomes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthService(db)
		month := testutil.CreateTestMonth(t, db)
		account := testutil.CreateTestAccount(t, db, month.ID)
		bill := testutil.CreateTestBill(t, db, account.ID, decimal.NewFromFloat(50))
		income := testutil.CreateTestIncome(t, db, account.ID, decimal.NewFromFloat(75))

		testutil.AssertNoError(t, svc.DeleteMonth(month.ID))

		for _, check := range []struct {
			name string
			err  error
		}{
			{"month", db.First(&models.Month{}, "id = ?", month.ID).Error},
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
		svc := NewMonthService(db)

		err := svc.DeleteMonth(uuid.New())
		testutil.AssertAppError(t, err, "MONTH_NOT_FOUND")
	})
}

func TestDuplicateMonth(t *testing.T) {
	t.Run("copies_tree_with_fresh_rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		monthSvc := NewMonthService(db)
		billSvc := NewBillService(db)
		month := testutil.CreateTestMonth(t, db)
		source := testutil.CreateTestAccountWithName(t, db, month.ID, "Checking")
		dest := testutil.CreateTestAccountWithName(t, db, month.ID, "Savings")

		if err := db.Model(source).Updates(map[string]interface{}{
			"pos_x": 40, "pos_y": 60, "width": 420, "height": 280,
		}).Error; err != nil {
			t.Fatalf("failed to place account: %v", err)
		}

		dueDate := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
		input := BillInput{
			Name:    "Rent",
			Amount:  decimal.NewFromFloat(900),
			DueDate: &dueDate,
			Owner:   "Bob",
			IsPaid:  true,
		}
		if _, err := billSvc.CreateBill(source.ID, input); err != nil {
			t.Fatalf("failed to create bill: %v", err)
		}

		// A linked transfer bill, to prove links are not carried over.
		if _, err := billSvc.CreateBill(source.ID, paidTransfer("Top-up", 100, "Bob", dest.ID)); err != nil {
			t.Fatalf("failed to create transfer bill: %v", err)
		}
		testutil.CreateTestIncome(t, db, dest.ID, decimal.NewFromFloat(1000))

		copyMonth, err := monthSvc.DuplicateMonth(month.ID)
		testutil.AssertNoError(t, err)

		if copyMonth.ID == month.ID {
			t.Fatal("expected the copy to get a new id")
		}
		if copyMonth.Name != month.Name+" (Copy)" {
			t.Errorf("expected copy name %q, got %q", month.Name+" (Copy)", copyMonth.Name)
		}

		var copied models.Month
		if err := db.Preload("Accounts.Bills").Preload("Accounts.Incomes").
			First(&copied, "id = ?", copyMonth.ID).Error; err != nil {
			t.Fatalf("failed to load copy: %v", err)
		}
		if len(copied.Accounts) != 2 {
			t.Fatalf("expected 2 copied accounts, got %d", len(copied.Accounts))
		}

		var bills, incomes int
		for i := range copied.Accounts {
			acc := &copied.Accounts[i]
			bills += len(acc.Bills)
			incomes += len(acc.Incomes)
			if acc.Name == "Checking" {
				if acc.PosX != 40 || acc.PosY != 60 || acc.Width != 420 || acc.Height != 280 {
					t.Errorf("expected copied layout 40/60/420/280, got %d/%d/%d/%d",
						acc.PosX, acc.PosY, acc.Width, acc.Height)
				}
			}
			for j := range acc.Bills {
				if acc.Bills[j].LinkedIncomeID != nil {
					t.Error("expected copied bills to carry no income link")
				}
			}
		}
		// The transfer bill's mirror income plus the manual one.
		if bills != 2 || incomes != 2 {
			t.Errorf("expected 2 bills and 2 incomes in the copy, got %d and %d", bills, incomes)
		}

		var copiedRent models.Bill
		if err := db.First(&copiedRent, "name = ? AND account_id IN (SELECT id FROM accounts WHERE month_id = ?)",
			"Rent", copyMonth.ID).Error; err != nil {
			t.Fatalf("copied rent bill not found: %v", err)
		}
		if copiedRent.DueDate == nil {
			t.Fatal("expected copied bill to keep a due date")
		}
		want := time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)
		if !copiedRent.DueDate.Equal(want) {
			t.Errorf("expected due date %s, got %s", want.Format("2006-01-02"), copiedRent.DueDate.Format("2006-01-02"))
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMonthService(db)

		_, err := svc.DuplicateMonth(uuid.New())
		testutil.AssertAppError(t, err, "MONTH_NOT_FOUND")
	})
}

func TestAdvanceOneMonth(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid_month",
			in:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "clamps_to_shorter_month",
			in:   time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "leap_year_february",
			in:   time.Date(2028, time.January, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "year_rollover",
			in:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2027, time.January, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := advanceOneMonth(tc.in)
			if !got.Equal(tc.want) {
				t.Errorf("advanceOneMonth(%s) = %s, want %s",
					tc.in.Format("2006-01-02"), got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

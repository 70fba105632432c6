package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// billService handles bill-related business logic.
type billService struct {
	db *gorm.DB
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB) BillServicer {
	return &billService{db: db}
}

// CreateBill creates a bill in an account and reconciles its transfer link.
func (s *billService) CreateBill(accountID string, input BillInput) (*models.Bill, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bill name is required")
	}
	applyBillDefaults(&input)

	var account models.Account
	if err := s.db.First(&account, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	bill := &models.Bill{
		AccountID: account.ID,
		Name:      input.Name,
		Amount:    input.Amount,
		DueDate:   input.DueDate,
		Category:  input.Category,
		IsPaid:    input.IsPaid,
		Owner:     input.Owner,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bill).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return reconcileTransfer(tx, bill, &account, input)
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// GetBillByID retrieves a bill by ID.
func (s *billService) GetBillByID(billID string) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.First(&bill, "id = ?", billID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// UpdateBill updates a bill's fields and reconciles its transfer link against
// the freshly submitted intent.
func (s *billService) UpdateBill(billID string, input BillInput) (*models.Bill, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bill name is required")
	}
	applyBillDefaults(&input)

	bill, err := s.GetBillByID(billID)
	if err != nil {
		return nil, err
	}

	var account models.Account
	if err := s.db.First(&account, "id = ?", bill.AccountID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	bill.Name = input.Name
	bill.Amount = input.Amount
	bill.DueDate = input.DueDate
	bill.Category = input.Category
	bill.Owner = input.Owner
	bill.IsPaid = input.IsPaid

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(bill).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return reconcileTransfer(tx, bill, &account, input)
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// DeleteBill deletes a bill. The bill owns its transfer link, so a linked
// income is deleted with it.
func (s *billService) DeleteBill(billID string) error {
	bill, err := s.GetBillByID(billID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if bill.LinkedIncomeID != nil {
			if err := tx.Where("id = ?", *bill.LinkedIncomeID).Delete(&models.Income{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if err := tx.Delete(bill).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// applyBillDefaults fills the free-text fields the same way the entry form
// does when they are left blank.
func applyBillDefaults(input *BillInput) {
	if input.Category == "" {
		input.Category = "general"
	}
	if input.Owner == "" {
		input.Owner = "Shared"
	}
}

package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// incomeService handles income-related business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncome creates an income in an account.
func (s *incomeService) CreateIncome(accountID, name string, amount decimal.Decimal, contributor string) (*models.Income, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income name is required")
	}
	if contributor == "" {
		contributor = "Unknown"
	}

	var account models.Account
	if err := s.db.First(&account, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	income := &models.Income{
		AccountID:   account.ID,
		Name:        name,
		Amount:      amount,
		Contributor: contributor,
	}
	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// GetIncomeByID retrieves an income by ID.
func (s *incomeService) GetIncomeByID(incomeID string) (*models.Income, error) {
	var income models.Income
	if err := s.db.First(&income, "id = ?", incomeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// UpdateIncome updates an income's name, amount and contributor.
func (s *incomeService) UpdateIncome(incomeID, name string, amount decimal.Decimal, contributor string) (*models.Income, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income name is required")
	}

	income, err := s.GetIncomeByID(incomeID)
	if err != nil {
		return nil, err
	}

	income.Name = name
	income.Amount = amount
	if contributor != "" {
		income.Contributor = contributor
	}
	if err := s.db.Save(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// DeleteIncome deletes an income. Bills pointing at it through their transfer
// link are unlinked, not deleted: the link field is cleared on every
// referencing bill first.
func (s *incomeService) DeleteIncome(incomeID string) error {
	income, err := s.GetIncomeByID(incomeID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Bill{}).
			Where("linked_income_id = ?", income.ID).
			Update("linked_income_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(income).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

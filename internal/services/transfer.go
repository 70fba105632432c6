package services

import (
	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// reconcileTransfer brings a bill's linked income in line with the submitted
// transfer intent. It runs inside the same transaction as the bill save, on
// every save, and derives the desired state only from the current inputs plus
// the existing link. Calling it twice with the same inputs is a no-op the
// second time.
//
// A bill that is a paid transfer to a valid destination has exactly one
// mirrored income in that destination; everything else has none.
func reconcileTransfer(tx *gorm.DB, bill *models.Bill, source *models.Account, input BillInput) error {
	dest := resolveDestination(tx, source, input)
	if dest == nil {
		return clearLinkedIncome(tx, bill)
	}

	incomeName := "Transfer from " + source.Name

	if bill.LinkedIncomeID == nil {
		income := &models.Income{
			AccountID:   dest.ID,
			Name:        incomeName,
			Amount:      bill.Amount,
			Contributor: bill.Owner,
		}
		if err := tx.Create(income).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		bill.LinkedIncomeID = &income.ID
		if err := tx.Model(bill).Update("linked_income_id", income.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	}

	// A mirror already exists: update it in place, keeping the same row.
	updates := map[string]interface{}{
		"account_id":  dest.ID,
		"amount":      bill.Amount,
		"contributor": bill.Owner,
		"name":        incomeName,
	}
	if err := tx.Model(&models.Income{}).Where("id = ?", *bill.LinkedIncomeID).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// resolveDestination returns the destination account when the transfer intent
// is actionable: the bill is marked as a paid transfer and the chosen account
// is a different account in the same month. Anything else, including an id
// that does not resolve, means "no transfer" rather than an error.
func resolveDestination(tx *gorm.DB, source *models.Account, input BillInput) *models.Account {
	if !input.Transfer || !input.IsPaid {
		return nil
	}
	if input.DestinationAccountID == "" || input.DestinationAccountID == source.ID {
		return nil
	}

	var dest models.Account
	if err := tx.First(&dest, "id = ?", input.DestinationAccountID).Error; err != nil {
		return nil
	}
	if dest.MonthID != source.MonthID {
		return nil
	}
	return &dest
}

// clearLinkedIncome removes a bill's mirrored income, if any, and nulls the
// link on the bill.
func clearLinkedIncome(tx *gorm.DB, bill *models.Bill) error {
	if bill.LinkedIncomeID == nil {
		return nil
	}

	if err := tx.Where("id = ?", *bill.LinkedIncomeID).Delete(&models.Income{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	bill.LinkedIncomeID = nil
	if err := tx.Model(bill).Update("linked_income_id", nil).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

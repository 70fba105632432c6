package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

// monthService handles month-related business logic.
type monthService struct {
	db *gorm.DB
}

// NewMonthService creates a new MonthServicer.
func NewMonthService(db *gorm.DB) MonthServicer {
	return &monthService{db: db}
}

// CreateMonth creates a new budgeting month.
func (s *monthService) CreateMonth(name string) (*models.Month, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month name is required")
	}

	month := &models.Month{Name: name}
	if err := s.db.Create(month).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return month, nil
}

// GetMonths retrieves a paginated list of months, newest first.
func (s *monthService) GetMonths(page pagination.PageRequest) (*pagination.PageResponse[models.Month], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Month{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var months []models.Month
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&months).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(months, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetMonthByID retrieves a month by ID.
func (s *monthService) GetMonthByID(monthID string) (*models.Month, error) {
	var month models.Month
	if err := s.db.First(&month, "id = ?", monthID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMonthNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &month, nil
}

// UpdateMonth renames a month and/or changes its archived flag.
func (s *monthService) UpdateMonth(monthID string, name *string, archived *bool) (*models.Month, error) {
	month, err := s.GetMonthByID(monthID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil && *name != "" {
		updates["name"] = *name
	}
	if archived != nil {
		updates["archived"] = *archived
	}

	if len(updates) > 0 {
		if err := s.db.Model(month).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.First(month, "id = ?", month.ID).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return month, nil
}

// DeleteMonth deletes a month and cascades to its accounts, bills and incomes.
func (s *monthService) DeleteMonth(monthID string) error {
	month, err := s.GetMonthByID(monthID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var accountIDs []string
		if err := tx.Model(&models.Account{}).Where("month_id = ?", month.ID).Pluck("id", &accountIDs).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if len(accountIDs) > 0 {
			if err := tx.Where("account_id IN ?", accountIDs).Delete(&models.Bill{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := tx.Where("account_id IN ?", accountIDs).Delete(&models.Income{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := tx.Where("id IN ?", accountIDs).Delete(&models.Account{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if err := tx.Delete(month).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// DuplicateMonth deep-copies a month and its account/bill/income tree into
// fresh rows. Copied bills keep their fields except the due date, which
// advances one calendar month, and the income link, which is never carried
// over: copies start as plain unlinked records.
func (s *monthService) DuplicateMonth(monthID string) (*models.Month, error) {
	var month models.Month
	if err := s.db.Preload("Accounts.Bills").Preload("Accounts.Incomes").
		First(&month, "id = ?", monthID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMonthNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	copyMonth := &models.Month{Name: month.Name + " (Copy)"}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(copyMonth).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		for i := range month.Accounts {
			src := &month.Accounts[i]
			copyAccount := &models.Account{
				MonthID: copyMonth.ID,
				Name:    src.Name,
				PosX:    src.PosX,
				PosY:    src.PosY,
				Width:   src.Width,
				Height:  src.Height,
			}
			if err := tx.Create(copyAccount).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			for j := range src.Bills {
				bill := &src.Bills[j]
				var dueDate *time.Time
				if bill.DueDate != nil {
					next := advanceOneMonth(*bill.DueDate)
					dueDate = &next
				}
				copyBill := &models.Bill{
					AccountID: copyAccount.ID,
					Name:      bill.Name,
					Amount:    bill.Amount,
					DueDate:   dueDate,
					Category:  bill.Category,
					IsPaid:    bill.IsPaid,
					Owner:     bill.Owner,
				}
				if err := tx.Create(copyBill).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
			}

			for j := range src.Incomes {
				income := &src.Incomes[j]
				copyIncome := &models.Income{
					AccountID:   copyAccount.ID,
					Name:        income.Name,
					Amount:      income.Amount,
					Contributor: income.Contributor,
				}
				if err := tx.Create(copyIncome).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return copyMonth, nil
}

// advanceOneMonth moves a date forward one calendar month, clamping the day
// to the last valid day of the target month (Jan 31 -> Feb 28).
func advanceOneMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	lastDay := time.Date(year, month+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month+1, day, 0, 0, 0, 0, t.Location())
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/pagination"
	"hearth/internal/services"
)

// MonthHandler handles month-related requests.
type MonthHandler struct {
	monthService   services.MonthServicer
	accountService services.AccountServicer
}

// NewMonthHandler creates a new MonthHandler.
func NewMonthHandler(monthService services.MonthServicer, accountService services.AccountServicer) *MonthHandler {
	return &MonthHandler{monthService: monthService, accountService: accountService}
}

// CreateMonthRequest represents the request payload for creating a month.
type CreateMonthRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// UpdateMonthRequest represents the request payload for updating a month.
type UpdateMonthRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=50"`
	Archived *bool   `json:"archived"`
}

// CreateMonth handles the creation of a new month.
func (h *MonthHandler) CreateMonth(c *gin.Context) {
	var req CreateMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	month, err := h.monthService.CreateMonth(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"month": month})
}

// GetMonths handles the paginated retrieval of months, newest first.
func (h *MonthHandler) GetMonths(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.monthService.GetMonths(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMonthByID returns a month together with its accounts and their totals,
// the data behind the month board.
func (h *MonthHandler) GetMonthByID(c *gin.Context) {
	monthID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := h.monthService.GetMonthByID(monthID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accounts, err := h.accountService.GetMonthAccounts(monthID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": month, "accounts": accounts})
}

// UpdateMonth handles renaming or archiving a month.
func (h *MonthHandler) UpdateMonth(c *gin.Context) {
	monthID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	month, err := h.monthService.UpdateMonth(monthID, req.Name, req.Archived)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": month})
}

// DeleteMonth handles deleting a month and everything under it.
func (h *MonthHandler) DeleteMonth(c *gin.Context) {
	monthID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.monthService.DeleteMonth(monthID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Month deleted"})
}

// DuplicateMonth handles deep-copying a month.
func (h *MonthHandler) DuplicateMonth(c *gin.Context) {
	monthID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := h.monthService.DuplicateMonth(monthID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"month": month})
}

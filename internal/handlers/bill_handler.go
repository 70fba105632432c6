package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/money"
	"hearth/internal/services"
)

// BillHandler handles bill-related requests.
type BillHandler struct {
	billService services.BillServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer) *BillHandler {
	return &BillHandler{billService: billService}
}

// BillRequest represents the request payload for creating or updating a bill.
// Amount is accepted as submitted, currency formatting included. Transfer and
// DestinationAccount express the transfer intent for this save only.
type BillRequest struct {
	Name               string `json:"name" binding:"required,min=1,max=100"`
	Amount             string `json:"amount" binding:"required,money_amount"`
	DueDate            string `json:"due_date"`
	Category           string `json:"category" binding:"max=50"`
	Owner              string `json:"owner" binding:"max=50"`
	IsPaid             bool   `json:"is_paid"`
	Transfer           bool   `json:"transfer"`
	DestinationAccount string `json:"destination_account"`
}

// CreateBill handles adding a bill to an account, including transfer
// reconciliation.
func (h *BillHandler) CreateBill(c *gin.Context) {
	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	input, err := h.bindBillInput(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.CreateBill(accountID, *input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bill": bill})
}

// GetBillByID handles the retrieval of a bill.
func (h *BillHandler) GetBillByID(c *gin.Context) {
	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.GetBillByID(billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// UpdateBill handles editing a bill, including transfer reconciliation.
func (h *BillHandler) UpdateBill(c *gin.Context) {
	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	input, err := h.bindBillInput(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.UpdateBill(billID, *input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// DeleteBill handles deleting a bill together with its linked income.
func (h *BillHandler) DeleteBill(c *gin.Context) {
	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.billService.DeleteBill(billID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted"})
}

// bindBillInput binds and converts a bill payload into a service input.
func (h *BillHandler) bindBillInput(c *gin.Context) (*services.BillInput, error) {
	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		return nil, apperrors.ErrInvalidAmount
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, parseErr := time.Parse("2006-01-02", req.DueDate)
		if parseErr != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid due_date format, expected YYYY-MM-DD")
		}
		dueDate = &parsed
	}

	return &services.BillInput{
		Name:                 req.Name,
		Amount:               amount,
		DueDate:              dueDate,
		Category:             req.Category,
		Owner:                req.Owner,
		IsPaid:               req.IsPaid,
		Transfer:             req.Transfer,
		DestinationAccountID: ParseDestination(req.DestinationAccount),
	}, nil
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-console/internal/domain/payment"
	"github.com/BruksfildServices01/barber-console/internal/httpresp"
	"github.com/BruksfildServices01/barber-console/internal/store"
	"github.com/BruksfildServices01/barber-console/internal/usecase/checkout"
)

type TransactionHandler struct {
	transactions *store.TransactionStore
	quickSale    *checkout.QuickSale
}

func NewTransactionHandler(
	transactions *store.TransactionStore,
	quickSale *checkout.QuickSale,
) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		quickSale:    quickSale,
	}
}

// --------- Requests ---------

type PaymentRequest struct {
	Method string `json:"method" binding:"required"`
	Amount string `json:"amount"`
}

type QuickSaleRequest struct {
	ClientName string           `json:"clientName"`
	ServiceIDs []uint           `json:"serviceIds"`
	Discount   string           `json:"discount"`
	Payments   []PaymentRequest `json:"payments" binding:"dive"`
}

// --------- Handlers ---------

func (h *TransactionHandler) List(c *gin.Context) {
	httpresp.List(c, h.transactions.List())
}

// Create records a walk-in sale whose payment split was computed by the
// caller. The amounts are stored as sent.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req QuickSaleRequest
	if !bindJSON(c, &req) {
		return
	}

	in := checkout.QuickSaleInput{
		ClientName: req.ClientName,
		ServiceIDs: req.ServiceIDs,
		Discount:   req.Discount,
	}
	for _, p := range req.Payments {
		in.Payments = append(in.Payments, checkout.PaymentInput{
			Method: payment.Method(p.Method),
			Amount: p.Amount,
		})
	}

	created, err := h.quickSale.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

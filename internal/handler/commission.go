package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/report"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/scope"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CommissionHandler covers commission transactions and their aggregates.
// Transactions are append-only; corrections are new rows, aggregates are
// recomputed from the rows.
type CommissionHandler struct {
	Transactions store.TransactionStore
	Aggregator   *report.Aggregator
}

func NewCommissionHandler(transactions store.TransactionStore, agg *report.Aggregator) *CommissionHandler {
	return &CommissionHandler{Transactions: transactions, Aggregator: agg}
}

// ListForYear returns the subject's transactions for a year, newest
// first, together with their sum.
func (h *CommissionHandler) ListForYear(c *gin.Context) {
	h.list(c, 0)
}

// ListForMonth narrows the listing to one month of the year.
func (h *CommissionHandler) ListForMonth(c *gin.Context) {
	month, ok := pathInt(c, "month")
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month must be between 1 and 12")
		return
	}
	h.list(c, month)
}

func (h *CommissionHandler) list(c *gin.Context, month int) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}

	subject := scope.EffectiveSubject(id, querySubject(c))
	transactions, err := h.Transactions.List(c.Request.Context(), subject, year, month)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list commissions")
		return
	}

	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Amount)
	}
	util.Success(c, util.Response{"transactions": transactions, "total": total})
}

type createCommissionReq struct {
	UserID               int64           `json:"user_id"`
	Amount               decimal.Decimal `json:"amount" binding:"required"`
	TransactionType      string          `json:"transaction_type" binding:"required"`
	TransactionReference string          `json:"transaction_reference"`
	TransactionMonth     int             `json:"transaction_month" binding:"required"`
	TransactionYear      int             `json:"transaction_year" binding:"required"`
	PropertyAddress      string          `json:"property_address"`
	Notes                string          `json:"notes"`
}

// Create records an earned commission.
func (h *CommissionHandler) Create(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req createCommissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "amount, transaction_type, transaction_month and transaction_year are required")
		return
	}
	if !req.Amount.IsPositive() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "amount must be positive")
		return
	}
	txType := models.TransactionType(strings.ToLower(strings.TrimSpace(req.TransactionType)))
	if !txType.Valid() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "transaction_type must be sale or rental")
		return
	}
	if req.TransactionMonth < 1 || req.TransactionMonth > 12 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "transaction_month must be between 1 and 12")
		return
	}

	tx := models.CommissionTransaction{
		UserID:               scope.EffectiveSubject(id, req.UserID),
		Amount:               req.Amount,
		TransactionType:      txType,
		TransactionReference: strings.TrimSpace(req.TransactionReference),
		TransactionMonth:     req.TransactionMonth,
		TransactionYear:      req.TransactionYear,
		PropertyAddress:      strings.TrimSpace(req.PropertyAddress),
		Notes:                req.Notes,
	}
	if err := h.Transactions.Create(c.Request.Context(), &tx); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "unknown user")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to record commission")
		}
		return
	}

	util.Success(c, util.Response{"transaction": tx})
}

// OfficeOverview is the admin/manager rollup of every active agent's
// yearly total.
func (h *CommissionHandler) OfficeOverview(c *gin.Context) {
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}

	agents, err := h.Aggregator.OfficeOverview(c.Request.Context(), year)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to build office overview")
		return
	}
	util.Success(c, util.Response{"year": year, "agents": agents})
}

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BillingHandler struct {
	Handler
	service port.BillingService
}

func NewBillingHandler(service port.BillingService, logger *zap.Logger) (*BillingHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("service is nil")
	}

	return &BillingHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type SummaryResp struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Profit        decimal.Decimal `json:"profit"`
}

func (bh *BillingHandler) MonthlySummary(ctx *gin.Context) {
	period, err := parsePeriod(ctx)
	if err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	summary, err := bh.service.MonthlySummary(ctx, period)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccess(ctx, SummaryResp{
		Year:          summary.Year,
		Month:         int(summary.Month),
		TotalIncome:   summary.TotalIncome,
		TotalExpenses: summary.TotalExpenses,
		Profit:        summary.Profit(),
	})
}

type TransactionResp struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"transactionDate"`
}

func (bh *BillingHandler) ListTransactions(ctx *gin.Context) {
	period, err := parsePeriod(ctx)
	if err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	entries, err := bh.service.ListTransactions(ctx, period)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccess(ctx, lo.Map(entries, func(e domain.LedgerEntry, _ int) TransactionResp {
		return TransactionResp{
			ID:          e.ID,
			Type:        string(e.Type),
			Description: e.Description,
			Amount:      e.Amount,
			Date:        e.CreatedAt,
		}
	}))
}

type CreateExpenseReq struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

func (bh *BillingHandler) CreateExpense(ctx *gin.Context) {
	var req CreateExpenseReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	id, err := bh.service.CreateExpense(ctx, domain.Expense{
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccessWithStatus(ctx, gin.H{"id": id}, http.StatusCreated)
}

func (bh *BillingHandler) ListActivePaymentMethods(ctx *gin.Context) {
	methods, err := bh.service.ListActivePaymentMethods(ctx)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccess(ctx, lo.Map(methods, func(m domain.PaymentMethod, _ int) string {
		return m.Name
	}))
}

// parsePeriod defaults to the current month.
func parsePeriod(ctx *gin.Context) (domain.Period, error) {
	now := time.Now().UTC()
	period := domain.Period{Year: now.Year(), Month: now.Month()}

	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return period, fmt.Errorf("year %q: %w", raw, err)
		}
		period.Year = year
	}

	if raw := ctx.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			return period, fmt.Errorf("month %q: %w", raw, err)
		}
		period.Month = time.Month(month)
	}

	return period, period.Validate()
}

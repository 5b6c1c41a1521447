package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
)

type errorStatus struct {
	err    error
	status int
}

// checked in order, the first errors.Is match wins
var errorStatuses = []errorStatus{
	{domain.ErrInternal, http.StatusInternalServerError},

	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrAddressNotFound, http.StatusNotFound},
	{domain.ErrProductNotFound, http.StatusNotFound},
	{domain.ErrOrderNotFound, http.StatusNotFound},

	{domain.ErrEmptyItemList, http.StatusBadRequest},
	{domain.ErrInvalidQuantity, http.StatusBadRequest},
	{domain.ErrInvalidReference, http.StatusBadRequest},
	{domain.ErrInvalidOrderStatus, http.StatusBadRequest},
	{domain.ErrBadRequest, http.StatusBadRequest},
	{domain.ErrPaymentMethodInactive, http.StatusUnprocessableEntity},

	{domain.ErrInsufficientStock, http.StatusConflict},
	{domain.ErrOrderNotCancellable, http.StatusConflict},
	{domain.ErrConcurrentUpdate, http.StatusConflict},

	{errMissingUser, http.StatusUnauthorized},
}

type errorResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productUUID,omitempty"`
	Available *int32 `json:"available,omitempty"`
	Requested *int32 `json:"requested,omitempty"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func statusOf(err error) (errorStatus, bool) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es, true
		}
	}
	return errorStatus{err: domain.ErrInternal, status: http.StatusInternalServerError}, false
}

// handleError sends an error response, unknown errors are logged and hidden.
// Only the matched sentinel text reaches the client, never the wrap chain.
func (h *Handler) handleError(ctx *gin.Context, err error) {
	es, ok := statusOf(err)
	if !ok || es.status == http.StatusInternalServerError {
		h.logger.Error("error processing request", zap.String("path", ctx.FullPath()), zap.Error(err))
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Message: domain.ErrInternal.Error()})
		return
	}

	resp := errorResponse{Message: es.err.Error()}

	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		resp.Message = stockErr.Error()
		resp.ProductID = stockErr.ProductID.String()
		resp.Available = &stockErr.Available
		resp.Requested = &stockErr.Requested
	}

	ctx.AbortWithStatusJSON(es.status, resp)
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

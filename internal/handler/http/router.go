package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
	logger *zap.Logger
}

func NewRouter(
	orderHandler *OrderHandler,
	billingHandler *BillingHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	api := router.Group("/api")
	api.Use(orderHandler.identify())
	{
		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.PlaceOrder)
			orders.GET("", orderHandler.SearchOrders)
			orders.GET("/my", orderHandler.ListMyOrders)
			orders.GET("/:uuid", orderHandler.GetOrder)
			orders.POST("/:uuid/cancel", orderHandler.CancelOrder)
			orders.PUT("/:uuid/status", orderHandler.UpdateOrderStatus)
			orders.POST("/:uuid/reorder", orderHandler.Reorder)
		}

		billing := api.Group("/billing")
		{
			billing.GET("/summary", billingHandler.MonthlySummary)
			billing.GET("/transactions", billingHandler.ListTransactions)
			billing.POST("/expenses", billingHandler.CreateExpense)
		}

		api.GET("/cart", orderHandler.GetCart)
		api.GET("/payment-methods/active", billingHandler.ListActivePaymentMethods)
	}

	return &Router{Engine: router, logger: logger}, nil
}

// Serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests.
func (r *Router) Serve(ctx context.Context, listenAddr string) error {
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	r.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

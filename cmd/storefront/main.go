package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/handler/http"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/nikolayk812/storefront/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

func main() {
	conf, err := config.NewConfig(os.Args[1:])
	if err != nil {
		fmt.Printf("config error: %s\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("logger error: %s\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(conf, log); err != nil {
		log.Error("storefront stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(conf *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	unit, err := currency.ParseISO(conf.App.Currency)
	if err != nil {
		return fmt.Errorf("currency.ParseISO[%s]: %w", conf.App.Currency, err)
	}

	if err := storage.RunMigrations(conf.Database.DSN); err != nil {
		return fmt.Errorf("storage.RunMigrations: %w", err)
	}

	pool, err := storage.NewPool(ctx, conf.Database)
	if err != nil {
		return fmt.Errorf("storage.NewPool: %w", err)
	}
	defer pool.Close()

	orderRepo, err := repository.NewOrder(pool, unit)
	if err != nil {
		return fmt.Errorf("repository.NewOrder: %w", err)
	}
	cartRepo := repository.NewCart(pool)
	ledgerRepo := repository.NewLedger(pool)
	paymentMethodRepo := repository.NewPaymentMethod(pool)

	orderService, err := service.NewOrderService(orderRepo, cartRepo, paymentMethodRepo, log.Named("Order service"))
	if err != nil {
		return fmt.Errorf("service.NewOrderService: %w", err)
	}
	billingService, err := service.NewBillingService(ledgerRepo, paymentMethodRepo, log.Named("Billing service"))
	if err != nil {
		return fmt.Errorf("service.NewBillingService: %w", err)
	}

	orderHandler, err := http.NewOrderHandler(orderService, log.Named("Order handler"))
	if err != nil {
		return fmt.Errorf("http.NewOrderHandler: %w", err)
	}
	billingHandler, err := http.NewBillingHandler(billingService, log.Named("Billing handler"))
	if err != nil {
		return fmt.Errorf("http.NewBillingHandler: %w", err)
	}

	router, err := http.NewRouter(orderHandler, billingHandler, log.Named("Router"))
	if err != nil {
		return fmt.Errorf("http.NewRouter: %w", err)
	}

	log.Info("storefront starting",
		zap.String("address", conf.HTTP.HostString),
		zap.String("currency", unit.String()))

	return router.Serve(ctx, conf.HTTP.HostString)
}

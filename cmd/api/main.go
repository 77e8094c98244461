package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/logger"
	"storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	done <- true
}

// seedCatalog fills an empty catalog with demo data so the storefront
// has something to show on first boot. State lives for the process
// lifetime only.
func seedCatalog(catalog *store.Catalog, log *zap.Logger) {
	coffee := catalog.CreateCategory(repository.CategoryInput{
		Name:        "Coffee",
		Description: "Beans and ground coffee",
	})
	gear := catalog.CreateCategory(repository.CategoryInput{
		Name:        "Brewing Gear",
		Description: "Everything but the beans",
	})

	catalog.CreateProduct(repository.ProductInput{
		Name:        "Espresso Beans",
		Description: "Dark roast, 1kg bag",
		Price:       decimal.NewFromFloat(18.50),
		Currency:    "EUR",
		CategoryIDs: []string{coffee.ID},
		AdditionalInfo: map[string]string{
			"origin": "Brazil",
			"roast":  "dark",
		},
	})
	catalog.CreateProduct(repository.ProductInput{
		Name:        "Pour-Over Kettle",
		Description: "Gooseneck kettle, 1L",
		Price:       decimal.NewFromFloat(42.00),
		Currency:    "EUR",
		CategoryIDs: []string{gear.ID},
	})

	catalog.CreatePage(repository.PageInput{
		Title:    "About Us",
		Content:  "<p>We sell coffee.</p>",
		Template: "page",
	})

	headerHTML := "<h1>Storefront</h1>"
	catalog.UpdateSettings(repository.SettingsPatch{
		HeaderHTML: &headerHTML,
		PaymentGateways: &[]domain.PaymentGateway{
			{Provider: "stripe", Enabled: false},
		},
	})

	log.Info("Catalog seeded",
		zap.Int("products", len(catalog.Products())),
		zap.Int("categories", len(catalog.Categories())),
		zap.Int("pages", len(catalog.Pages())),
	)
}

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting storefront API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	catalog := store.NewCatalog()
	seedCatalog(catalog, log)

	srv := server.NewServer(cfg, log, catalog)

	done := make(chan bool, 1)
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	<-done
	log.Info("Graceful shutdown complete")
}

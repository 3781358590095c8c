package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retail-insights/internal/core/cache"
	"retail-insights/internal/core/config"
	"retail-insights/internal/core/logger"
	"retail-insights/internal/core/server"
	forecasthandler "retail-insights/internal/features/forecasting/handler"
	forecastservice "retail-insights/internal/features/forecasting/service"
	insightadapter "retail-insights/internal/features/insights/adapters"
	insighthandler "retail-insights/internal/features/insights/handler"
	insightports "retail-insights/internal/features/insights/ports"
	insightservice "retail-insights/internal/features/insights/service"
	orderadapter "retail-insights/internal/features/orders/adapters"
	orderhandler "retail-insights/internal/features/orders/handler"
	orderservice "retail-insights/internal/features/orders/service"
	salesadapter "retail-insights/internal/features/sales/adapters"
	saleshandler "retail-insights/internal/features/sales/handler"
	salesservice "retail-insights/internal/features/sales/service"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Retail Insights API
// @version 1.0
// @description Order feed validation, monthly sales aggregation and demand forecasting with AI commentary.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("proxy", cfg.Proxy.HasProxy()),
	)

	ctx := context.Background()

	// Orders
	feed := orderadapter.NewHTTPFeedAdapter(cfg.Feed, cfg.Proxy)
	store := orderadapter.NewMemoryStore()
	orderSvc := orderservice.NewOrderService(feed, store)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	if _, err := orderSvc.Load(ctx); err != nil {
		l.Error("Initial order load failed; starting with no orders", zap.Error(err))
	}

	// Sales & forecasting
	salesSvc := salesservice.NewSalesService(orderSvc, salesadapter.NewXLSXExporter())
	salesHdl := saleshandler.NewSalesHandler(salesSvc)

	forecastSvc := forecastservice.NewForecastService(salesSvc)
	forecastHdl := forecasthandler.NewForecastHandler(forecastSvc)

	// Insights
	var insightRepo insightports.InsightRepository
	if cfg.Cache.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL)
		if err != nil {
			l.Fatal("Invalid Redis configuration", zap.Error(err))
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			l.Warn("Redis unreachable; insight caching degraded", zap.Error(err))
		}
		insightRepo = insightadapter.NewRedisInsightRepository(redisCache)
	}

	var generator insightports.TextGenerator = insightadapter.UnconfiguredGenerator{}
	if cfg.Gemini.Enabled() {
		gemini, err := insightadapter.NewGeminiAdapter(ctx, cfg.Gemini)
		if err != nil {
			l.Fatal("Failed to initialize Gemini", zap.Error(err))
		}
		defer gemini.Close()
		generator = gemini
	} else {
		l.Warn("GEMINI_API_KEY not set; AI insights and chat are disabled")
	}

	insightSvc := insightservice.NewInsightService(generator, insightRepo, orderSvc, cfg.Cache.InsightTTL)
	insightHdl := insighthandler.NewInsightHandler(forecastSvc, insightSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/orders/reload", orderHdl.Reload)
	srv.App.Get("/orders", orderHdl.ListOrders)
	srv.App.Get("/orders/:id", orderHdl.GetOrder)
	srv.App.Get("/sales", salesHdl.ListSales)
	srv.App.Get("/sales/products", salesHdl.ListProducts)
	srv.App.Get("/sales/export", salesHdl.Export)
	srv.App.Get("/forecast/:product", forecastHdl.GetForecast)
	srv.App.Post("/insights/forecast", insightHdl.AnalyzeForecast)
	srv.App.Post("/chat", insightHdl.Chat)

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	if err := srv.Shutdown(shutdownTimeout); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
}

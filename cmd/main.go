package main

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/freightworks/freight-backend/internal/cache"
	"github.com/freightworks/freight-backend/internal/config"
	"github.com/freightworks/freight-backend/internal/db"
	"github.com/freightworks/freight-backend/internal/discovery"
	"github.com/freightworks/freight-backend/internal/distance"
	"github.com/freightworks/freight-backend/internal/kafka"
	"github.com/freightworks/freight-backend/internal/logger"
	"github.com/freightworks/freight-backend/internal/repository/postgresql"
	"github.com/freightworks/freight-backend/internal/server"
	"github.com/freightworks/freight-backend/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	database, err := db.NewDb(ctx, cfg.DSN())
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer database.Close()

	shipmentRepo := postgresql.NewShipmentRepo(database)
	historyRepo := postgresql.NewHistoryRepo(database)
	vendorRepo := postgresql.NewVendorRepo(database)
	quoteRepo := postgresql.NewQuoteRequestRepo(database)
	invoiceRepo := postgresql.NewInvoiceRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	companyRepo := postgresql.NewCompanyRepo(database)
	analyticsRepo := postgresql.NewAnalyticsRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	shipmentStorage := storage.NewShipmentStorage(
		database, shipmentRepo, historyRepo, quoteRepo, outboxRepo, cfg.KafkaTopic)

	vendorCache := cache.NewVendorCache(vendorRepo, log)

	estimator := distance.NewEstimator(cfg.OSRMBaseURL, cfg.RoutingTimeout, log)

	producer := kafka.NewWriterProducer(cfg.KafkaBrokers, log)
	defer func() {
		_ = producer.Close()
	}()

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: cfg.OutboxPollInterval,
		BatchSize:    cfg.OutboxBatchSize,
		MaxAttempts:  cfg.OutboxMaxAttempts,
	}, log)
	go publisher.Run(ctx)

	if cfg.EnableMDNS {
		port, err := strconv.Atoi(cfg.HTTPPort)
		if err != nil {
			log.Warn("mdns disabled: invalid HTTP port", zap.String("port", cfg.HTTPPort))
		} else {
			advertiser := discovery.Advertise(cfg.MDNSService, port, log)
			defer advertiser.Stop()
		}
	}

	srv := server.New(server.Deps{
		Shipments:     shipmentStorage,
		ShipmentRepo:  shipmentRepo,
		Users:         userRepo,
		Vendors:       vendorRepo,
		VendorCache:   vendorCache,
		QuoteRequests: quoteRepo,
		Analytics:     analyticsRepo,
		Invoices:      invoiceRepo,
		Companies:     companyRepo,
		Estimator:     estimator,
		Logger:        log,
	})

	go func() {
		if err := srv.Run(ctx, cfg.HTTPPort); err != nil {
			log.Fatal("server start failed", zap.Error(err))
		}
	}()

	log.Info("freight backend started", zap.String("port", cfg.HTTPPort))

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	publisher.Shutdown()

	log.Info("freight backend stopped")
}

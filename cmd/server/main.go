package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/adiouf/finsight/internal/config"
	"github.com/adiouf/finsight/internal/dataset"
	"github.com/adiouf/finsight/internal/repository/mongodb"
	"github.com/adiouf/finsight/internal/repository/sheets"
	"github.com/adiouf/finsight/internal/scheduler"
	"github.com/adiouf/finsight/internal/server/handlers"
	"github.com/adiouf/finsight/internal/server/router"
	chatsvc "github.com/adiouf/finsight/internal/service/chat"
	"github.com/adiouf/finsight/internal/service/interpreter"
	"github.com/adiouf/finsight/internal/service/responder"
	"github.com/adiouf/finsight/pkg/clients/webhook"
	"github.com/adiouf/finsight/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := buildStore(context.Background(), cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to load financial dataset", zap.Error(err))
	}
	baseLogger.Info("dataset loaded", zap.Int("companies", len(store.Companies())))

	var historyRepo mongodb.Repository
	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		historyRepo = mongoRepo
	} else {
		baseLogger.Warn("mongodb uri missing, query history disabled")
	}

	interpreterSvc := interpreter.NewService(baseLogger.Named("svc.interpreter"))
	responderSvc := responder.NewService(store, baseLogger.Named("svc.responder"))
	insightSvc := chatsvc.NewService(interpreterSvc, responderSvc, historyRepo, baseLogger.Named("svc.chat"))

	chatHandler := handlers.NewChatHandler(insightSvc, baseLogger.Named("handlers.chat"))
	dataHandler := handlers.NewDataHandler(store, baseLogger.Named("handlers.data"))
	engine := router.New(chatHandler, dataHandler, baseLogger.Named("router"))

	var notifier webhook.Client
	if cfg.Digest.WebhookURL != "" {
		notifier = webhook.NewClient(cfg.Digest.WebhookURL)
		baseLogger.Info("digest webhook enabled")
	}

	sched := scheduler.NewScheduler(cfg.Digest, responderSvc, historyRepo, notifier, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func buildStore(ctx context.Context, cfg *config.Config, baseLogger *zap.Logger) (*dataset.Store, error) {
	switch cfg.Data.Source {
	case config.SourceCSV:
		return dataset.FromCSVFile(cfg.Data.CSVPath)
	case config.SourceSheet:
		source, err := sheets.NewGoogleSheetSource(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			return nil, err
		}
		records, err := source.Load(ctx)
		if err != nil {
			return nil, err
		}
		return dataset.New(records)
	default:
		return dataset.Default()
	}
}

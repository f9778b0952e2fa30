package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/spinetrack/platform/pkg/api"
	"github.com/spinetrack/platform/pkg/chat"
	"github.com/spinetrack/platform/pkg/common/config"
	"github.com/spinetrack/platform/pkg/common/database"
	"github.com/spinetrack/platform/pkg/common/kafka"
	"github.com/spinetrack/platform/pkg/common/logger"
	"github.com/spinetrack/platform/pkg/llm"
	"github.com/spinetrack/platform/pkg/record"
	"github.com/spinetrack/platform/pkg/triage"
)

func main() {
	logger.Init()
	cfg := config.Load()

	db, err := database.GetPostgres()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to connect to postgres")
	}

	repo := record.NewRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		logger.Log.WithError(err).Fatal("failed to migrate patient tables")
	}

	cache := record.NewCache(database.GetRedis(), cfg.PatientCacheTTL)

	promProducer := kafka.NewProducer(kafka.TopicPromSubmissions)
	defer promProducer.Close()
	escalationProducer := kafka.NewProducer(kafka.TopicTriageEscalations)
	defer escalationProducer.Close()

	records := record.NewService(repo, cache, promProducer)

	redFlagRules, err := triage.LoadRedFlagRules(cfg.RedFlagRulesPath)
	if err != nil {
		logger.Log.WithError(err).Warn("falling back to built-in red-flag rules")
		redFlagRules = triage.DefaultRedFlagRules()
	}
	faqCatalog, err := triage.LoadFaqCatalog(cfg.FaqCatalogPath)
	if err != nil {
		logger.Log.WithError(err).Warn("falling back to built-in FAQ catalog")
		faqCatalog = triage.DefaultFaqCatalog()
	}

	chatSvc := chat.NewService(
		cfg,
		llm.NewOpenAIClient(cfg),
		triage.NewScanner(redFlagRules),
		triage.NewMatcher(faqCatalog),
		escalationProducer,
	)

	handler := api.NewHandler(records, chatSvc)

	router := mux.NewRouter()
	router.Use(api.Recovery, api.Logging, api.CORS, api.BodyLimit(cfg.MaxRequestBody))
	handler.Register(router)

	address := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Log.WithField("addr", address).Info("Patient service listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("failed to start patient service")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down patient service...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Patient service forced to shutdown")
	}
	logger.Log.Info("Patient service stopped")
}

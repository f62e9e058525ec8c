package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weup-connect/internal/catalog"
	"weup-connect/internal/config"
	"weup-connect/internal/database"
	httpapi "weup-connect/internal/http"
	"weup-connect/internal/logger"
	"weup-connect/internal/repository"
	"weup-connect/internal/service"
	"weup-connect/internal/store"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "weup-connect")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	kv := store.NewRedisKV(redisClient)
	events := store.NewRedisEventLog(redisClient)

	// Optional DB-backed repos; fall back to in-memory repos so local dev
	// works with plain `go run` and no Postgres.
	var db *sql.DB
	var contactsRepo repository.ContactsRepo
	var menteesRepo repository.MenteesRepo
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			log.Info("DB enabled for weup-connect")
		} else {
			log.Warn("DB enabled but connection failed, falling back to in-memory repos", zap.Error(err))
		}
	}
	if db != nil {
		contactsRepo = repository.NewPostgresContactsRepo(db)
		menteesRepo = repository.NewPostgresMenteesRepo(db)
	} else {
		contactsRepo = repository.NewMemoryContactsRepo()
		menteesRepo = repository.NewMemoryMenteesRepo()
	}

	resources := catalog.Default()

	resourceService := service.NewResourceService(resources, events, cfg.AccessEventStream, log)
	contactService := service.NewContactService(contactsRepo, service.DefaultStarterContacts, log)
	decisionService := service.NewDecisionService(contactsRepo, resources, log)
	caseloadService := service.NewCaseloadService(menteesRepo, kv, log)

	router := httpapi.NewRouter(log)
	router.RegisterResourceRoutes(httpapi.NewResourceHandler(resourceService, log))
	router.RegisterContactRoutes(httpapi.NewContactHandler(contactService, log))
	router.RegisterActionRoutes(httpapi.NewActionHandler(decisionService, log))
	router.RegisterCaseloadRoutes(httpapi.NewCaseloadHandler(caseloadService, log))

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		cancel()
	case <-errCh:
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	_ = redisClient.Close()
	if db != nil {
		_ = db.Close()
	}
}

package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"

	"wingman_admin/internal/apiclient"
	"wingman_admin/internal/cache"
	"wingman_admin/internal/config"
	"wingman_admin/internal/database"
	"wingman_admin/internal/export"
	"wingman_admin/internal/fetch"
	"wingman_admin/internal/handler"
	"wingman_admin/internal/mutation"
	"wingman_admin/internal/queue"
	appredis "wingman_admin/internal/redis"
	"wingman_admin/internal/repository"
	"wingman_admin/internal/service"
	"wingman_admin/internal/store"
	"wingman_admin/internal/worker"
)

func Run() error {
	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Audit database (optional)
	var auditRepo repository.AuditRepository
	if cfg.DBHost != "" {
		db, err := database.Connect(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		auditRepo = repository.NewAuditRepository(db)
	} else {
		log.Println("DB_HOST not set, audit trail disabled")
	}

	// 3. Redis (optional): snapshot warm cache + admin event stream
	var snapshots *cache.Snapshots
	var publisher queue.Publisher
	if cfg.RedisURL != "" {
		redisClient, err := appredis.NewClient(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redisClient.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()
		snapshots = cache.NewSnapshots(redisClient.Client)
		publisher = queue.NewPublisher(redisClient.Client)
	} else {
		log.Println("REDIS_URL not set, snapshot cache and event stream disabled")
	}

	// 4. Backend client, store, orchestrator, coordinator
	backend := apiclient.New(cfg.BackendBaseURL, cfg.BackendToken)
	st := store.New()

	orchestrator := fetch.New(backend, st, snapshots)
	orchestrator.Prime(ctx)
	if msg := orchestrator.LoadAll(ctx); msg != "" {
		// The store may still hold primed snapshots; start serving anyway.
		log.Printf("[Server] initial load: %s", msg)
	}

	coordinator := mutation.New(backend, orchestrator, st, auditRepo, publisher)

	// 5. Optional services
	var exportService *export.Service
	if cfg.R2AccountID != "" {
		exportService, err = export.NewService(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to create export service: %w", err)
		}
	} else {
		log.Println("R2 not configured, CSV export disabled")
	}

	sessionService := service.NewSessionService(cfg)

	// 6. Background refresher (optional)
	if refresher := worker.NewRefresher(orchestrator, cfg.RefreshInterval); refresher != nil {
		refresher.Start(ctx)
		defer refresher.Stop()
	}

	// 7. Handlers and router
	routerCfg := RouterConfig{
		AuthHandler:       handler.NewAuthHandler(sessionService),
		OverviewHandler:   handler.NewOverviewHandler(st),
		CollectionHandler: handler.NewCollectionHandler(st, orchestrator),
		VideoHandler:      handler.NewVideoHandler(coordinator),
		UserHandler:       handler.NewUserHandler(coordinator),
		CategoryHandler:   handler.NewCategoryHandler(coordinator),
		DeleteHandler:     handler.NewDeleteHandler(coordinator),
		JWTSecret:         cfg.JWTSecret,
	}
	if auditRepo != nil {
		routerCfg.AuditHandler = handler.NewAuditHandler(auditRepo)
	}
	if exportService != nil {
		routerCfg.ExportHandler = handler.NewExportHandler(st, exportService, auditRepo)
	}

	router := NewRouter(routerCfg)

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)
	return stdhttp.ListenAndServe(addr, router)
}

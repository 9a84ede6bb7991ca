package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/audit"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/chain"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/rfid"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/validation"
)

// @title           GPS Job Board API
// @version         1.0
// @description     Job board backend with mediators, employer postings, an RFID simulator and GPS-verified on-chain payments.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	auditLogger := audit.Init("gps-jobboard", cfg.Environment)
	defer auditLogger.Sync()
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "env", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RunMigrations {
		if err := database.ApplyMigrations(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	// 4. Setup Redis (optional)
	var redisCheck func(context.Context) error
	err = redis.Initialize(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
	switch {
	case err == nil:
		redisCheck = redis.HealthCheck
		defer redis.Close()
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Warn("Redis not configured, using in-memory state")
	default:
		logger.Log.Warn("Redis unavailable, using in-memory state", "error", err)
	}

	// 5. Setup RFID simulator
	memoryStore := rfid.NewMemoryStore()
	stores := []rfid.Store{memoryStore}
	var readStore rfid.Store = memoryStore
	if client := redis.Client(); client != nil {
		redisStore := rfid.NewRedisStore(client, rfid.DefaultRedisKey, 10*cfg.RFIDInterval)
		stores = append(stores, redisStore)
		readStore = rfid.NewFallbackStore(redisStore, memoryStore)
	}
	if cfg.RFIDSimulatorEnabled {
		generator := rfid.NewGenerator(cfg.RFIDSource, cfg.RFIDInterval, stores)
		go generator.Run(ctx)
		auditLogger.Log(ctx, audit.Event{
			Event:   audit.EventSimulatorStarted,
			Details: map[string]interface{}{"source": cfg.RFIDSource, "interval": cfg.RFIDInterval.String()},
		})
	}

	// 6. Setup Chain gateway (optional)
	var gateway domain.ChainGateway
	chainClient, err := chain.Dial(ctx, chain.Config{
		RPCURL:         cfg.EthRPCURL,
		ChainID:        cfg.EthChainID,
		PrivateKeyHex:  cfg.EthPrivateKey,
		PaymentAddress: cfg.GPSPaymentContract,
		OracleAddress:  cfg.GPSOracleContract,
	})
	if err != nil {
		logger.Log.Warn("Chain gateway disabled", "error", err)
	} else {
		defer chainClient.Close()
		gateway = chainClient
		logger.Log.Info("Chain gateway ready", "writable", chainClient.Writable())
	}

	// 7. Setup Object storage (optional)
	var objectStore domain.ObjectStore
	uploader, err := storage.NewS3Uploader(ctx, storage.S3Config{
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Endpoint:        cfg.S3Endpoint,
		PublicBaseURL:   cfg.S3PublicBaseURL,
	})
	if err != nil {
		logger.Log.Warn("Uploads disabled", "error", err)
	} else {
		objectStore = uploader
	}

	// 8. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	mediatorRepo := postgres.NewMediatorRepository(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	jobPostingRepo := postgres.NewJobPostingRepository(dbPool)
	savedJobRepo := postgres.NewSavedJobRepository(dbPool)

	// 9. Setup UseCases
	validate := validation.New()
	authUC := usecase.NewAuthUsecase(userRepo)
	mediatorUC := usecase.NewMediatorUsecase(mediatorRepo, validate, auditLogger)
	employeeUC := usecase.NewEmployeeUsecase(employeeRepo, validate)
	employerUC := usecase.NewEmployerUsecase(employerRepo, validate)
	jobPostingUC := usecase.NewJobPostingUsecase(jobPostingRepo, employerRepo, mediatorRepo, validate)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, employeeRepo, jobPostingRepo)
	chainUC := usecase.NewChainUsecase(gateway, jobPostingRepo, employerRepo, validate, auditLogger)
	uploadUC := usecase.NewUploadUsecase(objectStore)
	healthUC := usecase.NewHealthUsecase(dbPool, redisCheck)

	// 10. Setup Auth Provider (JWKS)
	jwksProvider := auth.NewProvider(cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json")

	// 11. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		MediatorUC:   mediatorUC,
		EmployeeUC:   employeeUC,
		EmployerUC:   employerUC,
		JobPostingUC: jobPostingUC,
		SavedJobUC:   savedJobUC,
		ChainUC:      chainUC,
		UploadUC:     uploadUC,
		HealthUC:     healthUC,
		RFIDStore:    readStore,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 12. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
	if cfg.RFIDSimulatorEnabled {
		auditLogger.Log(shutdownCtx, audit.Event{Event: audit.EventSimulatorStopped})
	}

	logger.Log.Info("Server exiting")
}

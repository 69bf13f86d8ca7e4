// cmd/borica-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/borica-gateway/internal/api/rest/v1"
	"github.com/MGTheTrain/borica-gateway/internal/app"
	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
	"github.com/MGTheTrain/borica-gateway/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/borica-gateway/internal/infrastructure/persistence"
	"github.com/MGTheTrain/borica-gateway/internal/infrastructure/protocol"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/config"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type cryptoComponents struct {
	signer   cryptoalg.RSASigner
	keyStore cryptoalg.KeyStore
	codec    payment.MessageCodec
}

type appServices struct {
	gateway             payment.GatewayService
	transactionMetadata payment.TransactionMetadataService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	transactionRepo, err := persistence.NewGormTransactionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction repository: %w", err)
	}

	// Initialize key material, signer and codec
	components, err := initializeCryptoComponents(&cfg.Gateway, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize crypto components: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(components, transactionRepo, &cfg.Gateway, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.gateway,
		deps.services.transactionMetadata,
		cfg.Gateway.GatewayURL,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeCryptoComponents sets up the key store, the signer and the message codec.
// Both key files are loaded eagerly so that a misconfigured key fails startup.
func initializeCryptoComponents(settings *config.GatewaySettings, log logger.Logger) (*cryptoComponents, error) {
	decoder, err := cryptography.NewRSAKeyDecoder(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key decoder: %w", err)
	}

	signer, err := cryptography.NewRSASigner(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create signer: %w", err)
	}

	keyStore, err := cryptography.NewFileKeyStore(settings.PrivateKeyPath, settings.PublicKeyPath, decoder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key store: %w", err)
	}
	if _, err := keyStore.PrivateKey(); err != nil {
		return nil, err
	}
	if _, err := keyStore.PublicKey(); err != nil {
		return nil, err
	}

	location, err := settings.Location()
	if err != nil {
		return nil, err
	}

	codec, err := protocol.NewMessageCodec(signer, log, protocol.WithLocation(location))
	if err != nil {
		return nil, fmt.Errorf("failed to create message codec: %w", err)
	}

	log.Info("Cryptographic components initialized successfully")
	return &cryptoComponents{
		signer:   signer,
		keyStore: keyStore,
		codec:    codec,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	components *cryptoComponents,
	transactionRepo payment.TransactionRepository,
	settings *config.GatewaySettings,
	log logger.Logger,
) (*appServices, error) {
	gatewayService, err := app.NewGatewayService(
		components.codec, components.signer, components.keyStore,
		transactionRepo, settings, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway service: %w", err)
	}

	transactionMetadataService, err := app.NewTransactionMetadataService(transactionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction metadata service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		gateway:             gatewayService,
		transactionMetadata: transactionMetadataService,
	}, nil
}

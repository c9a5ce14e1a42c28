package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/rentmart/rentmart/internal/handlers"
	"github.com/rentmart/rentmart/internal/jwt"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/middlewares"
	"github.com/rentmart/rentmart/internal/repositories"
	"github.com/rentmart/rentmart/internal/services"
	"github.com/rentmart/rentmart/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title rentmart API
// @version 1.0.0
// @description Rental marketplace with user wallets, a product catalog and an append-only transaction ledger
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		uploadsDir, logLevel,
		jwtSecret, jwtExp, cacheTTL,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		uploadsDir, logLevel,
		jwtSecret, jwtExp, cacheTTL,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, upload, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	kafkaBrokers []string, kafkaTopic string,
	uploadsDir, logLevel string,
	jwtSecretKey string, jwtExpSecond int, cacheTTLSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	uploadsDir = getEnv("APP_UPLOADS_DIR", "uploads")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "rentmart")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheTTLSecond, err = strconv.Atoi(getEnv("REDIS_PRODUCT_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config, the ledger event stream is optional
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "ledger-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, kafkaTopic string,
	uploadsDir, logLevel string,
	jwtSecretKey string, jwtExpSecond, cacheTTLSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Apply migrations
	if err := repositories.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for ledger events, nil when no brokers are configured
	var ledgerWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		ledgerWriter = kw
		logger.Log.Infof("Kafka ledger events enabled, topic %s", kafkaTopic)
	} else {
		logger.Log.Info("Kafka brokers not configured, ledger events disabled")
	}

	// Image storage for product uploads
	images, err := storage.NewImageStore(uploadsDir)
	if err != nil {
		return fmt.Errorf("failed to create uploads directory: %w", err)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	productReadRepo := repositories.NewProductReadRepository(db)
	productWriteRepo := repositories.NewProductWriteRepository(db)
	productCacheRepo := repositories.NewProductCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)
	revokedTokenRepo := repositories.NewRevokedTokenRepository(rdb)
	walletRepo := repositories.NewWalletRepository(db)
	transactionReadRepo := repositories.NewTransactionReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, jwtSvc, revokedTokenRepo)
	productService := services.NewProductService(productReadRepo, productWriteRepo, productCacheRepo, images)
	walletService := services.NewWalletService(walletRepo, walletRepo, transactionReadRepo, ledgerWriter)
	rentalService := services.NewRentalService(productReadRepo, walletRepo, ledgerWriter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(authService, jwtSvc)
	dashboardHandler := handlers.NewDashboardHandler(productService)
	adminDashboardHandler := handlers.NewAdminDashboardHandler(productService)
	productHandler := handlers.NewProductHandler(productService)
	addProductFormHandler := handlers.NewAddProductFormHandler()
	addProductHandler := handlers.NewAddProductHandler(productService, images)
	editProductFormHandler := handlers.NewEditProductFormHandler(productService)
	editProductHandler := handlers.NewEditProductHandler(productService, images)
	deleteProductHandler := handlers.NewDeleteProductHandler(productService)
	accountHandler := handlers.NewAccountHandler(userReadRepo)
	topUpHandler := handlers.NewTopUpHandler(walletService)
	historyHandler := handlers.NewHistoryHandler(walletService)
	rentHandler := handlers.NewRentHandler(productService, walletService)
	confirmRentHandler := handlers.NewConfirmRentHandler(rentalService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)
	r.Get("/logout", logoutHandler)
	r.Get("/product/{id}", productHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwtSvc, revokedTokenRepo)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/dashboard", dashboardHandler)
		r.Get("/account", accountHandler)
		r.Post("/topup", topUpHandler)
		r.Get("/history", historyHandler)
		r.Get("/rent/{id}", rentHandler)
		r.Post("/confirmRent/{id}", confirmRentHandler)
	})

	// Admin-only routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middlewares.AdminMiddleware())
		r.Get("/admin", adminDashboardHandler)
		r.Get("/addProduct", addProductFormHandler)
		r.Post("/addProduct", addProductHandler)
		r.Get("/editProduct/{id}", editProductFormHandler)
		r.Post("/editProduct/{id}", editProductHandler)
		r.Get("/deleteProduct/{id}", deleteProductHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

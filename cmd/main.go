package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/sbilibin2017/hub-accounts/docs"
	"github.com/sbilibin2017/hub-accounts/internal/handlers"
	"github.com/sbilibin2017/hub-accounts/internal/hashers"
	"github.com/sbilibin2017/hub-accounts/internal/jwt"
	"github.com/sbilibin2017/hub-accounts/internal/logger"
	"github.com/sbilibin2017/hub-accounts/internal/middlewares"
	"github.com/sbilibin2017/hub-accounts/internal/repositories"
	"github.com/sbilibin2017/hub-accounts/internal/services"
	"github.com/sbilibin2017/hub-accounts/internal/transaction"
	"github.com/sbilibin2017/hub-accounts/migrations"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds the service configuration read from the environment.
type config struct {
	// Application
	AppHost     string        `env:"APP_HOST" envDefault:"localhost"`
	AppPort     string        `env:"APP_PORT" envDefault:"8080"`
	GRPCPort    string        `env:"APP_GRPC_PORT" envDefault:"50051"`
	LogLevel    string        `env:"APP_LOG_LEVEL" envDefault:"info"`
	PageSize    int           `env:"APP_PAGE_SIZE" envDefault:"20"`
	CORSOrigins []string      `env:"APP_CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	HSTSMaxAge  time.Duration `env:"APP_HSTS_MAX_AGE" envDefault:"8760h"`

	// PostgreSQL
	PGHost         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PGPort         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PGUser         string `env:"POSTGRES_USER" envDefault:"user"`
	PGPassword     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	PGDB           string `env:"POSTGRES_DB" envDefault:"database"`
	PGMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	PGMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`

	// Redis
	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisPoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"hub-accounts.events"`
	KafkaAsync   bool     `env:"KAFKA_ASYNC" envDefault:"false"`

	// Auth
	JWTSecretKey       string        `env:"JWT_SECRET_KEY" envDefault:"my_super_secret_key"`
	JWTAccessLifetime  time.Duration `env:"JWT_ACCESS_LIFETIME" envDefault:"5m"`
	JWTRefreshLifetime time.Duration `env:"JWT_REFRESH_LIFETIME" envDefault:"4800h"`
	PBKDF2Iterations   int           `env:"PASSWORD_PBKDF2_ITERATIONS" envDefault:"600000"`
}

func (c config) postgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// @title hub-accounts API
// @version 1.0.0
// @description Accounts service: hub user profiles, registration and JWT authentication
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file, when it exists,
// and parses the configuration from the environment.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka writer, HTTP and gRPC servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Apply migrations
	dsn := cfg.postgresDSN()
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)
	if err := migrations.Up(dsn); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer connects lazily on the first message
	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		Async:                  cfg.KafkaAsync,
	}
	if cfg.KafkaAsync {
		kafkaWriter.Completion = func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("Failed to deliver account events", "count", len(messages), "error", err)
			}
		}
	}
	defer kafkaWriter.Close()

	// Initialize JWT and password hashers
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithAccessLifetime(cfg.JWTAccessLifetime),
		jwt.WithRefreshLifetime(cfg.JWTRefreshLifetime),
	)
	hasher := hashers.Default(cfg.PBKDF2Iterations)

	// Initialize repositories
	tx := transaction.New(db)
	userReadRepo := repositories.NewUserReadRepository(db, transaction.FromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, transaction.FromContext)
	hubUserReadRepo := repositories.NewHubUserReadRepository(db, transaction.FromContext)
	hubUserWriteRepo := repositories.NewHubUserWriteRepository(db, transaction.FromContext)
	blacklistRepo := repositories.NewTokenBlacklistRepository(rdb)

	// Initialize services
	accountService := services.NewAccountService(
		tx, userReadRepo, userWriteRepo, hubUserReadRepo, hubUserWriteRepo, hasher, kafkaWriter, cfg.PageSize,
	)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, hubUserReadRepo, hasher, tokens, blacklistRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.SecurityHeaders(cfg.HSTSMaxAge))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/accounts/register", handlers.NewRegisterHandler(accountService))
		r.Post("/token", handlers.NewLoginHandler(authService))
		r.Post("/token/refresh", handlers.NewRefreshHandler(authService))
		r.Post("/token/blacklist", handlers.NewLogoutHandler(authService))
		r.Get("/hub-users", handlers.NewListHubUsersHandler(accountService))
		r.Get("/hub-users/{slug}", handlers.NewGetHubUserHandler(accountService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))
			r.Get("/accounts/me", handlers.NewGetMeHandler(accountService))
			r.Patch("/accounts/me", handlers.NewPatchMeHandler(accountService))
			r.Delete("/accounts/me", handlers.NewDeleteMeHandler(accountService))
			r.Put("/accounts/me/email", handlers.NewUpdateEmailHandler(accountService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// gRPC health server
	grpcListener, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", grpcListener.Addr())
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		logger.Log.Errorw("server failed, stopping", "error", serveErr)
	}

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	logger.Log.Info("Servers stopped gracefully")
	return serveErr
}

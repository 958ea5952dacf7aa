// internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"customer-datatable/internal/config"
	"customer-datatable/internal/db"
	customerHandler "customer-datatable/internal/handlers/customer"
	"customer-datatable/internal/middleware"
	"customer-datatable/internal/pkg/ratelimit"
	"customer-datatable/internal/repository/postgres"
	customersvc "customer-datatable/internal/service/customer"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger

	httpServer  *http.Server
	pool        *pgxpool.Pool
	redisClient *redis.Client
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{cfg: cfg, engine: gin.New(), logger: logger}
}

// Init connects to the backing stores and wires the routes.
func (s *Server) Init(ctx context.Context) error {
	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.pool = pool
	s.logger.Info("connected to PostgreSQL", zap.String("host", s.cfg.DB.Host), zap.String("database", s.cfg.DB.Name))

	// ----- Redis -----
	if s.cfg.RateLimitEnabled() {
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			PoolSize: 10,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		s.redisClient = redisClient
		s.logger.Info("connected to Redis", zap.String("addr", s.cfg.RedisAddr))
	}

	s.Routes(postgres.NewCustomerRepository(pool))

	s.httpServer = &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return nil
}

// Start serves HTTP until Shutdown is called. Init must have succeeded first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("server not initialized")
	}

	// ----- Start HTTP -----
	s.logger.Info("server is running", zap.String("addr", s.cfg.HTTPAddr), zap.String("env", s.cfg.Env))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Routes installs middleware and handlers on the engine using repo as the record store.
func (s *Server) Routes(repo *postgres.CustomerRepository) http.Handler {
	// ----- Services -----
	customerService := customersvc.NewCustomerService(repo, s.logger)

	// ----- Handlers -----
	customerHandlerInst := customerHandler.NewCustomerHandler(customerService, s.logger)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.LoggingMiddleware(s.logger),
		middleware.RecoveryMiddleware(s.logger),
		middleware.CORSMiddleware(s.cfg.CORSOrigins),
	)
	if s.redisClient != nil {
		limiter := ratelimit.NewRateLimiter(s.redisClient, s.cfg.RateLimitRequests, s.cfg.RateLimitWindow)
		s.engine.Use(middleware.RateLimitMiddleware(limiter, s.logger))
	}

	// ----- Router -----
	SetupRouter(s.engine, &Handlers{
		CustomerHandler: customerHandlerInst,
		DB:              repo,
	})

	return s.engine
}

// Shutdown stops accepting requests, waits for in-flight ones and closes the stores.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}

	return errors.Join(errs...)
}

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"placedir/src/helper/env"
	"placedir/src/infra/nominatim"
	"placedir/src/infra/postgres"
	"placedir/src/infra/redis"
	"placedir/src/repositories"
	"placedir/src/services/directory"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	httpadapter "placedir/src/adapters/http"
)

func main() {
	log.SetOutput(os.Stdout)
	log.Println("Starting directory API server with Uber Fx...")

	app := fx.New(
		// Providers
		fx.Provide(
			newLogger,
			newSQLClient,
			newRedisClient,
			newGeocoder,
			newEstablishmentRepository,
			newCachedEstablishmentRepository,
			newDirectoryService,
			newServer,
		),

		// Invocations
		fx.Invoke(registerCacheProbe),
		fx.Invoke(registerServerHooks),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	<-app.Done()
}

func newLogger() *slog.Logger {
	logLevel := env.GetString("LOG_LEVEL", "info")
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// newSQLClient configures and returns a pgxpool connection pool.
func newSQLClient() (*pgxpool.Pool, error) {
	dbHost := env.MustGetString("DB_HOST")
	dbPort := env.GetString("DB_PORT", "5432")
	dbname := env.MustGetString("DB_NAME")
	dbUser := env.MustGetString("DB_USER")
	dbPassword := env.MustGetString("DB_PASSWORD")
	maxConnections := env.GetInt("DB_MAX_POOL_CONNECTIONS", 25)

	return postgres.NewPostgresClient(dbHost, dbPort, dbname, dbUser, dbPassword, maxConnections)
}

func newRedisClient() *redis.RedisClient {
	redisAddr := env.MustGetString("REDIS_ADDR")
	redisPoolSize := env.GetInt("REDIS_POOL_SIZE", 50)
	redisDefaultTTLSeconds := env.GetInt("REDIS_DEFAULT_TTL_SECONDS", 120)
	redisDefaultTTL := time.Duration(redisDefaultTTLSeconds) * time.Second

	return redis.NewRedisClient(redisAddr, redisPoolSize, redisDefaultTTL)
}

func newGeocoder() directory.Geocoder {
	userAgent := env.GetString("GEOCODER_USER_AGENT", "placedir/1.0 (contact@taracdo.com)")
	return nominatim.NewClient(userAgent)
}

func newEstablishmentRepository(pool *pgxpool.Pool) *repositories.EstablishmentRepository {
	return repositories.NewEstablishmentRepository(pool)
}

func newCachedEstablishmentRepository(
	repository *repositories.EstablishmentRepository,
	redisClient *redis.RedisClient,
	logger *slog.Logger,
) *repositories.CachedEstablishmentRepository {
	return repositories.NewCachedEstablishmentRepository(repository, redisClient, logger)
}

func newDirectoryService(
	cachedRepository *repositories.CachedEstablishmentRepository,
	geocoder directory.Geocoder,
	logger *slog.Logger,
) *directory.DirectoryService {
	return directory.NewDirectoryService(cachedRepository, geocoder, logger)
}

func newServer(
	logger *slog.Logger,
	directoryService *directory.DirectoryService,
) *httpadapter.Server {
	port := env.GetInt("SERVER_PORT", 3000)
	staticDir := env.GetString("STATIC_DIR", "./public")

	return httpadapter.NewServer(logger, port, directoryService, staticDir)
}

// registerCacheProbe pings Redis at startup. The listing cache
// degrades to Postgres when Redis is unreachable, so a failed ping is
// logged, not fatal.
func registerCacheProbe(lc fx.Lifecycle, logger *slog.Logger, redisClient *redis.RedisClient) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := redisClient.HealthCheck(ctx); err != nil {
				logger.Warn("Redis unreachable at startup, serving listings from Postgres only", "error", err)
			}
			return nil
		},
	})
}

// registerServerHooks registers lifecycle hooks for the HTTP server.
func registerServerHooks(lc fx.Lifecycle, srv *httpadapter.Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Server failed: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			log.Println("Shutting down server...")
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("Server forced to shutdown: %v", err)
				return err
			}
			log.Println("Server exited gracefully")
			return nil
		},
	})
}

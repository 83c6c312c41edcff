package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"placedir/src/adapters/kafka/consumers"
	"placedir/src/helper/env"
	"placedir/src/infra/kafka"
	"placedir/src/infra/nominatim"
	"placedir/src/infra/postgres"
	"placedir/src/infra/redis"
	"placedir/src/repositories"
	"placedir/src/services/directory"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

func main() {
	log.SetOutput(os.Stdout)
	log.Println("Starting establishment import consumer with Uber Fx...")

	app := fx.New(
		// Providers
		fx.Provide(
			newLogger,
			newSQLClient,
			newRedisClient,
			newKafkaClient,
			newEstablishmentRepository,
			newCachedEstablishmentRepository,
			newDirectoryService,
			newImportConsumer,
		),

		// Invocations
		fx.Invoke(startConsumer),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start consumer application: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Shutting down import consumer...")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := app.Stop(stopCtx); err != nil {
		log.Printf("Failed to stop application gracefully: %v", err)
	}

	log.Println("Import consumer shutdown complete")
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

func newKafkaClient() (*kafka.KafkaClient, error) {
	brokers := env.MustGetString("KAFKA_BROKERS")
	groupID := env.MustGetString("KAFKA_IMPORT_CONSUMER_GROUP_ID")
	batchSize := env.GetInt("KAFKA_BATCH_SIZE", 100)

	return kafka.NewKafkaClient(brokers, groupID, batchSize)
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
	logger *slog.Logger,
) *directory.DirectoryService {
	userAgent := env.GetString("GEOCODER_USER_AGENT", "placedir/1.0 (contact@taracdo.com)")
	return directory.NewDirectoryService(cachedRepository, nominatim.NewClient(userAgent), logger)
}

func newImportConsumer(
	logger *slog.Logger,
	directoryService *directory.DirectoryService,
) *consumers.EstablishmentImportConsumer {
	return consumers.NewEstablishmentImportConsumer(logger, directoryService)
}

func startConsumer(
	lc fx.Lifecycle,
	logger *slog.Logger,
	kafkaClient *kafka.KafkaClient,
	importConsumer *consumers.EstablishmentImportConsumer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			topic := env.GetString("KAFKA_IMPORT_CONSUMER_TOPIC", "establishments.import")
			logger.Info("Starting establishment import consumer", "topic", topic)

			go func() {
				if err := importConsumer.Start(ctx, kafkaClient, topic); err != nil {
					logger.Error("Consumer failed", "error", err)
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down Kafka client...")
			if err := kafkaClient.Close(); err != nil {
				logger.Error("Failed to close Kafka client", "error", err)
				return err
			}
			logger.Info("Kafka client shut down gracefully")
			return nil
		},
	})
}

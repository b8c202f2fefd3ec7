package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/bootstrap"
	"github.com/Domenick1991/travelbooking/internal/cache"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/service/travel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Travel.PackagesCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	packageRepo := repository.NewTravelPackageRepository(pool)
	destinationRepo := repository.NewDestinationRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)

	travelService := travel.NewTravelService(
		packageRepo,
		destinationRepo,
		activityRepo,
		passengerRepo,
		redisCache,
		producer,
		cfg.Kafka.SignupTopic,
		time.Duration(cfg.Travel.SignupLockTTLSeconds)*time.Second,
		travel.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, travelService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

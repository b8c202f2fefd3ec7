package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/cache"
	"github.com/Domenick1991/travelbooking/internal/email"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Travel.PackagesCacheTTLSeconds)*time.Second)

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
		nil,
		cfg.Kafka.SignupTopic,
		time.Duration(cfg.Travel.SignupLockTTLSeconds)*time.Second,
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, emailSender.Send); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	refreshTicker := time.NewTicker(time.Duration(cfg.Worker.CacheRefreshMinutes) * time.Minute)
	defer refreshTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-refreshTicker.C:
			if err := travelService.RefreshPackageCache(ctx); err != nil {
				log.Printf("refresh package cache error: %v", err)
				continue
			}
			log.Println("package cache refreshed")
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}

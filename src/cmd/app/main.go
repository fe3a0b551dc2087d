package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleet-service/src/internal/config"
	deliveryMessaging "fleet-service/src/internal/delivery/messaging"
	"fleet-service/src/pkg/log"

	"github.com/hibiken/asynq"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "FLEET_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("kafka.consumer_group", "fleet-service")
	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	config.NewKafkaConfig(viperConfig)
	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	geoService, err := config.NewGeoService(viperConfig)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to init geo service: %v", err), "main", "")
		geoService = &config.GeoService{}
	}
	insightClient := config.NewInsightClient(viperConfig, logger)
	asynqClient := config.NewAsynqClient(viperConfig)
	asynqServer := config.NewAsynqServer(viperConfig)
	asynqMux := asynq.NewServeMux()
	app := config.NewFiber(viperConfig)

	config.Bootstrap(&config.BootstrapConfig{
		DB:          db,
		App:         app,
		Log:         logger,
		Validate:    validate,
		Config:      viperConfig,
		Producer:    producer,
		Redis:       redisClient,
		Geoservice:  geoService,
		Insight:     insightClient,
		AsynqClient: asynqClient,
		Async:       asynqMux,
	})

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	go func() {
		if err := deliveryMessaging.ConsumeTripRecorded(consumerCtx, viperConfig, logger, redisClient); err != nil {
			logger.Error("main", fmt.Sprintf("Trip consumer stopped: %v", err), "main", "")
		}
	}()

	go func() {
		if err := asynqServer.Run(asynqMux); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start asynq server: %v", err), "main", "")
		}
	}()

	go func() {
		webPort := viperConfig.GetInt("web.port")
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("main", "Server fleet-service is shutting down...", "gracefull", "")

	_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stopConsumer()
	asynqServer.Shutdown()
	asynqClient.Close()
	if producer != nil {
		producer.Close()
	}
	if err := app.Shutdown(); err != nil {
		logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "gracefull", "")
}

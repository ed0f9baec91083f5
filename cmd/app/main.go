package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"canteen/cmd"
	"canteen/internal/adapters/in/http"
	"canteen/internal/adapters/out/eventbus"
	"canteen/internal/adapters/out/kafkarelay"
	"canteen/internal/adapters/out/postgres/orderrepo"
	"canteen/internal/adapters/out/postgres/staffdir"
	"canteen/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	broadcaster := eventbus.NewBroadcaster()
	defer broadcaster.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, broadcaster)

	relayCtx, stopRelay := context.WithCancel(context.Background())
	defer stopRelay()
	if configs.KafkaHost != "" {
		relay := kafkarelay.NewRelay([]string{configs.KafkaHost}, configs.KafkaOrderEventsTopic)
		relay.Start(relayCtx, broadcaster)
		defer relay.Close()
	}

	jobManager := jobs.NewJobManager(
		app.CreateGetOrderStatsQueryHandler(),
		broadcaster,
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventsTopic: goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&staffdir.StaffDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := http.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateCancelOrderItemsCommandHandler(),
		app.CreateUpdateItemStatusCommandHandler(),
		app.CreateRejectOrderItemCommandHandler(),
		app.CreateCompleteOrderItemCommandHandler(),
		app.CreateOverrideOrderStatusCommandHandler(),
		app.CreateProcessRefundCommandHandler(),
		app.CreateConfirmPaymentCommandHandler(),
		app.CreateGetUserOrdersQueryHandler(),
		app.CreateGetKitchenOrdersQueryHandler(),
		app.CreateGetOrderStatsQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.Broadcaster(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

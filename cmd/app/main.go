package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"cakeshop/cmd"
	server "cakeshop/internal/adapters/in/http"
	"cakeshop/internal/adapters/out/postgres/cakerepo"
	"cakeshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetSalesSummaryQueryHandler(),
		app.SalesDashboard(),
		configs.DashboardSnapshotPath,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
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
		DashboardSnapshotPath: goDotEnvVariable("DASHBOARD_SNAPSHOT_PATH"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(&cakerepo.OrderDTO{}, &cakerepo.DecorationDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	placeOrderHandler, err := app.CreatePlaceOrderCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create place order handler: %v", err)
	}
	setBasePriceHandler, err := app.CreateSetBasePriceCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create set base price handler: %v", err)
	}
	resetPricesHandler, err := app.CreateResetPricesCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create reset prices handler: %v", err)
	}

	srv := server.NewServer(
		placeOrderHandler,
		setBasePriceHandler,
		resetPricesHandler,
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetSalesSummaryQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	srv.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lastmile/cmd"
	lmhttp "lastmile/internal/adapters/in/http"
	"lastmile/internal/adapters/out/postgres/agentrepo"
	"lastmile/internal/adapters/out/postgres/shipmentrepo"
	"lastmile/internal/jobs"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	app := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		app.CreatePurgeExpiredOTPsCommandHandler(),
		app.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		SMTPHost:     goDotEnvVariable("SMTP_HOST"),
		SMTPPort:     goDotEnvVariable("SMTP_PORT"),
		SMTPUser:     goDotEnvVariable("SMTP_USER"),
		SMTPPassword: goDotEnvVariable("SMTP_PASSWORD"),
		SMTPFrom:     goDotEnvVariable("SMTP_FROM"),
	}

	if digits := goDotEnvVariable("OTP_DIGITS"); digits != "" {
		parsed, err := strconv.Atoi(digits)
		if err != nil {
			log.Fatalf("Invalid OTP_DIGITS: %v", err)
		}
		config.OTPDigits = parsed
	}

	if ttl := goDotEnvVariable("OTP_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			log.Fatalf("Invalid OTP_TTL: %v", err)
		}
		config.OTPTTL = parsed
	}

	return config
}

func goDotEnvVariable(key string) string {
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}

func openDatabase(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the HTTP layer maps to 409.
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &agentrepo.AgentDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	router, err := lmhttp.NewOpenAPIRouter()
	if err != nil {
		log.Fatalf("Failed to load API contract: %v", err)
	}
	e.Use(lmhttp.ValidationMiddleware(router))

	server := lmhttp.NewServer(
		app.CreateIssueOTPCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateRegisterAgentCommandHandler(),
		app.CreateGetAgentHistoryQueryHandler(),
		app.CreateAuthenticateAgentQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

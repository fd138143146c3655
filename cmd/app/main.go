package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fooddonation/cmd"
	httpadapter "fooddonation/internal/adapters/in/http"
	postgresadapter "fooddonation/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	if err := postgresadapter.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:           goDotEnvVariable("JWT_SECRET"),
		CloudinaryCloudName: goDotEnvVariable("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    goDotEnvVariable("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: goDotEnvVariable("CLOUDINARY_API_SECRET"),
		OTPTTLMinutes:       goDotEnvVariable("OTP_TTL_MINUTES"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	doc, err := httpadapter.LoadOpenAPISpec(context.Background())
	if err != nil {
		log.Fatalf("Failed to load OpenAPI spec: %v", err)
	}
	e.GET("/openapi.json", httpadapter.OpenAPIHandler(doc))

	server := httpadapter.NewServer(
		app.CreateCreateDonationCommandHandler(),
		app.CreateSubmitDonationRequestCommandHandler(),
		app.CreateApproveDonationRequestCommandHandler(),
		app.CreateSchedulePickupCommandHandler(),
		app.CreateSendOtpCommandHandler(),
		app.CreateVerifyOtpCommandHandler(),
		app.CreateCompleteDonationCommandHandler(),
		app.CreateSubmitVolunteerRequestCommandHandler(),
		app.CreateAcceptVolunteerRequestCommandHandler(),
		app.CreateGetOpenDonationsQueryHandler(),
		app.CreateGetNgoRosterQueryHandler(),
		app.ProofStorage(),
	)

	api := e.Group("/api/v1", httpadapter.Auth([]byte(configs.JWTSecret)))
	server.RegisterRoutes(api)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"officeorder/cmd"
	_ "officeorder/docs"
	httpadapter "officeorder/internal/adapters/in/http"
	"officeorder/internal/adapters/out/postgres/auditrepo"
	"officeorder/internal/adapters/out/postgres/sessionrepo"
	"officeorder/internal/generated/servers"
	"officeorder/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to create composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateExpireSessionsCommandHandler(),
		sessionTTL(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		RegistryBaseURL: goDotEnvVariable("REGISTRY_BASE_URL"),
		EnvelopeSecret:  goDotEnvVariable("ENVELOPE_SECRET"),
		RouteToken:      goDotEnvVariable("ROUTE_TOKEN"),
		SessionTTL:      goDotEnvVariable("SESSION_TTL"),
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

// sessionTTL parses the idle-session TTL, defaulting to two hours when the
// variable is absent or unparsable.
func sessionTTL(configs cmd.Config) time.Duration {
	ttl, err := time.ParseDuration(configs.SessionTTL)
	if err != nil || ttl <= 0 {
		return 2 * time.Hour
	}
	return ttl
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&sessionrepo.SessionDTO{}, &auditrepo.AuditEntryDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	srv := httpadapter.NewServer(
		app.CreateOpenSessionCommandHandler(),
		app.CreateApplyEditCommandHandler(),
		app.CreateSaveDraftCommandHandler(),
		app.CreateSubmitOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateSwitchTemplateCommandHandler(),
		app.CreateRequestPreviewCommandHandler(),
		app.CreateClosePreviewCommandHandler(),
		app.CreateGetSessionStateQueryHandler(),
		app.CreateGetEmployeeSessionsQueryHandler(),
		app.CreateGetCCRolesQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, srv, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"pigeonpost/cmd"
	_ "pigeonpost/docs"
	httpin "pigeonpost/internal/adapters/in/http"
	"pigeonpost/internal/adapters/out/postgres/carrierrepo"
	"pigeonpost/internal/adapters/out/postgres/clientrepo"
	"pigeonpost/internal/adapters/out/postgres/letterrepo"
	"pigeonpost/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Pigeon Post API
//	@version		1.0
//	@description	Letter delivery by carrier pigeon: clients, carriers and the letter lifecycle.
//	@BasePath		/api/v1

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateGetStatisticsQueryHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		UploadsDir: goDotEnvVariable("UPLOADS_DIR"),
	}
	if config.UploadsDir == "" {
		config.UploadsDir = "uploads"
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
		configs.DBName, configs.DBSslMode,
	)

	// TranslateError maps driver duplicate-key failures onto
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&carrierrepo.CarrierDTO{},
		&clientrepo.ClientDTO{},
		&letterrepo.LetterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	server := httpin.NewServer(httpin.Handlers{
		CreateCarrier: app.CreateCreateCarrierCommandHandler(),
		EditCarrier:   app.CreateEditCarrierCommandHandler(),
		RetireCarrier: app.CreateRetireCarrierCommandHandler(),
		DeleteCarrier: app.CreateDeleteCarrierCommandHandler(),

		CreateClient: app.CreateCreateClientCommandHandler(),
		EditClient:   app.CreateEditClientCommandHandler(),
		DeleteClient: app.CreateDeleteClientCommandHandler(),

		CreateLetter:       app.CreateCreateLetterCommandHandler(),
		ChangeLetterStatus: app.CreateChangeLetterStatusCommandHandler(),
		EditLetterMessage:  app.CreateEditLetterMessageCommandHandler(),
		DeleteLetter:       app.CreateDeleteLetterCommandHandler(),

		GetLetters:       app.CreateGetLettersQueryHandler(),
		GetLetter:        app.CreateGetLetterQueryHandler(),
		GetCarriers:      app.CreateGetCarriersQueryHandler(),
		GetCarrier:       app.CreateGetCarrierQueryHandler(),
		GetClients:       app.CreateGetClientsQueryHandler(),
		GetClient:        app.CreateGetClientQueryHandler(),
		GetClientLetters: app.CreateGetClientLettersQueryHandler(),
		GetStatistics:    app.CreateGetStatisticsQueryHandler(),
	}, configs.UploadsDir)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	server.RegisterRoutes(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

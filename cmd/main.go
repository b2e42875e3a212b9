package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	assistantapp "github.com/worksy/worksy-api/application/assistant"
	bookingapp "github.com/worksy/worksy-api/application/booking"
	catalogapp "github.com/worksy/worksy-api/application/catalog"
	messageapp "github.com/worksy/worksy-api/application/message"
	userapp "github.com/worksy/worksy-api/application/user"
	"github.com/worksy/worksy-api/cmd/config"
	_ "github.com/worksy/worksy-api/docs"
	"github.com/worksy/worksy-api/metrics"
	bookingRepo "github.com/worksy/worksy-api/repository/booking"
	messageRepo "github.com/worksy/worksy-api/repository/message"
	serviceRepo "github.com/worksy/worksy-api/repository/service"
	userRepo "github.com/worksy/worksy-api/repository/user"
	"github.com/worksy/worksy-api/thirdparty/openai"
	"github.com/worksy/worksy-api/transport"
	"github.com/worksy/worksy-api/utils/logger"
	"go.uber.org/zap"
)

// @title WORKSY API
// @version 1.0
// @description Worksy marketplace API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.Bool("demo_mode", cfg.Catalog.DemoMode))

	// Connect to database. In demo mode the catalog serves its built-in
	// sample set and the server may come up without a datastore; the other
	// services then fail their calls instead of the whole process.
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		if !cfg.Catalog.DemoMode {
			logger.Fatal("err connect db", zap.Error(err))
		}
		logger.Warn("running without database", zap.Error(err))
		db = nil
	}

	if db != nil {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	metrics.Register()

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ServiceRepo := serviceRepo.NewServiceRepository(db)
	BookingRepo := bookingRepo.NewBookingRepository(db)
	MessageRepo := messageRepo.NewMessageRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(UserRepo)
	CatalogApp := catalogapp.NewCatalogApp(cfg, ServiceRepo)
	BookingApp := bookingapp.NewBookingApp(BookingRepo)
	MessageApp := messageapp.NewMessageApp(MessageRepo)
	AssistantApp := assistantapp.NewAssistantApp(cfg, openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model))

	httpTransport := transport.NewTransport(UserApp, CatalogApp, BookingApp, MessageApp, AssistantApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

package app

import (
	"context"
	"fmt"
	"time"

	"enlistco_backend/internal/billing"
	"enlistco_backend/internal/config"
	"enlistco_backend/internal/email"
	"enlistco_backend/internal/handlers"
	"enlistco_backend/internal/logger"
	"enlistco_backend/internal/middleware"
	"enlistco_backend/internal/models"
	"enlistco_backend/internal/repositories"
	"enlistco_backend/internal/routes"
	"enlistco_backend/internal/services"
	"enlistco_backend/internal/validator"
	"enlistco_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run wires the whole application and blocks serving HTTP.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	log := logger.GetLogger()

	db, err := initDatabase(cfg)
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}
	log.Info("Database connection established")

	notifier, err := initNotifier(cfg)
	if err != nil {
		return fmt.Errorf("email provider init: %w", err)
	}
	defer notifier.Close()

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	noticeRepo := repositories.NewNoticeRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	if err := seedFirstAdmin(cfg, userRepo); err != nil {
		return fmt.Errorf("admin seed: %w", err)
	}

	alertService := services.NewAlertService(userRepo, notifier)

	alertWorker := workers.NewAlertWorker(alertService, 64)
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	alertWorker.Start(workerCtx)

	billingClient := billing.NewStripeClient(cfg.Billing.StripeKey)

	sc := &services.ServiceContainer{
		UserService:         services.NewUserService(userRepo, notifier),
		PostService:         services.NewPostService(services.GormTx(db), postRepo, noticeRepo, applicationRepo, userRepo, alertWorker),
		ApplicationService:  services.NewApplicationService(applicationRepo, postRepo, userRepo, notifier),
		NoticeService:       services.NewNoticeService(noticeRepo),
		SubscriptionService: services.NewSubscriptionService(paymentRepo, userRepo, billingClient),
		AlertService:        alertService,
	}

	appHandlers := handlers.NewAppHandlers(sc, userRepo, validator.New())

	engine := initRouter(cfg)
	routes.RegisterRoutes(engine, appHandlers)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting HTTP server", "address", address, "env", cfg.Server.Env)
	return engine.Run(address)
}

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	// uuid_generate_v4 backs every primary key default.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.JobPost{},
		&models.ModerationNotice{},
		&models.Application{},
		&models.Payment{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func initNotifier(cfg *config.Config) (email.Provider, error) {
	return email.NewSMTPProvider(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
		ClientURL: cfg.ClientURL,
	})
}

// seedFirstAdmin promotes the configured bootstrap email so a fresh
// deployment has at least one moderator.
func seedFirstAdmin(cfg *config.Config, userRepo repositories.UserRepository) error {
	if cfg.FirstAdminEmail == "" {
		return nil
	}

	err := userRepo.Upsert(&models.User{
		Email: cfg.FirstAdminEmail,
		Name:  "Administrator",
	})
	if err != nil {
		return err
	}

	return userRepo.UpdateFields(cfg.FirstAdminEmail, map[string]interface{}{
		"admin": true,
	})
}

func initRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)
	return engine
}

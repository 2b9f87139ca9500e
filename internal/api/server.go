package api

import (
	"github.com/CampusLancer/admin_service/config"
	"github.com/CampusLancer/admin_service/infra/queue"
	"github.com/CampusLancer/admin_service/internal/api/rest/handlers"
	"github.com/CampusLancer/admin_service/internal/api/rest/middleware"
	"github.com/CampusLancer/admin_service/internal/domain"
	"github.com/CampusLancer/admin_service/internal/helper"
	"github.com/CampusLancer/admin_service/internal/repository"
	"github.com/CampusLancer/admin_service/internal/services"
	"github.com/CampusLancer/admin_service/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatal("database connection error", zap.Error(err))
	}
	log.Info("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	// fixed lock id shared by every instance so only one runs migrations
	const migrateLockID int64 = 20260415

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatal("migration lock error", zap.Error(err))
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Student{},
		&domain.Company{},
		&domain.Category{},
		&domain.Job{},
		&domain.Application{},
		&domain.Contract{},
		&domain.Report{},
	); err != nil {
		log.Fatal("migration error", zap.Error(err))
	}
	log.Info("migration successful")

	seedCategories(db, log)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		log,
	)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	reportRepo := repository.NewReportRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// ---------- Services ----------
	adminSvc := services.NewAdminService(
		userRepo,
		studentRepo,
		companyRepo,
		jobRepo,
		applicationRepo,
		reportRepo,
		kafkaProducer,
		nil,
		log,
	)
	analyticsSvc := services.NewAnalyticsService(
		userRepo,
		companyRepo,
		jobRepo,
		applicationRepo,
		analyticsRepo,
		nil,
		log,
	)

	// ---------- Handler ----------
	app.Use("/api/admin", middleware.AuthMiddleware(authHelper))
	adminHandler := handlers.NewAdminHandler(adminSvc, analyticsSvc)
	adminHandler.SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Info("listening", zap.String("addr", addr))
	log.Fatal("server stopped", zap.Error(app.Listen(addr)))
}

// seedCategories backfills the fixed job taxonomy. FirstOrCreate keeps
// restarts idempotent.
func seedCategories(db *gorm.DB, log *zap.Logger) {
	seed := []domain.Category{
		{Name: "Web Development", Slug: "web-development", Icon: "code"},
		{Name: "Mobile Development", Slug: "mobile-development", Icon: "smartphone"},
		{Name: "Data Science", Slug: "data-science", Icon: "bar-chart"},
		{Name: "UI/UX Design", Slug: "ui-ux-design", Icon: "pen-tool"},
		{Name: "Digital Marketing", Slug: "digital-marketing", Icon: "trending-up"},
		{Name: "Content Writing", Slug: "content-writing", Icon: "edit"},
		{Name: "Business Development", Slug: "business-development", Icon: "briefcase"},
		{Name: "DevOps", Slug: "devops", Icon: "server"},
		{Name: "Cybersecurity", Slug: "cybersecurity", Icon: "shield"},
		{Name: "Graphic Design", Slug: "graphic-design", Icon: "image"},
		{Name: "Project Management", Slug: "project-management", Icon: "clipboard"},
		{Name: "Quality Assurance", Slug: "quality-assurance", Icon: "check-circle"},
	}

	for _, c := range seed {
		c.IsActive = true
		if err := db.Where("slug = ?", c.Slug).FirstOrCreate(&c).Error; err != nil {
			log.Warn("category seed failed", zap.String("slug", c.Slug), zap.Error(err))
		}
	}
}

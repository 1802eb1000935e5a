package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop-backend/internal/auth"
	"github.com/hireloop/hireloop-backend/internal/config"
	"github.com/hireloop/hireloop-backend/internal/database"
	"github.com/hireloop/hireloop-backend/internal/handlers"
	"github.com/hireloop/hireloop-backend/internal/middleware"
	"github.com/hireloop/hireloop-backend/internal/notify"
	"github.com/hireloop/hireloop-backend/internal/services"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside dev)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Error building logger: ", err)
	}
	defer logger.Sync()

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("database connection established")

	// 3. Initialize Core Services (Dependencies)
	codec := auth.NewTokenCodec(cfg.SecretKey, cfg.TokenTTL)
	notifier := notify.NewSMTPNotifier(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, logger)
	matcher := notify.NewAlertMatcher(db, notifier, logger, cfg.NotifyConcurrency)

	studentService := services.NewStudentService(db)
	recruiterService := services.NewRecruiterService(db)
	companyService := services.NewCompanyService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	alertService := services.NewAlertService(db)
	recommendationService := services.NewRecommendationService(db)

	// 4. Initialize Handlers
	studentHandler := handlers.NewStudentHandler(studentService, codec, cfg.UploadDir)
	recruiterHandler := handlers.NewRecruiterHandler(recruiterService, codec)
	companyHandler := handlers.NewCompanyHandler(companyService, cfg.UploadDir)
	jobHandler := handlers.NewJobHandler(jobService, matcher)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	alertHandler := handlers.NewAlertHandler(alertService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	requireAuth := middleware.RequireAuth(codec, logger)
	studentOnly := middleware.RequireRoles(auth.RoleStudent)
	recruiterOnly := middleware.RequireRoles(auth.RoleRecruiter)

	// 6. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		jobseeker := api.Group("/jobseeker")
		{
			jobseeker.POST("/register", studentHandler.Register)
			jobseeker.POST("/login", studentHandler.Login)
			jobseeker.GET("/logout", studentHandler.Logout)
			jobseeker.PUT("/profile/update", requireAuth, studentOnly, studentHandler.UpdateProfile)
		}

		recruiter := api.Group("/recruiter")
		{
			recruiter.POST("/register", recruiterHandler.Register)
			recruiter.POST("/login", recruiterHandler.Login)
			recruiter.GET("/logout", recruiterHandler.Logout)
			recruiter.PUT("/profile/update", requireAuth, recruiterOnly, recruiterHandler.UpdateProfile)
		}

		company := api.Group("/company", requireAuth, recruiterOnly)
		{
			company.POST("/register", companyHandler.Register)
			company.GET("/get", companyHandler.List)
			company.GET("/get/:id", companyHandler.Get)
			company.PUT("/update/:id", companyHandler.Update)
			company.DELETE("/:id/remove", companyHandler.Delete)
		}

		job := api.Group("/job", requireAuth)
		{
			job.POST("/post", recruiterOnly, jobHandler.Post)
			job.GET("/getjobs", studentOnly, jobHandler.List)
			job.GET("/alljobs", recruiterOnly, jobHandler.ListMine)
			job.GET("/job/:id", middleware.RequireRoles(auth.RoleStudent, auth.RoleRecruiter), jobHandler.Get)
			job.POST("/savejob/:id", studentOnly, jobHandler.Save)
			job.POST("/removesavedjob/:id", studentOnly, jobHandler.RemoveSaved)
			job.GET("/savejobs", studentOnly, jobHandler.ListSaved)
			job.DELETE("/:id/removejob", recruiterOnly, jobHandler.Delete)
		}

		application := api.Group("/application", requireAuth)
		{
			application.GET("/apply/:id", studentOnly, applicationHandler.Apply)
			application.GET("/get", studentOnly, applicationHandler.ListMine)
			application.GET("/:id/applicants", recruiterOnly, applicationHandler.Applicants)
			application.POST("/status/:id/update", recruiterOnly, applicationHandler.UpdateStatus)
		}

		api.GET("/recommendations", requireAuth, recommendationHandler.RecommendedJobs)

		user := api.Group("/user", requireAuth, studentOnly)
		{
			user.POST("/create/alert", alertHandler.Create)
			user.GET("/get/alert", alertHandler.Get)
			user.DELETE("/delete/alert", alertHandler.Delete)
		}
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}

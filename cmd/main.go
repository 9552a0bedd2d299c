package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Placify/config"
	"github.com/lshigami/Placify/database"
	adminctrl "github.com/lshigami/Placify/internal/controller/admin"
	authctrl "github.com/lshigami/Placify/internal/controller/auth"
	studentctrl "github.com/lshigami/Placify/internal/controller/student"
	"github.com/lshigami/Placify/internal/logger"
	"github.com/lshigami/Placify/internal/middleware"
	"github.com/lshigami/Placify/internal/model"
	"github.com/lshigami/Placify/internal/repository"
	"github.com/lshigami/Placify/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Placify API
// @version 1.0
// @description Placement-readiness platform backend: timed section tests with scoring, resume quality scoring and rule-based readiness recommendations.
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewSessionRepository,
			repository.NewSectionRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewResumeRepository,
			repository.NewRecommendationRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewTestService,
			service.NewRecommendationService,
			service.NewTestSubmissionService,
			service.NewResumeService,
			service.NewAdminService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			studentctrl.NewStudentController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sessionRepo repository.SessionRepository,
	authController *authctrl.AuthController,
	studentController *studentctrl.StudentController,
	adminController *adminctrl.AdminController,
) {
	api := router.Group("/api")
	{
		// Public endpoints
		api.POST("/login", authController.Login)
		api.POST("/register", authController.Register)
		api.POST("/logout", authController.Logout)
		api.GET("/test_sections", studentController.GetTestSections)
		api.GET("/questions/:section_id", studentController.GetQuestions)

		// Session-gated endpoints
		authed := api.Group("")
		authed.Use(middleware.RequireAuth(sessionRepo))
		{
			authed.GET("/user_info", authController.UserInfo)
			authed.POST("/submit_test", studentController.SubmitTest)
			authed.GET("/user_scores", studentController.GetUserScores)
			authed.GET("/section_performance", studentController.GetSectionPerformance)
			authed.POST("/save_resume", studentController.SaveResume)
			authed.GET("/get_resume", studentController.GetResume)
			authed.GET("/ai_recommendations", studentController.GetRecommendations)
		}

		// Admin-only endpoints
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.RequireAuth(sessionRepo), middleware.RequireAdmin())
		{
			adminGroup.GET("/students", adminController.GetStudents)
			adminGroup.GET("/department_stats", adminController.GetDepartmentStats)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Placify API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.TestSection{},
		&model.Question{},
		&model.TestAttempt{},
		&model.UserResponse{},
		&model.Resume{},
		&model.Recommendation{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func SeedDB(db *gorm.DB) error {
	return database.Seed(db)
}

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sunbittern/config"
	"github.com/lshigami/Sunbittern/database"
	_ "github.com/lshigami/Sunbittern/docs" // Swagger docs
	adminctrl "github.com/lshigami/Sunbittern/internal/controller/admin"
	userctrl "github.com/lshigami/Sunbittern/internal/controller/user"
	"github.com/lshigami/Sunbittern/internal/logger"
	"github.com/lshigami/Sunbittern/internal/middleware"
	"github.com/lshigami/Sunbittern/internal/model"
	"github.com/lshigami/Sunbittern/internal/repository"
	"github.com/lshigami/Sunbittern/internal/service"
	"github.com/lshigami/Sunbittern/internal/session"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Survey Administration & Scoring API
// @version 1.0
// @description Administrators author surveys of typed questions; users take them against an optional time limit; scores and answers are stored per attempt.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			database.NewRedisClient,
			session.NewStore,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewSurveyRepository,
			repository.NewResultRepository,
			repository.NewAvailabilityRepository,
			repository.NewProfileRepository,
		),

		// Services layer
		fx.Provide(
			service.NewSurveyService,
			service.NewSubmissionService,
			service.NewAdminSurveyService,
			service.NewProfileService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewSurveyController,
			adminctrl.NewAdminSurveyController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
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

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	surveyCtrl *userctrl.SurveyController,
	adminCtrl *adminctrl.AdminSurveyController,
) {
	api := router.Group("/api/v1", middleware.Auth(cfg.Auth.JWTSecret))
	{
		api.GET("/surveys", surveyCtrl.ListSurveys)
		api.GET("/surveys/:slug", surveyCtrl.GetSurveyForm)
		api.GET("/surveys/:slug/timer", surveyCtrl.GetTimer)
		api.POST("/surveys/:slug/results", surveyCtrl.SubmitSurvey)

		api.GET("/results/:result_id", surveyCtrl.GetResult)
		api.GET("/users/:user_id/results", surveyCtrl.GetUserResults)

		api.GET("/profile", surveyCtrl.GetProfile)
		api.PUT("/profile", surveyCtrl.UpdateProfile)
	}

	adminAPI := router.Group("/api/v1/admin", middleware.Auth(cfg.Auth.JWTSecret), middleware.RequireStaff())
	{
		adminAPI.POST("/surveys", adminCtrl.CreateSurvey)
		adminAPI.POST("/availability", adminCtrl.GrantAvailability)
		adminAPI.GET("/surveys/:slug/results", adminCtrl.ListSurveyResults)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Survey API server starting on port %s", cfg.Server.Port)
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
		&model.Survey{},
		&model.Question{},
		&model.Choice{},
		&model.Availability{},
		&model.Result{},
		&model.Answer{},
		&model.UserProfile{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"studycraft/config"
	"studycraft/database"
	_ "studycraft/docs" // swagger document, generated
	"studycraft/internal/controller"
	"studycraft/internal/logger"
	"studycraft/internal/model"
	"studycraft/internal/repository"
	"studycraft/internal/service"
)

// @title StudyCraft API
// @version 1.0
// @description Study-aid backend: AI-generated study notes and multiple-choice quizzes with grading.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // *gorm.DB
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewStudySessionRepository,
			repository.NewQuizRepository,
			repository.NewQuizQuestionRepository,
		),

		// Services
		fx.Provide(
			service.NewGeminiLLMService,
			service.NewContentGeneratorService,
			service.NewStudySessionService,
			service.NewQuizService,
			service.NewUserService,
			service.NewAuthService,
		),

		// Controllers
		fx.Provide(
			controller.NewStudySessionController,
			controller.NewQuizController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedDemoUser),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(func(ctx *gin.Context) {
		ctx.Set("request_id", uuid.NewString())
		ctx.Next()
	})

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys["request_id"].(string)
		log.Info().
			Str("request_id", requestID).
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

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sessionCtrl *controller.StudySessionController,
	quizCtrl *controller.QuizController,
) {
	api := router.Group("/api")
	{
		sessions := api.Group("/study-sessions")
		sessions.POST("", sessionCtrl.CreateStudySession)
		sessions.GET("", sessionCtrl.GetStudySessions)
		sessions.GET("/:id", sessionCtrl.GetStudySession)
		sessions.DELETE("/:id", sessionCtrl.DeleteStudySession)

		quizzes := api.Group("/quizzes")
		quizzes.GET("", quizCtrl.GetQuizzes)
		quizzes.POST("", quizCtrl.CreateQuiz)
		quizzes.GET("/:id", quizCtrl.GetQuiz)
		quizzes.POST("/:id/answers", quizCtrl.SubmitQuizAnswer)
		quizzes.GET("/:id/results", quizCtrl.GetQuizResults)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("StudyCraft API server starting on port %s", cfg.Server.Port)
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
		&model.StudySession{},
		&model.Quiz{},
		&model.QuizQuestion{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedDemoUser makes sure the demo account exists before the server starts
// taking requests.
func SeedDemoUser(userService service.UserService) error {
	return userService.EnsureDemoUser()
}

package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"

	swagger "github.com/go-swagno/swagno-fiber/swagger"

	"github.com/moodlens/moodlens/internal/api/docs"
	"github.com/moodlens/moodlens/internal/api/handler"
	"github.com/moodlens/moodlens/internal/api/middleware"
	"github.com/moodlens/moodlens/internal/provider"
	"github.com/moodlens/moodlens/internal/repository"
	"github.com/moodlens/moodlens/internal/service"
)

// Dependencies carries everything the routes need
type Dependencies struct {
	EmotionProvider provider.EmotionProvider
	DB              *pgxpool.Pool
	HistoryLimit    int
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "Moodlens API",
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Swagger documentation
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Browser page
	indexHandler := handler.NewIndexHandler()
	r.app.Get("/", indexHandler.Index)

	// Health check endpoints
	var pinger handler.Pinger
	if r.deps != nil && r.deps.DB != nil {
		pinger = r.deps.DB
	}
	healthHandler := handler.NewHealthHandler(pinger)
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	// Only configure prediction routes if dependencies were provided
	if r.deps != nil {
		predictionRepo := repository.NewPredictionRepository(r.deps.DB)
		predictionService := service.NewPredictionService(predictionRepo, r.deps.EmotionProvider)

		predictHandler := handler.NewPredictHandler(predictionService, r.logger)
		historyHandler := handler.NewHistoryHandler(predictionService, r.deps.HistoryLimit, r.logger)

		r.app.Post("/predict", predictHandler.Predict)
		r.app.Get("/history", historyHandler.History)
		r.app.Get("/stats", historyHandler.Stats)
	}
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}

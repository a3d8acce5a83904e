package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-backend/internal/handler/api"
	"hotel-backend/internal/handler/middleware"
	"hotel-backend/internal/handler/validation"
	"hotel-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Health       *api.HealthHandler
	Rooms        *api.RoomHandler
	Clients      *api.ClientHandler
	Reservations *api.ReservationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) error {
	if err := validation.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	rooms := engine.Group("/rooms")
	{
		// static segment before the :id wildcard
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "/available", Handler: h.Rooms.Available},
			{Method: http.MethodGet, Path: "", Handler: h.Rooms.List},
			{Method: http.MethodPost, Path: "", Handler: h.Rooms.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Rooms.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Rooms.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Rooms.Delete},
		})
	}

	clients := engine.Group("/clients")
	{
		addRoutes(clients, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Clients.List},
			{Method: http.MethodPost, Path: "", Handler: h.Clients.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Clients.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Clients.Delete},
		})
	}

	reservations := engine.Group("/reservations")
	{
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservations.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservations.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservations.Cancel},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}

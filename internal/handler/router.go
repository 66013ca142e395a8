package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ticket-booking/internal/handler/api"
	"ticket-booking/internal/handler/middleware"
	"ticket-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Bookings  *api.BookingHandler
	Events    *api.EventHandler
	Assistant *api.AssistantHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, admin *middleware.AdminAuth) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, admin)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// request id is assigned before recovery so panics are logged with it
	engine.Use(logger.LoggingMiddleware())
	engine.Use(logger.Recovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, admin *middleware.AdminAuth) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAdmin := []gin.HandlerFunc{admin.RequireAdmin()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
			{Method: http.MethodGet, Path: "/reference/:reference", Handler: h.Bookings.GetByReference},
			{Method: http.MethodDelete, Path: "/reference/:reference", Handler: h.Bookings.Cancel},
			{Method: http.MethodGet, Path: "/email/:email", Handler: h.Bookings.ListByEmail},
		})

		addRoutes(apiGroup.Group("/events"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Events.List},
			{Method: http.MethodGet, Path: "/search", Handler: h.Events.Search},
			{Method: http.MethodGet, Path: "/upcoming", Handler: h.Events.Upcoming},
			{Method: http.MethodGet, Path: "/available", Handler: h.Events.Available},
			{Method: http.MethodGet, Path: "/category/:category", Handler: h.Events.ByCategory},
			{Method: http.MethodGet, Path: "/venue/:venue", Handler: h.Events.ByVenue},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Events.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Events.Create, Mw: requireAdmin},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Events.Update, Mw: requireAdmin},
			{Method: http.MethodGet, Path: "/:id/audit", Handler: h.Events.Audit, Mw: requireAdmin},
		})

		addRoutes(apiGroup.Group("/ai"), []route{
			{Method: http.MethodPost, Path: "/chat", Handler: h.Assistant.Chat},
			{Method: http.MethodPost, Path: "/book/:eventId", Handler: h.Assistant.BookWithText},
			{Method: http.MethodPost, Path: "/recommendations", Handler: h.Assistant.Recommend},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-rental-api/internal/handler/api"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// MetricsExporter records per-route HTTP metrics and serves the scrape endpoint.
type MetricsExporter interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

type Handlers struct {
	Auth        *api.AuthHandler
	Search      *api.SearchHandler
	Reservation *api.ReservationHandler
	Catalog     *api.CatalogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, recorder MetricsExporter, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, recorder)
	setupRoutes(engine, recorder, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, recorder MetricsExporter) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(recorder))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, recorder MetricsExporter, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(recorder.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/verify", Handler: h.Auth.Verify, Mw: []gin.HandlerFunc{requireAuth}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/search/cars", Handler: h.Search.SearchCars},
			{Method: http.MethodGet, Path: "/offers/:sessionId/:vehicleId", Handler: h.Search.GetOfferDetail, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/shops", Handler: h.Catalog.ListShops},
			{Method: http.MethodGet, Path: "/carmodels", Handler: h.Catalog.ListCarModels},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Confirm},
		})

		mine := apiGroup.Group("/users/reservations")
		mine.Use(requireAuth)
		addRoutes(mine, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListMine},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetByID},
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

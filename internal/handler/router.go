package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pawsalon/internal/handler/api"
	"pawsalon/internal/handler/httperr"
	"pawsalon/internal/handler/middleware"
	"pawsalon/internal/pkg/config"
)

const healthTimeout = 2 * time.Second

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Pinger is satisfied by *pgxpool.Pool; nil skips the database check.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Appointment  *api.AppointmentHandler
	Waitlist     *api.WaitlistHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, gatherer prometheus.Gatherer, db Pinger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, gatherer, db)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, gatherer prometheus.Gatherer, db Pinger) {
	engine.GET("/health", healthCheck(db))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.Get},
		})

		appointments := apiGroup.Group("/appointments")
		addRoutes(appointments, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Appointment.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Appointment.UpdateStatus},
		})

		waitlist := apiGroup.Group("/waitlist")
		addRoutes(waitlist, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Waitlist.Join},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Waitlist.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Waitlist.Cancel},
		})
	}
}

// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				httperr.AbortWithError(c, err, httperr.Response{
					Status: http.StatusServiceUnavailable,
					Error:  "Database unreachable",
					Code:   httperr.CodeInternal,
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Service is healthy",
		})
	}
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

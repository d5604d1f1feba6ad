package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assistance-console/internal/handler/api"
	"assistance-console/internal/handler/middleware"
	"assistance-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	interventionHandler *api.InterventionHandler,
	calendarHandler *api.CalendarHandler,
	lookupHandler *api.LookupHandler,
) {
	RegisterValidators()
	setupMiddleware(engine, cfg)
	setupRoutes(engine, interventionHandler, calendarHandler, lookupHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	interventionHandler *api.InterventionHandler,
	calendarHandler *api.CalendarHandler,
	lookupHandler *api.LookupHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		interventions := apiGroup.Group("/interventions")
		{
			addRoutes(interventions, []route{
				{Method: http.MethodPost, Path: "", Handler: interventionHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: interventionHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: interventionHandler.Replace},
				{Method: http.MethodPost, Path: "/:id/assignment", Handler: interventionHandler.ConfirmAssignment},
				{Method: http.MethodPatch, Path: "/:id/draft", Handler: interventionHandler.PatchDraft},
				{Method: http.MethodGet, Path: "/:id/draft", Handler: interventionHandler.GetDraft},
			})
		}

		calendarGroup := apiGroup.Group("/calendar")
		{
			addRoutes(calendarGroup, []route{
				{Method: http.MethodGet, Path: "/week", Handler: calendarHandler.Week},
				{Method: http.MethodGet, Path: "/statuses", Handler: calendarHandler.Statuses},
			})
		}

		lookups := apiGroup.Group("/lookups")
		{
			addRoutes(lookups, []route{
				{Method: http.MethodGet, Path: "/:kind", Handler: lookupHandler.List},
			})
		}
	}
}

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

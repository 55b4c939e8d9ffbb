package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leaveflow/internal/domain/user"
	"leaveflow/internal/handler/api"
	"leaveflow/internal/handler/middleware"
	"leaveflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Vacation *api.VacationHandler
	Manager  *api.ManagerHandler
	HR       *api.HRHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		vacations := apiGroup.Group("/vacations")
		vacations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(vacations, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Vacation.SubmitVacation},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Vacation.GetDashboard},
			})
		}

		manager := apiGroup.Group("/manager")
		manager.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleManager))
		{
			addRoutes(manager, []route{
				{Method: http.MethodGet, Path: "/requests", Handler: handlers.Manager.ListPending},
				{Method: http.MethodGet, Path: "/requests/:id", Handler: handlers.Manager.GetRequestDetail},
				{Method: http.MethodPost, Path: "/requests/:id/approve", Handler: handlers.Manager.Approve},
				{Method: http.MethodPost, Path: "/requests/:id/deny", Handler: handlers.Manager.Deny},
			})
		}

		hr := apiGroup.Group("/hr")
		hr.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleHR))
		{
			addRoutes(hr, []route{
				{Method: http.MethodGet, Path: "/requests", Handler: handlers.HR.ListUnprocessed},
				{Method: http.MethodPost, Path: "/requests/:id/process", Handler: handlers.HR.Process},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/integrations", Handler: handlers.Admin.ListIntegrations},
				{Method: http.MethodPut, Path: "/integrations/:type", Handler: handlers.Admin.UpsertIntegration},
				{Method: http.MethodDelete, Path: "/integrations/:type", Handler: handlers.Admin.DisableIntegration},
				{Method: http.MethodPost, Path: "/holidays/import", Handler: handlers.Admin.ImportHolidays},
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

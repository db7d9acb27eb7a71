package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fleetrent/internal/handler/api"
	"fleetrent/internal/handler/middleware"
	"fleetrent/internal/pkg/config"
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
	rentalHandler *api.RentalHandler,
	requestHandler *api.BookingRequestHandler,
	vehicleHandler *api.VehicleHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, rentalHandler, requestHandler, vehicleHandler, authMiddleware)
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
	rentalHandler *api.RentalHandler,
	requestHandler *api.BookingRequestHandler,
	vehicleHandler *api.VehicleHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("/public")
		{
			addRoutes(public, []route{
				{Method: http.MethodPost, Path: "/booking-requests", Handler: requestHandler.Submit},
			})
		}

		rentals := apiGroup.Group("/rentals")
		rentals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rentals, []route{
				{Method: http.MethodPost, Path: "", Handler: rentalHandler.CreateRental},
				{Method: http.MethodGet, Path: "", Handler: rentalHandler.ListRentals},
				{Method: http.MethodGet, Path: "/:id", Handler: rentalHandler.GetRental},
				{Method: http.MethodDelete, Path: "/:id", Handler: rentalHandler.DeleteRental},
				{Method: http.MethodPost, Path: "/:id/extend", Handler: rentalHandler.ExtendRental},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: rentalHandler.CompleteRental},
				{Method: http.MethodPost, Path: "/:id/issue", Handler: rentalHandler.IssueRental},
				{Method: http.MethodPost, Path: "/:id/settle-debt", Handler: rentalHandler.SettleDebt},
			})
		}

		requests := apiGroup.Group("/booking-requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodGet, Path: "", Handler: requestHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: requestHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: requestHandler.Approve},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: requestHandler.Reject},
			})
		}

		vehicles := apiGroup.Group("/vehicles")
		vehicles.Use(authMiddleware.RequireAuth())
		{
			addRoutes(vehicles, []route{
				{Method: http.MethodGet, Path: "/:id/schedule", Handler: vehicleHandler.GetSchedule},
				{Method: http.MethodPost, Path: "/:id/reconcile", Handler: vehicleHandler.Reconcile},
			})
		}
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

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lane-booking/internal/handler/api"
	"lane-booking/internal/handler/middleware"
	"lane-booking/internal/infra/ratelimit"
	"lane-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking     *api.BookingHandler
	Reservation *api.ReservationHandler
	Client      *api.ClientHandler
	Payment     *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter ratelimit.Limiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter ratelimit.Limiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		throttled := []gin.HandlerFunc{middleware.RateLimit(limiter), authMiddleware.OptionalAuth()}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/settings", Handler: h.Booking.GetSettings},
			{Method: http.MethodGet, Path: "/calendar", Handler: h.Booking.GetCalendar},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Booking.GetAvailability},
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Booking.Quote},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.CreateBooking, Mw: throttled},
			{Method: http.MethodPost, Path: "/bookings/checkout", Handler: h.Booking.Checkout, Mw: throttled},
			{Method: http.MethodPost, Path: "/payments/webhook", Handler: h.Payment.Webhook},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireStaff())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Reservation.Confirm},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:id/no-show", Handler: h.Reservation.NoShow},
			})
		}

		clients := apiGroup.Group("/clients")
		clients.Use(authMiddleware.RequireStaff())
		{
			addRoutes(clients, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Client.List},
				{Method: http.MethodGet, Path: "/:id/history", Handler: h.Client.History},
				{Method: http.MethodPut, Path: "/:id/stage", Handler: h.Client.UpdateStage},
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

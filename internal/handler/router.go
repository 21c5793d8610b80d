package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/handler/api"
	"marketplace-core/internal/handler/middleware"
	"marketplace-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking   *api.BookingHandler
	Quotation *api.QuotationHandler
	User      *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	customer := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleCustomer)}
	partner := []gin.HandlerFunc{authMiddleware.RequireRole(user.RolePartner)}
	admin := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.User.Me},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking, Mw: customer},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMyBookings},
			{Method: http.MethodGet, Path: "/open", Handler: h.Booking.ListOpenBookings, Mw: partner},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
			{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Booking.AcceptBooking, Mw: partner},
			{Method: http.MethodPost, Path: "/:id/start", Handler: h.Booking.StartBooking, Mw: partner},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Booking.RejectBooking, Mw: partner},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Booking.CompleteBooking, Mw: partner},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.CancelBooking, Mw: customer},
			{Method: http.MethodPost, Path: "/:id/quotations", Handler: h.Quotation.CreateQuotation, Mw: partner},
			{Method: http.MethodGet, Path: "/:id/quotations", Handler: h.Quotation.ListBookingQuotations},
		})

		quotations := apiGroup.Group("/quotations")
		addRoutes(quotations, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Quotation.GetQuotation},
			{Method: http.MethodGet, Path: "/number/:number", Handler: h.Quotation.GetQuotationByNumber},
			{Method: http.MethodPost, Path: "/:id/customer-response", Handler: h.Quotation.CustomerRespond, Mw: customer},
			{Method: http.MethodPost, Path: "/:id/partner-response", Handler: h.Quotation.PartnerRespond, Mw: partner},
			{Method: http.MethodPost, Path: "/:id/admin-response", Handler: h.Quotation.AdminRespond, Mw: admin},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Quotation.WithdrawQuotation, Mw: partner},
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
		handlers := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}

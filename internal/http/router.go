// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lodhi/internal/http/handlers"
	"lodhi/internal/http/middleware"
	"lodhi/internal/infra"
	"lodhi/internal/modules/identity"
	"lodhi/internal/modules/location"
	"lodhi/internal/modules/logistics"
	"lodhi/internal/modules/market"
	"lodhi/internal/modules/platform"
	"lodhi/internal/modules/requests"
)

type RouterDeps struct {
	Users     *identity.Service
	Requests  *requests.Service
	Market    *market.Service
	Logistics *logistics.Service
	Platform  *platform.Service
	Location  *location.Service
	Issuer    *infra.TokenIssuer
	Log       *zap.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log), middleware.Logging(deps.Log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	auth := handlers.NewAuthHandler(deps.Users, deps.Issuer)
	r.POST("/api/login/mobile", auth.MobileLogin)
	r.POST("/api/login/admin", auth.AdminLogin)

	api := r.Group("/api", middleware.Auth(deps.Issuer))

	hr := handlers.NewHRHandler(deps.Users)
	api.GET("/users", hr.ListUsers)
	api.GET("/users/:id", hr.GetUser)
	api.POST("/technicians", hr.AddTechnician)
	api.PUT("/users/:id/salary", hr.UpdateSalary)
	api.POST("/users/:id/bonus", hr.AwardBonus)
	api.PUT("/users/:id/goal", hr.UpdateWeeklyGoal)
	api.POST("/users/:id/expenses", hr.AddExpense)
	api.PUT("/users/:id/attendance", hr.UpdateAttendance)
	api.PUT("/users/:id/availability", hr.SetAvailability)

	req := handlers.NewRequestsHandler(deps.Requests)
	api.POST("/requests", req.Create)
	api.GET("/requests", req.List)
	api.GET("/requests/:id", req.Get)
	api.PUT("/requests/:id/assign", req.Assign)
	api.PUT("/requests/:id/status", req.UpdateStatus)
	api.POST("/requests/:id/bill", req.IssueBill)
	api.POST("/requests/:id/payment", req.CompletePayment)
	api.POST("/requests/:id/complaint", req.FileComplaint)
	api.PUT("/requests/:id/complaint/resolve", req.ResolveComplaint)
	api.PUT("/requests/:id/complaint/escalate", req.EscalateComplaint)
	api.POST("/requests/:id/complaint/suggestion", req.SuggestComplaintFix)
	api.POST("/requests/:id/rating", req.Rate)
	api.POST("/requests/:id/messages", req.SendMessage)
	api.PUT("/requests/:id/location-sharing", req.ToggleLocationSharing)

	mk := handlers.NewMarketHandler(deps.Market)
	api.POST("/shops", mk.RegisterShop)
	api.GET("/shops", mk.ListShops)
	api.PUT("/shops/:id/verify", mk.VerifyShop)
	api.POST("/products", mk.UpsertProduct)
	api.GET("/products", mk.ListProducts)
	api.POST("/orders", mk.Buy)
	api.GET("/orders", mk.ListOrders)
	api.GET("/orders/:id", mk.GetOrder)
	api.POST("/orders/:id/bill", mk.GenerateBill)
	api.PUT("/orders/:id/status", mk.UpdateStatus)
	api.PUT("/orders/:id/delivery/partner", mk.AssignDeliveryPartner)
	api.PUT("/orders/:id/delivery/status", mk.UpdateDeliveryStatus)
	api.POST("/orders/:id/rating", mk.RateExperience)
	api.POST("/orders/:id/shop-rating", mk.RateShopByPartner)
	api.PUT("/orders/:id/delivery/tracking", mk.ToggleDeliveryTracking)

	lg := handlers.NewLogisticsHandler(deps.Logistics)
	api.POST("/deliveries", lg.RequestShopDelivery)
	api.GET("/deliveries", lg.ListShopDeliveries)
	api.POST("/packers-movers", lg.RequestPackersMovers)
	api.GET("/packers-movers", lg.ListMoves)
	api.PUT("/logistics/:kind/:id/partner", lg.AssignPartner)
	api.POST("/logistics/:kind/:id/accept", lg.Accept)
	api.PUT("/logistics/:kind/:id/status", lg.UpdateStatus)

	pf := handlers.NewPlatformHandler(deps.Platform)
	api.GET("/pricing", pf.ListPrices)
	api.PUT("/pricing", pf.UpdatePrice)
	api.GET("/offers", pf.ListOffers)
	api.POST("/offers", pf.UpsertOffer)
	api.GET("/training-videos", pf.ListVideos)
	api.POST("/training-videos", pf.AddVideo)
	api.GET("/support-messages", pf.ListSupportMessages)
	api.POST("/support-messages", pf.SendSupportMessage)
	api.GET("/incentives", pf.ListIncentives)
	api.POST("/incentives", pf.UpsertIncentive)
	api.GET("/platform-expenses", pf.ListExpenses)
	api.POST("/platform-expenses", pf.AddExpense)
	api.GET("/expense-targets", pf.ListTargets)
	api.PUT("/expense-targets", pf.UpsertTarget)

	loc := handlers.NewLocationHandler(deps.Location)
	api.GET("/location/:kind/nearby", loc.Nearby)
	api.PUT("/location/:kind/:id", loc.Update)

	return r
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-console/internal/handlers"
)

// Handlers groups every HTTP handler the API exposes.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Services     *handlers.ServiceHandler
	Appointments *handlers.AppointmentHandler
	Transactions *handlers.TransactionHandler
	Schedule     *handlers.ScheduleHandler
	Checkout     *handlers.CheckoutHandler
	Dashboard    *handlers.DashboardHandler
	Reports      *handlers.ReportHandler
	Preferences  *handlers.PreferenceHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", h.Auth.Login)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.GET("/services", h.Services.List)
		api.POST("/services", h.Services.Create)
		api.PUT("/services/:id", h.Services.Update)
		api.DELETE("/services/:id", h.Services.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", h.Appointments.List)
		api.POST("/appointments", h.Appointments.Create)
		api.PUT("/appointments/:id", h.Appointments.Update)
		api.PATCH("/appointments/:id/status", h.Appointments.SetStatus)

		// ------------------------------
		// TRANSACTIONS
		// ------------------------------
		api.GET("/transactions", h.Transactions.List)
		api.POST("/transactions", h.Transactions.Create)

		// ------------------------------
		// SCHEDULE
		// ------------------------------
		api.GET("/schedule/week", h.Schedule.Week)
		api.GET("/schedule/day", h.Schedule.Day)

		// ------------------------------
		// CHECKOUT
		// ------------------------------
		drafts := api.Group("/checkout/drafts")
		{
			drafts.POST("", h.Checkout.Open)
			drafts.GET("/:id", h.Checkout.Get)
			drafts.DELETE("/:id", h.Checkout.Close)

			drafts.POST("/:id/services/:serviceId/toggle", h.Checkout.ToggleService)
			drafts.PUT("/:id/discount", h.Checkout.SetDiscount)
			drafts.PUT("/:id/client", h.Checkout.SetClient)
			drafts.POST("/:id/next", h.Checkout.Next)
			drafts.POST("/:id/back", h.Checkout.Back)

			drafts.POST("/:id/payments", h.Checkout.AddPayment)
			drafts.PATCH("/:id/payments/:paymentId", h.Checkout.UpdatePayment)
			drafts.DELETE("/:id/payments/:paymentId", h.Checkout.RemovePayment)

			drafts.POST("/:id/submit", h.Checkout.Submit)
		}

		// ------------------------------
		// DASHBOARD / REPORTS
		// ------------------------------
		api.GET("/dashboard", h.Dashboard.Get)
		api.POST("/dashboard/summary", h.Dashboard.Summary)

		api.GET("/reports", h.Reports.Get)
		api.GET("/reports/weekly", h.Reports.Weekly)
		api.GET("/reports/export", h.Reports.Export)

		// ------------------------------
		// PREFERENCES
		// ------------------------------
		api.GET("/preferences/theme", h.Preferences.GetTheme)
		api.PUT("/preferences/theme", h.Preferences.SetTheme)
		api.POST("/preferences/theme/toggle", h.Preferences.ToggleTheme)
	}
}

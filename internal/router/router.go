package router

import (
	"net/http"
	"time"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/config"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/handler"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/middleware"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/report"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the HTTP surface: a public login, an authenticated
// API group, and an admin/manager subgroup for roster management and
// reporting.
func SetupRouter(cfg *config.Config, stores *store.Stores) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	agg := report.NewAggregator(stores)

	authHandler := handler.NewAuthHandler(stores.Users, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	userHandler := handler.NewUserHandler(stores.Users)
	activityHandler := handler.NewActivityHandler(stores.Activities)
	goalHandler := handler.NewGoalHandler(stores.Goals)
	commissionGoalHandler := handler.NewCommissionGoalHandler(stores.CommissionGoals)
	weeklyHandler := handler.NewWeeklyHandler(stores.Weekly)
	commissionHandler := handler.NewCommissionHandler(stores.Transactions, agg)
	dashboardHandler := handler.NewDashboardHandler(agg)
	exportHandler := handler.NewExportHandler(agg)
	auditHandler := handler.NewAuditHandler(stores.Audit)

	api := r.Group("/api")

	api.POST("/auth/login", middleware.LoginRateLimit(cfg.LoginLimit.Max, cfg.LoginLimit.Window), authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, stores.Users),
		middleware.AuditMiddleware(stores.Audit),
	)

	protected.GET("/auth/me", authHandler.Me)
	protected.PUT("/users/:id/password", userHandler.ChangePassword)

	protected.GET("/activities", activityHandler.List)

	protected.GET("/goals/:year/:month", goalHandler.ListForMonth)
	protected.POST("/goals", goalHandler.Upsert)

	protected.GET("/commission-goals/:year", commissionGoalHandler.GetForYear)
	protected.POST("/commission-goals", commissionGoalHandler.Upsert)

	protected.GET("/activities/weekly/:weekStart", weeklyHandler.ListForWeek)
	protected.POST("/activities/weekly", weeklyHandler.Upsert)

	protected.GET("/commissions/:year", commissionHandler.ListForYear)
	protected.GET("/commissions/:year/:month", commissionHandler.ListForMonth)
	protected.POST("/commissions", commissionHandler.Create)

	protected.GET("/dashboard", dashboardHandler.Get)

	admin := protected.Group("", middleware.ManagerOnly())
	admin.POST("/users", userHandler.Create)
	admin.GET("/users", userHandler.List)
	admin.PUT("/users/:id", userHandler.Update)
	admin.POST("/activities", activityHandler.Create)
	admin.GET("/reports/office/:year", commissionHandler.OfficeOverview)
	admin.GET("/reports/office/export", exportHandler.OfficeReport)
	admin.GET("/audit", auditHandler.ListRecent)

	r.NoRoute(func(c *gin.Context) {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "not found")
	})

	return r
}

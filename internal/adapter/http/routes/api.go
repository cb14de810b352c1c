package routes

import (
	"net/http"

	"orcasys/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI          = "/api"
	PathPing         = "/ping"
	PathClients      = "/clients"
	PathSellers      = "/sellers"
	PathPriceTable   = "/price-table"
	PathCanvasColors = "/canvas-colors"
	PathBudgets      = "/budgets"
	PathBudgetTypes  = "/budget-types"
	PathCommissions  = "/commissions"
	PathStatistics   = "/statistics"
	PathAuditLogs    = "/audit-logs"
)

// Handlers groups the HTTP handlers mounted under PathAPI.
type Handlers struct {
	Clients     *handlers.ClientHandler
	Sellers     *handlers.SellerHandler
	Catalog     *handlers.CatalogHandler
	Budgets     *handlers.BudgetHandler
	Commissions *handlers.CommissionHandler
	Reports     *handlers.ReportHandler
}

func registerRoutes(rg *gin.RouterGroup, h Handlers) {
	addPingRoutes(rg)

	clients := rg.Group(PathClients)
	{
		clients.POST("", h.Clients.CreateClient)
		clients.GET("", h.Clients.ListClients)
		clients.POST("/check-dependencies", h.Clients.CheckDependenciesBatch)
		clients.POST("/bulk-delete", h.Clients.BulkDeleteClients)
		clients.POST("/import", h.Clients.ImportClients)
		clients.POST("/export", h.Clients.ExportClients)
		clients.GET("/:id", h.Clients.GetClient)
		clients.PUT("/:id", h.Clients.UpdateClient)
		clients.DELETE("/:id", h.Clients.DeleteClient)
		clients.GET("/:id/dependencies", h.Clients.CheckDependencies)
	}

	sellers := rg.Group(PathSellers)
	{
		sellers.POST("", h.Sellers.CreateSeller)
		sellers.GET("", h.Sellers.ListSellers)
		sellers.GET("/:id", h.Sellers.GetSeller)
		sellers.PUT("/:id", h.Sellers.UpdateSeller)
		sellers.DELETE("/:id", h.Sellers.DeleteSeller)
	}

	prices := rg.Group(PathPriceTable)
	{
		prices.POST("", h.Catalog.CreatePriceItem)
		prices.GET("", h.Catalog.ListPriceItems)
		prices.GET("/categories", h.Catalog.ListCategories)
		prices.GET("/:id", h.Catalog.GetPriceItem)
		prices.PUT("/:id", h.Catalog.UpdatePriceItem)
		prices.DELETE("/:id", h.Catalog.DeletePriceItem)
	}

	colors := rg.Group(PathCanvasColors)
	{
		colors.POST("", h.Catalog.CreateCanvasColor)
		colors.GET("", h.Catalog.ListCanvasColors)
		colors.POST("/initialize", h.Catalog.InitializeCanvasColors)
		colors.PUT("/:id", h.Catalog.UpdateCanvasColor)
		colors.DELETE("/:id", h.Catalog.DeleteCanvasColor)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", h.Budgets.CreateBudget)
		budgets.GET("", h.Budgets.ListBudgets)
		budgets.GET("/:id", h.Budgets.GetBudget)
		budgets.PUT("/:id", h.Budgets.UpdateBudget)
		budgets.DELETE("/:id", h.Budgets.DeleteBudget)
		budgets.PATCH("/:id/status", h.Budgets.UpdateBudgetStatus)
		budgets.POST("/:id/duplicate", h.Budgets.DuplicateBudget)
		budgets.GET("/:id/history", h.Budgets.BudgetHistory)
	}
	rg.GET(PathBudgetTypes, h.Budgets.BudgetTypes)

	commissions := rg.Group(PathCommissions)
	{
		commissions.POST("", h.Commissions.CreateCommission)
		commissions.GET("", h.Commissions.ListCommissions)
		commissions.GET("/summary", h.Commissions.CommissionSummary)
		commissions.PATCH("/:id/pay", h.Commissions.MarkCommissionPaid)
	}

	rg.GET(PathStatistics+"/budgets", h.Reports.BudgetStatistics)
	rg.GET(PathAuditLogs, h.Reports.ListAuditLogs)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

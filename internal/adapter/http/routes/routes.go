package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	_ "orcasys/docs" // generated by swag init
	"orcasys/internal/adapter/http/handlers"
	"orcasys/internal/adapter/persistence/repository"
	"orcasys/internal/config"
	"orcasys/internal/infrastructure/database"
	"orcasys/internal/infrastructure/logging"
	"orcasys/internal/infrastructure/metrics"
	"orcasys/internal/infrastructure/spreadsheet"
	"orcasys/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const bootstrapTimeout = 3 * time.Minute

// Run connects to DynamoDB, wires every component and serves HTTP on
// cfg.Port until the server fails.
func Run(cfg config.Config, log *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	if cfg.AutoCreateTables {
		if err := database.EnsureTables(ctx, ddb, repository.Schemas(cfg.Tables), log); err != nil {
			return fmt.Errorf("ensure tables: %w", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry, metrics.Config{ServiceName: cfg.AppName, Environment: cfg.Environment})

	router := gin.New()
	setMiddlewares(router, cfg, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	registerRoutes(router.Group(PathAPI), buildHandlers(ddb, cfg.Tables, m))

	log.Info("http.listen", zap.Int("port", cfg.Port))
	return router.Run(":" + strconv.Itoa(cfg.Port))
}

// buildHandlers wires repositories into use cases and use cases into handlers.
func buildHandlers(ddb *dynamodb.Client, tables config.Tables, m *metrics.Metrics) Handlers {
	clientRepo := repository.NewClientDynamoRepository(ddb, tables.Clients)
	sellerRepo := repository.NewSellerDynamoRepository(ddb, tables.Sellers)
	priceRepo := repository.NewPriceTableDynamoRepository(ddb, tables.PriceTable)
	colorRepo := repository.NewCanvasColorDynamoRepository(ddb, tables.CanvasColors)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb, tables.Budgets)
	commissionRepo := repository.NewCommissionDynamoRepository(ddb, tables.Commissions)
	historyRepo := repository.NewBudgetHistoryDynamoRepository(ddb, tables.History)
	auditRepo := repository.NewAuditLogDynamoRepository(ddb, tables.AuditLogs)

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	deletionUseCase := usecase.NewClientDeletionUseCase(clientRepo, budgetRepo, commissionRepo, historyRepo, auditRepo, m)
	transferUseCase := usecase.NewClientTransferUseCase(
		clientRepo,
		auditRepo,
		m,
		spreadsheet.NewCSVDecoder(),
		spreadsheet.NewCSVEncoder(),
		spreadsheet.NewXLSXEncoder(),
	)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, clientRepo, sellerRepo, historyRepo, commissionRepo, m)
	commissionUseCase := usecase.NewCommissionUseCase(commissionRepo, sellerRepo, budgetRepo, m)

	return Handlers{
		Clients:     handlers.NewClientHandler(clientUseCase, deletionUseCase, transferUseCase),
		Sellers:     handlers.NewSellerHandler(usecase.NewSellerUseCase(sellerRepo)),
		Catalog:     handlers.NewCatalogHandler(usecase.NewPriceTableUseCase(priceRepo), usecase.NewCanvasColorUseCase(colorRepo)),
		Budgets:     handlers.NewBudgetHandler(budgetUseCase),
		Commissions: handlers.NewCommissionHandler(commissionUseCase),
		Reports:     handlers.NewReportHandler(usecase.NewStatisticsUseCase(budgetRepo), usecase.NewAuditLogUseCase(auditRepo)),
	}
}

func setMiddlewares(router *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	router.Use(logging.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.FromContext(c.Request.Context()).Error("http.panic", zap.Any("recovered", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(metrics.GinMiddleware(m))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", logging.ActorHeader, "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}

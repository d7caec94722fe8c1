// Package server собирает HTTP API сервера договоров: маршруты,
// мидлвары и обработчики.
package server

import (
	"github.com/gin-gonic/gin"

	"contractserver/database"
	"contractserver/internal/config"
	"contractserver/pricing"
	"contractserver/server/handlers"
	"contractserver/server/middleware"
)

// NewRouter создает gin-роутер со всеми маршрутами API.
func NewRouter(cfg *config.Config, db *database.ServiceDB, catalog *pricing.Catalog) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinLoggerMiddleware())

	parseHandler := handlers.NewParseHandler(catalog)
	generateHandler := handlers.NewGenerateHandler(catalog, db, cfg)
	ordersHandler := handlers.NewOrdersHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	institutionsHandler := handlers.NewInstitutionsHandler(db)
	systemHandler := handlers.NewSystemHandler(db)

	router.GET("/health", systemHandler.HandleHealth)
	handlers.RegisterSwaggerRoutes(router, "localhost:"+cfg.Port)

	api := router.Group("/api")
	{
		// Разбор дергается формой на каждое изменение брифа,
		// поэтому прикрыт ограничителем частоты.
		api.POST("/parse",
			middleware.GinRateLimitMiddleware(cfg.ParseRateLimit, cfg.ParseRateBurst),
			parseHandler.HandleParseBrief)

		api.POST("/generate", generateHandler.HandleGenerateContract)

		api.GET("/orders", ordersHandler.HandleListOrders)
		api.GET("/orders/export", ordersHandler.HandleExportOrders)
		api.GET("/orders/:id", ordersHandler.HandleGetOrder)

		api.GET("/settings", settingsHandler.HandleGetSettings)
		api.PUT("/settings", settingsHandler.HandleUpdateSettings)

		api.GET("/institutions", institutionsHandler.HandleListInstitutions)
	}

	return router
}

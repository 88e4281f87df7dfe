package router

import (
	"github.com/KothuruDhansukh/ECO-MART/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts, authRequired)
	products.GET("/:id", handler.GetProductByID, authRequired)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetSustainabilityRoutes(api *echo.Group, handler *rest.SustainabilityHandler, authRequired echo.MiddlewareFunc) {
	sustainability := api.Group("/sustainability")
	sustainability.POST("/score", handler.Score, authRequired)
	sustainability.GET("/baselines", handler.Baselines, authRequired)
}

func SetPreferenceRoutes(api *echo.Group, handler *rest.PreferenceHandler, authRequired echo.MiddlewareFunc) {
	prefs := api.Group("/preferences", authRequired)
	prefs.GET("", handler.GetProfile)
	prefs.DELETE("", handler.ResetProfile)
	prefs.GET("/events", handler.ListEvents)
	prefs.POST("/events", handler.RecordEvent)
}

func SetScoringAdminRoutes(api *echo.Group, handler *rest.ScoringAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/scoring", authRequired, adminOnly)

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
}

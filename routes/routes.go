package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-api/app/catalog"
	"github.com/velora-labs/storefront-api/app/categories"
	"github.com/velora-labs/storefront-api/app/curated"
	"github.com/velora-labs/storefront-api/app/homepage"
	"github.com/velora-labs/storefront-api/app/notifications"
	"github.com/velora-labs/storefront-api/app/sitesettings"
	"github.com/velora-labs/storefront-api/app/tracking"
	"github.com/velora-labs/storefront-api/middleware"
	"github.com/velora-labs/storefront-api/models"
)

// SetupRoutes wires every endpoint: the public read API consumed by the
// storefront and the API-key-protected admin write surface.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	productsRepo := models.NewProductsRepository(db)
	categoriesRepo := models.NewCategoriesRepository(db)
	curatedRepo := models.NewCuratedRepository(db)
	notificationsRepo := models.NewNotificationsRepository(db)
	trackingRepo := models.NewTrackingCodesRepository(db)
	settingsRepo := models.NewSettingsRepository(db)

	catalogHandler := catalog.NewHandler(productsRepo)
	categoriesHandler := categories.NewHandler(categoriesRepo)
	curatedHandler := curated.NewHandler(curatedRepo)
	homepageHandler := homepage.NewHandler(productsRepo, curatedRepo)
	notificationsHandler := notifications.NewHandler(notificationsRepo)
	trackingHandler := tracking.NewHandler(trackingRepo)
	settingsHandler := sitesettings.NewHandler(settingsRepo)

	api := r.Group("/api")
	{
		api.GET("/homepage", homepageHandler.Get)
		api.GET("/site-settings", settingsHandler.Get)

		api.GET("/categories", categoriesHandler.List)
		api.GET("/categories/tree", categoriesHandler.Tree)
		api.GET("/categories/:slug", categoriesHandler.Get)

		api.GET("/products", catalogHandler.List)
		api.GET("/products/:id", catalogHandler.Get)

		api.GET("/best-selling", curatedHandler.ListBestSelling)
		api.GET("/best-selling/:id", curatedHandler.GetBestSelling)
		api.GET("/hot", curatedHandler.ListHot)
		api.GET("/hot/:id", curatedHandler.GetHot)

		api.GET("/notifications", notificationsHandler.List)
		api.GET("/notifications/active", notificationsHandler.Active)
		api.GET("/notifications/:id", notificationsHandler.Get)

		api.GET("/tracking-codes", trackingHandler.List)
		api.GET("/tracking-codes/active", trackingHandler.List)
		api.GET("/tracking-codes/:id", trackingHandler.Get)
	}

	admin := api.Group("/admin", middleware.ValidateAPIKey)
	{
		admin.POST("/categories", categoriesHandler.Create)
		admin.PUT("/categories/:id", categoriesHandler.Update)
		admin.DELETE("/categories/:id", categoriesHandler.Delete)

		admin.POST("/best-selling", curatedHandler.CreateBestSelling)
		admin.PUT("/best-selling/:id", curatedHandler.UpdateBestSelling)
		admin.DELETE("/best-selling/:id", curatedHandler.DeleteBestSelling)

		admin.POST("/hot", curatedHandler.CreateHot)
		admin.PUT("/hot/:id", curatedHandler.UpdateHot)
		admin.DELETE("/hot/:id", curatedHandler.DeleteHot)

		admin.POST("/notifications", notificationsHandler.Create)
		admin.PUT("/notifications/:id", notificationsHandler.Update)
		admin.DELETE("/notifications/:id", notificationsHandler.Delete)

		admin.POST("/tracking-codes", trackingHandler.Create)
		admin.PUT("/tracking-codes/:id", trackingHandler.Update)
		admin.DELETE("/tracking-codes/:id", trackingHandler.Delete)

		// Singleton: update only, no delete.
		admin.PUT("/site-settings", settingsHandler.Update)
	}
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amconceito/storefront/internal/interfaces/http/handler"
)

// Handlers bundles everything the router wires up
type Handlers struct {
	Storefront     *handler.StorefrontHandler
	Shipping       *handler.ShippingHandler
	Auth           *handler.AuthHandler
	System         *handler.SystemHandler
	Product        *handler.AdminProductHandler
	Stock          *handler.AdminStockHandler
	Classification *handler.AdminClassificationHandler
}

// Setup registers all routes on the engine. Admin routes sit behind the
// session guard; everything else is public.
func Setup(engine *gin.Engine, h Handlers, guard gin.HandlerFunc) {
	// Public storefront
	engine.GET("/", h.Storefront.Home)
	engine.GET("/produto/:id", h.Storefront.ProductDetail)
	engine.GET("/cart", h.Storefront.Cart)
	engine.GET("/checkout", h.Storefront.Checkout)

	// Session
	engine.GET("/login", h.Auth.LoginPage)
	engine.POST("/login", h.Auth.Login)
	engine.GET("/logout", h.Auth.Logout)

	// Checkout API
	engine.POST("/api/calculate-shipping", h.Shipping.Calculate)

	// Operational
	engine.GET("/health", h.System.Health)

	// Admin panel
	admin := engine.Group("/admin", guard)
	admin.GET("", h.Product.Home)
	admin.GET("/home", redirectTo("/admin"))

	admin.POST("/add", h.Product.Create)
	admin.POST("/edit/:id", h.Product.Update)
	admin.POST("/delete/:id", h.Product.Delete)
	admin.POST("/remove_image/:id", h.Product.RemoveImage)

	admin.POST("/add_variant/:id", h.Stock.AddVariant)
	admin.POST("/edit_stock/:id", h.Stock.EditStock)
	admin.POST("/delete_variant/:id", h.Stock.DeleteVariant)

	admin.POST("/classification/add", h.Classification.Create)
	admin.POST("/delete_classification/:id", h.Classification.Delete)
	admin.POST("/reorder_classifications", h.Classification.Reorder)
}

func redirectTo(location string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, location)
	}
}

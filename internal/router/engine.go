package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Aya-Jafar/storefront-api/pkg/cache"
	"github.com/Aya-Jafar/storefront-api/pkg/catalog"
	"github.com/Aya-Jafar/storefront-api/pkg/store"
)

var Router *gin.Engine

// Deps are the state containers and services the handlers operate on.
// Cache is optional; without it the feed is fetched from the backend on
// every request.
type Deps struct {
	Catalog  *catalog.Service
	Cache    *cache.Store
	Cart     *store.ItemList
	Wishlist *store.ItemList
	Snackbar *store.Snackbar
}

var app Deps

func InitEngine(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	Router = gin.New()
	Router.Use(gin.Recovery())
	Router.Use(RequestLogger())

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes(d Deps) {
	app = d

	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)
		api.GET("/feed", GetFeed)
		api.GET("/notifications", GetNotification)

		products := api.Group("/products")
		{
			products.GET("/:id", GetProductByID)
		}

		cart := api.Group("/cart")
		{
			cart.GET("/", GetCart)
			cart.POST("/", AddToCart)
			cart.POST("/toggle", ToggleCart)
			cart.DELETE("/:id", RemoveFromCart)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.GET("/", GetWishlist)
			wishlist.POST("/", AddToWishlist)
			wishlist.POST("/toggle", ToggleWishlist)
			wishlist.DELETE("/:id", RemoveFromWishlist)
		}
	}
}

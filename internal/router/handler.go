package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aya-Jafar/storefront-api/pkg/apiclient"
	"github.com/Aya-Jafar/storefront-api/pkg/dto"
	"github.com/Aya-Jafar/storefront-api/pkg/global"
	"github.com/Aya-Jafar/storefront-api/pkg/logger"
	"github.com/Aya-Jafar/storefront-api/pkg/store"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK"}))
}

// GetFeed returns the normalized storefront feed, read through the redis
// cache when one is configured.
func GetFeed(c *gin.Context) {
	ctx := c.Request.Context()

	if app.Cache != nil {
		sections, err := app.Cache.FeedFromCache(ctx)
		if err == nil {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, global.SuccessResponse(sections))
			return
		}
	}

	sections, err := app.Catalog.Feed(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch feed from backend")
		c.JSON(backendStatus(err), global.ErrorResponse("Failed to fetch feed", nil))
		return
	}

	if app.Cache != nil {
		if cacheErr := app.Cache.CacheFeed(ctx, sections); cacheErr != nil {
			logger.Warn().Err(cacheErr).Msg("failed to cache feed in redis")
		}
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(sections))
}

// GetProductByID returns a single normalized product, cached by id.
func GetProductByID(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if app.Cache != nil {
		if product, err := app.Cache.ProductFromCache(ctx, id); err == nil {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, global.SuccessResponse(product))
			return
		}
	}

	product, err := app.Catalog.Product(ctx, id)
	if err != nil {
		var httpErr *apiclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this id", Code: "not_found"},
			}))
			return
		}
		logger.Error().Err(err).Str("id", id).Msg("failed to fetch product from backend")
		c.JSON(backendStatus(err), global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	if app.Cache != nil {
		if cacheErr := app.Cache.CacheProduct(ctx, product); cacheErr != nil {
			logger.Warn().Err(cacheErr).Str("id", id).Msg("failed to cache product in redis")
		}
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(product))
}

// GetNotification returns the current snackbar snapshot for rendering a
// toast. Data is null while the snackbar is idle.
func GetNotification(c *gin.Context) {
	msg, ok := app.Snackbar.Current()
	if !ok {
		c.JSON(http.StatusOK, global.SuccessResponse(nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(msg))
}

func GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(app.Cart.Items()))
}

func AddToCart(c *gin.Context) {
	addItem(c, app.Cart)
}

func RemoveFromCart(c *gin.Context) {
	app.Cart.Remove(c.Param("id"))
	c.JSON(http.StatusOK, global.SuccessResponse(app.Cart.Items()))
}

func ToggleCart(c *gin.Context) {
	toggleItem(c, app.Cart, "Added to cart", "Removed from cart")
}

func GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(app.Wishlist.Items()))
}

func AddToWishlist(c *gin.Context) {
	addItem(c, app.Wishlist)
}

func RemoveFromWishlist(c *gin.Context) {
	app.Wishlist.Remove(c.Param("id"))
	c.JSON(http.StatusOK, global.SuccessResponse(app.Wishlist.Items()))
}

func ToggleWishlist(c *gin.Context) {
	toggleItem(c, app.Wishlist, "Added to wishlist", "Removed from wishlist")
}

func addItem(c *gin.Context, list *store.ItemList) {
	product, ok := bindProduct(c)
	if !ok {
		return
	}
	list.Add(product)
	c.JSON(http.StatusOK, global.SuccessResponse(list.Items()))
}

func toggleItem(c *gin.Context, list *store.ItemList, addMsg, removeMsg string) {
	product, ok := bindProduct(c)
	if !ok {
		return
	}
	added := store.Toggle{
		List:          list,
		Bar:           app.Snackbar,
		AddMessage:    addMsg,
		RemoveMessage: removeMsg,
	}.Handle(product)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"added": added,
		"items": list.Items(),
	}))
}

func bindProduct(c *gin.Context) (dto.ProductDTO, bool) {
	var product dto.ProductDTO
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "json_parse_error"},
		}))
		return product, false
	}
	if product.ID == "" {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "id", Message: "product id is required", Code: "required"},
		}))
		return product, false
	}
	return product, true
}

// backendStatus maps gateway errors to the status this API responds with.
func backendStatus(err error) int {
	var httpErr *apiclient.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Status >= 400 && httpErr.Status < 500 {
			return httpErr.Status
		}
	}
	return http.StatusBadGateway
}

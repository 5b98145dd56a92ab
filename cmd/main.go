package main

import (
	"github.com/joho/godotenv"

	"github.com/Aya-Jafar/storefront-api/internal/router"
	"github.com/Aya-Jafar/storefront-api/pkg/apiclient"
	"github.com/Aya-Jafar/storefront-api/pkg/cache"
	"github.com/Aya-Jafar/storefront-api/pkg/catalog"
	"github.com/Aya-Jafar/storefront-api/pkg/global"
	"github.com/Aya-Jafar/storefront-api/pkg/logger"
	"github.com/Aya-Jafar/storefront-api/pkg/store"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := global.LoadConfig()
	if err != nil {
		logger.Init("development")
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.Env)

	snackbar := store.NewSnackbar()
	defer snackbar.Close()

	gateway := apiclient.New(cfg.APIBaseURL, cfg.RequestTimeout, snackbar)

	router.InitEngine(cfg.Env)
	router.InitializeRoutes(router.Deps{
		Catalog:  catalog.NewService(gateway),
		Cache:    cache.New(cfg.RedisAddress, cfg.RedisPassword, cfg.CacheTTL),
		Cart:     store.NewCart(),
		Wishlist: store.NewWishlist(),
		Snackbar: snackbar,
	})

	logger.Info().Str("port", cfg.Port).Msg("server is running")
	if err := router.Router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to run server")
	}
}

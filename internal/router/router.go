package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sneakersdealer/ds-admin-backend/config"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/controller"
	"github.com/sneakersdealer/ds-admin-backend/internal/middleware"
)

type Router struct {
	authController      *controller.AuthController
	storeController     *controller.StoreController
	billboardController *controller.BillboardController
	brandController     *controller.BrandController
	productController   *controller.ProductController
	promocodeController *controller.PromocodeController
	uploadController    *controller.UploadController
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	storeController *controller.StoreController,
	billboardController *controller.BillboardController,
	brandController *controller.BrandController,
	productController *controller.ProductController,
	promocodeController *controller.PromocodeController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:      authController,
		storeController:     storeController,
		billboardController: billboardController,
		brandController:     brandController,
		productController:   productController,
		promocodeController: promocodeController,
		uploadController:    uploadController,
		authMiddleware:      authMiddleware,
		config:              cfg,
	}
}

// Setup wires the route table.
//
// Storefront reads are public and answer with permissive CORS so any
// shop frontend can consume them. Admin mutations require a session and
// are CORS-restricted to the configured console origins. The catalog
// lives under /api/:storeId/... mirroring the console's URL scheme.
func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "DS-Admin API is running",
		})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.Use(middleware.CORSMiddleware(r.config.CORS.AllowedOrigins))
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.authController.Login)
		auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
		auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
	}

	stores := api.Group("/stores")
	stores.Use(middleware.CORSMiddleware(r.config.CORS.AllowedOrigins))
	stores.Use(r.authMiddleware.Authenticate())
	{
		stores.GET("", r.storeController.ListStores)
		stores.POST("", r.storeController.CreateStore)
	}

	upload := api.Group("/upload")
	upload.Use(middleware.CORSMiddleware(r.config.CORS.AllowedOrigins))
	upload.Use(r.authMiddleware.Authenticate())
	{
		upload.POST("/image", r.uploadController.GetUploadURL)
	}

	store := api.Group("/:storeId")

	// Public storefront reads.
	public := store.Group("")
	public.Use(middleware.PublicCORS())
	{
		public.GET("/billboards", r.billboardController.GetBillboards)
		public.GET("/billboards/:billboardId", r.billboardController.GetBillboardByID)

		public.GET("/brands", r.brandController.GetBrands)
		public.GET("/brands/:brandId", r.brandController.GetBrandByID)
		public.GET("/brands/name/:brandName", r.brandController.GetBrandByName)

		public.GET("/products", r.productController.GetProducts)
		public.GET("/products/:productId", r.productController.GetProductByID)
		public.GET("/fav_products/*productIds", r.productController.GetFavoriteProducts)
		public.GET("/products_amount", r.productController.GetProductsAmount)

		public.GET("/promocodes", r.promocodeController.GetPromocodes)
		public.GET("/promocodes/:promocodeId", r.promocodeController.GetPromocodeByID)
	}

	// Admin mutations.
	admin := store.Group("")
	admin.Use(middleware.CORSMiddleware(r.config.CORS.AllowedOrigins))
	{
		authed := admin.Group("")
		authed.Use(r.authMiddleware.Authenticate())
		{
			authed.POST("/billboards", r.billboardController.CreateBillboard)
			authed.PATCH("/billboards/:billboardId", r.billboardController.UpdateBillboard)
			authed.DELETE("/billboards/:billboardId", r.billboardController.DeleteBillboard)

			authed.POST("/brands", r.brandController.CreateBrand)
			authed.PATCH("/brands/:brandId", r.brandController.UpdateBrand)
			authed.DELETE("/brands/:brandId", r.brandController.DeleteBrand)

			authed.POST("/products", r.productController.CreateProduct)
			authed.PATCH("/products/:productId", r.productController.UpdateProduct)
			authed.DELETE("/products/:productId", r.productController.DeleteProduct)

			authed.POST("/promocodes", r.promocodeController.CreatePromocode)
			authed.PATCH("/promocodes/:promocodeId", r.promocodeController.UpdatePromocode)
			authed.DELETE("/promocodes/:promocodeId", r.promocodeController.DeletePromocode)
		}

		// Catalog wipe used by the storefront purge tool. It predates
		// the session layer and ships without authentication, so it
		// must not sit behind the auth middleware.
		admin.DELETE("/products", r.productController.DeleteAllProducts)
	}

	return router
}

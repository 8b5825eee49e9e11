package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/farmstand/internal/apperror"
	"github.com/h4ks-com/farmstand/internal/middleware"
	"github.com/h4ks-com/farmstand/internal/services"
	"github.com/h4ks-com/farmstand/web"
	"go.uber.org/zap"
)

type RouterConfig struct {
	FarmService    *services.FarmService
	ProductService *services.ProductService
	Logger         *zap.Logger
	SessionName    string
	SessionSecret  string
	SessionSecure  bool
}

// NewRouter builds the gin engine with every farm and product route and
// wraps it in the method override so HTML forms can issue PUT and DELETE.
func NewRouter(cfg RouterConfig) (http.Handler, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.SetHTMLTemplate(templates)

	router.Use(
		middleware.RequestLogger(cfg.Logger),
		middleware.ErrorHandler(cfg.Logger),
		middleware.Recovery(),
		middleware.Sessions(cfg.SessionName, cfg.SessionSecret, cfg.SessionSecure),
	)

	farmHandler := NewFarmHandler(cfg.FarmService)
	productHandler := NewProductHandler(cfg.ProductService)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/farms")
	})

	farms := router.Group("/farms")
	{
		farms.GET("", Wrap(farmHandler.ListFarms))
		farms.GET("/new", Wrap(farmHandler.NewFarm))
		farms.POST("", Wrap(farmHandler.CreateFarm))
		farms.GET("/:id", Wrap(farmHandler.ShowFarm))
		farms.DELETE("/:id", Wrap(farmHandler.DeleteFarm))
		farms.GET("/:id/products/new", Wrap(farmHandler.NewFarmProduct))
		farms.POST("/:id/products", Wrap(farmHandler.CreateFarmProduct))
	}

	products := router.Group("/products")
	{
		products.GET("", Wrap(productHandler.ListProducts))
		products.GET("/new", Wrap(productHandler.NewProduct))
		products.POST("", Wrap(productHandler.CreateProduct))
		products.GET("/:id", Wrap(productHandler.ShowProduct))
		products.GET("/:id/edit", Wrap(productHandler.EditProduct))
		products.PUT("/:id", Wrap(productHandler.UpdateProduct))
		products.DELETE("/:id", Wrap(productHandler.DeleteProduct))
	}

	router.NoRoute(Wrap(func(c *gin.Context) error {
		return apperror.NotFound("Page not found")
	}))

	return middleware.MethodOverride(router), nil
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"carpets-api/internal/service"

	_ "carpets-api/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	svc service.Shop
}

func NewHandler(s service.Shop) *Handler {
	return &Handler{svc: s}
}

type idResponse struct {
	ID string `json:"id"`
}

type seedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(metricsMiddleware())

	router.GET("/", h.Health)
	router.GET("/test", h.Diagnostics)

	api := router.Group("/api")
	{
		api.POST("/carpets", h.CreateCarpet)
		api.POST("/carpets/query", h.QueryCarpets)
		api.GET("/carpets/:id", h.GetCarpetByID)
		api.POST("/orders", h.CreateOrder)
		api.POST("/reviews", h.CreateReview)
		api.POST("/seed", h.Seed)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// corsMiddleware mirrors the permissive policy the storefront relies on.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "*")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zeuskitchen/backend/internal/api"
	"github.com/zeuskitchen/backend/internal/middleware"
)

// SetupRouter builds the gin engine with the shared middleware stack and the
// full API surface.
func SetupRouter(deps api.Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.SetupAPI(router, deps)

	return router
}

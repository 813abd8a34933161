package mazeapi

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Config holds the settings for a maze HTTP server.
type Config struct {
	Addr      string    // Address to listen on
	BaseURL   string    // Prefix for every route
	LogOutput io.Writer // Request log destination; nil disables request logging
	StoreSize int       // Mazes kept for lookup by ID
	Seeds     func() uint64
}

// NewRouter builds the gin engine serving the /v1 maze routes.
func NewRouter(config Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if config.LogOutput != nil {
		router.Use(gin.LoggerWithWriter(config.LogOutput))
	}

	controller := NewController(NewStore(config.StoreSize), config.Seeds)
	api := router.Group(config.BaseURL)
	{
		v1 := api.Group("/v1")
		controller.Register(v1)
	}
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

// Run starts the HTTP server and blocks until it fails.
func Run(config Config) error {
	return NewRouter(config).Run(config.Addr)
}

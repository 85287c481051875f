package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) SetUpRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestId())
	router.Use(Logger())
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "ok",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))

	router.GET("/", s.handleIndex)
	router.GET("/search", s.handleSearch)
	router.GET("/event", s.handleSelect)
	router.POST("/modal/close", s.handleCloseModal)
	router.POST("/modal/seek", s.handleSeek)

	api := router.Group("/api")
	api.GET("/view", s.handleGetView)

	if err := s.setUpMediaProxy(router); err != nil {
		s.logger.WithError(err).Error("media proxy disabled")
	}

	return router
}

package router

import (
	"fmt"
	"strings"

	"github.com/yaodan-next/internal/cache"
	"github.com/yaodan-next/internal/config"
	"github.com/yaodan-next/internal/http/handlers"
	"github.com/yaodan-next/internal/logger"
	"github.com/yaodan-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := handlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "yd"
	}
	redisClient := cache.Client()
	composeRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:compose", redisPrefix),
		WindowSeconds: cfg.Security.ComposeRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.ComposeRateLimit.MaxRequests,
		Message:       "生成过于频繁",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/config", handler.GetConfig)
		apiV1.PUT("/config", handler.UpdateConfig)

		apiV1.GET("/quick-items", handler.ListQuickItems)
		apiV1.POST("/quick-items", handler.AddQuickItem)
		apiV1.DELETE("/quick-items/:index", handler.RemoveQuickItem)

		apiV1.POST("/orders/preview", handler.PreviewOrder)
		apiV1.POST("/orders/compose", RateLimitMiddleware(redisClient, composeRule, KeyByIP), handler.ComposeOrder)
		apiV1.POST("/orders", handler.CreateOrder)
		apiV1.GET("/orders", handler.ListOrders)
		apiV1.GET("/orders/:index", handler.GetOrder)
		apiV1.DELETE("/orders/:index", handler.DeleteOrder)

		apiV1.GET("/status", handler.GetStatus)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

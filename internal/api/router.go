package api

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jengzang/attraction-heatmap/internal/config"
	"github.com/jengzang/attraction-heatmap/internal/handler"
	"github.com/jengzang/attraction-heatmap/internal/metrics"
	"github.com/jengzang/attraction-heatmap/internal/middleware"
)

//go:embed web/index.html
var webFS embed.FS

// Deps 路由依赖
type Deps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	Limiter   *middleware.RateLimiter
	Dashboard *handler.DashboardHandler
}

// SetupRouter 设置路由
func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(d.Logger), middleware.Metrics(d.Metrics))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Attraction heatmap API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))

	// 仪表盘页面
	r.GET("/", func(c *gin.Context) {
		page, err := webFS.ReadFile("web/index.html")
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(d.Limiter))
	{
		dash := api.Group("/dashboard")
		{
			dash.GET("", d.Dashboard.GetDashboard)
			dash.GET("/options", d.Dashboard.GetOptions)
			dash.GET("/charts", d.Dashboard.GetCharts)
			dash.GET("/map", d.Dashboard.GetMap)
		}

		ds := api.Group("/dataset")
		{
			ds.GET("", d.Dashboard.GetDataset)
			ds.POST("/refresh", middleware.JWTAuth(d.Config.Auth.JWTSecret), d.Dashboard.RefreshDataset)
		}
	}

	return r
}

package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yogesh-sai906/HRMS-Lite/config"
	"github.com/yogesh-sai906/HRMS-Lite/internal/api/handler"
	"github.com/yogesh-sai906/HRMS-Lite/internal/api/middleware"
	"github.com/yogesh-sai906/HRMS-Lite/pkg/redis"
)

// 写接口限流：每 IP 每分钟最多 120 次
const (
	writeRateLimit  = 120
	writeRateWindow = time.Minute
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	writeLimit := middleware.RateLimit(rdb, writeRateLimit, writeRateWindow)

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 员工模块 ──
	employees := r.Group("/employees")
	{
		employees.POST("", writeLimit, h.Employee.AddEmployee)
		employees.GET("", h.Employee.ListEmployees)
		employees.GET("/counts", h.Employee.GetEmployeeCounts)
		employees.DELETE("/:id", writeLimit, h.Employee.RemoveEmployee)
	}

	// ── 考勤模块 ──
	attendance := r.Group("/attendance")
	{
		attendance.POST("", writeLimit, h.Attendance.MarkAttendance)
		// 静态路由优先于 :employee_id 匹配
		attendance.GET("/today/present", h.Attendance.GetTodayPresent)
		attendance.GET("/:employee_id", h.Attendance.GetAttendance)
	}

	return r
}

package router

import (
	"time"

	"expensetrack/api"
	"expensetrack/config"
	_ "expensetrack/docs"
	"expensetrack/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := r.Group("/api")
	// 接口无需登录，按 IP 做基础限流
	apiGroup.Use(middleware.RateLimit(300, time.Minute))
	{
		// 消费记录
		expenseHandler := api.NewExpenseHandler()
		exportHandler := api.NewExportHandler()
		expenses := apiGroup.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", expenseHandler.Create)
			expenses.DELETE("", expenseHandler.BulkDelete)
			expenses.GET("/stats", expenseHandler.GetStats)
			expenses.GET("/export", exportHandler.ExportCSV)
			expenses.GET("/export/excel", exportHandler.ExportExcel)
			expenses.GET("/:id", expenseHandler.Get)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		// 消费类别与预算
		categoryHandler := api.NewCategoryHandler()
		categories := apiGroup.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
			categories.GET("/budget-status", categoryHandler.BudgetStatusList)
			categories.GET("/:id", categoryHandler.Get)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		// 收入记录
		incomeHandler := api.NewIncomeHandler()
		income := apiGroup.Group("/income")
		{
			income.GET("", incomeHandler.List)
			income.POST("", incomeHandler.Create)
			income.GET("/stats", incomeHandler.GetStats)
			income.GET("/:id", incomeHandler.Get)
			income.PUT("/:id", incomeHandler.Update)
			income.DELETE("/:id", incomeHandler.Delete)
		}

		// 收支汇总
		summaryHandler := api.NewSummaryHandler()
		apiGroup.GET("/summary", summaryHandler.GetSummary)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/weiwangfds/keepnote/config"
	_ "github.com/weiwangfds/keepnote/docs" // swagger docs
	"github.com/weiwangfds/keepnote/internal/cache"
	"github.com/weiwangfds/keepnote/internal/handler"
	"github.com/weiwangfds/keepnote/internal/middleware"
	authservice "github.com/weiwangfds/keepnote/internal/service/auth"
	labelservice "github.com/weiwangfds/keepnote/internal/service/label"
	noteservice "github.com/weiwangfds/keepnote/internal/service/note"
	"gorm.io/gorm"
)

// Router 路由配置
type Router struct {
	engine *gin.Engine
	db     *gorm.DB
}

// NewRouter 创建路由实例
// 认证接口公开访问，笔记和标签接口全部挂在鉴权中间件之后
func NewRouter(db *gorm.DB, cacheStore cache.Store, cfg *config.Config) *Router {
	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	// 初始化服务
	tokenManager := authservice.NewTokenManager(cfg.JWT)
	authService := authservice.NewAuthService(db, tokenManager)
	noteService := noteservice.NewNoteService(db, cacheStore)
	labelService := labelservice.NewLabelService(db, cacheStore)

	// 初始化处理器
	authHandler := handler.NewAuthHandler(authService)
	noteHandler := handler.NewNoteHandler(noteService)
	labelHandler := handler.NewLabelHandler(labelService)

	// 使用中间件
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger())

	// 配置CORS
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Swagger文档路由
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Service is running",
		})
	})

	// API路由组
	api := engine.Group("/api/v1")
	{
		// 基础信息接口
		api.GET("/info", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"service": "KeepNote",
				"version": "1.0.0",
				"status":  "running",
			})
		})

		// 数据库状态检查
		api.GET("/db/status", func(c *gin.Context) {
			sqlDB, err := db.DB()
			if err != nil {
				c.JSON(500, gin.H{
					"error": "Database connection error",
				})
				return
			}

			if err := sqlDB.Ping(); err != nil {
				c.JSON(500, gin.H{
					"error": "Database ping failed",
				})
				return
			}

			c.JSON(200, gin.H{
				"status": "Database connection OK",
			})
		})

		// 认证接口，无需令牌
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/verify-email", authHandler.VerifyEmail)
			auth.POST("/login", authHandler.Login)
		}

		// 受保护接口
		authed := api.Group("")
		authed.Use(middleware.AuthRequired(tokenManager))

		// 笔记管理接口
		notes := authed.Group("/notes")
		{
			// 笔记基础CRUD操作
			notes.POST("", noteHandler.CreateNote)
			notes.GET("", noteHandler.ListNotes)
			notes.GET("/:id", noteHandler.GetNote)
			notes.PUT("/:id", noteHandler.UpdateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)

			// 归档
			notes.GET("/archived", noteHandler.ListArchived)
			notes.GET("/:id/archive", noteHandler.GetArchiveState)
			notes.PUT("/:id/archive", noteHandler.ToggleArchive)

			// 回收站
			notes.GET("/trashed", noteHandler.ListTrashed)
			notes.GET("/:id/trash", noteHandler.GetTrashState)
			notes.PUT("/:id/trash", noteHandler.ToggleTrash)

			// 笔记搜索
			notes.GET("/search", noteHandler.SearchNotes)

			// 笔记标签管理
			notes.GET("/:id/labels", noteHandler.ListNoteLabels)
			notes.PUT("/:id/labels", noteHandler.AttachLabel)

			// 协作者管理
			notes.GET("/:id/collaborators", noteHandler.ListNoteCollaborators)
			notes.PUT("/:id/collaborators", noteHandler.AttachCollaborator)

			// 提醒管理
			notes.GET("/:id/reminder", noteHandler.GetReminder)
			notes.PUT("/:id/reminder", noteHandler.SetReminder)
			notes.DELETE("/:id/reminder", noteHandler.ClearReminder)
		}

		// 标签管理接口
		labels := authed.Group("/labels")
		{
			labels.POST("", labelHandler.CreateLabel)
			labels.GET("", labelHandler.ListLabels)
			labels.GET("/:id", labelHandler.GetLabel)
			labels.PUT("/:id", labelHandler.UpdateLabel)
			labels.DELETE("/:id", labelHandler.DeleteLabel)
			labels.GET("/:id/notes", labelHandler.ListNotesByLabel)
		}
	}

	return &Router{
		engine: engine,
		db:     db,
	}
}

// GetEngine 获取Gin引擎
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// GetDB 获取数据库连接
func (r *Router) GetDB() *gorm.DB {
	return r.db
}

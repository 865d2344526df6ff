// @title KeepNote API
// @version 1.0
// @description 笔记管理服务，支持标签、协作者、归档、回收站、提醒和搜索
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 格式: Bearer {access_token}

// @externalDocs.description OpenAPI
// @externalDocs.url https://swagger.io/resources/open-api/
package main

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/weiwangfds/keepnote/config"
	"github.com/weiwangfds/keepnote/internal/cache"
	"github.com/weiwangfds/keepnote/internal/database"
	"github.com/weiwangfds/keepnote/internal/logger"
	"github.com/weiwangfds/keepnote/internal/router"
	"golang.org/x/net/http2"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	if err := logger.Init(&logger.Config{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Output:   cfg.Log.Output,
		FilePath: cfg.Log.FilePath,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化缓存
	// Redis不可用时降级为进程内缓存，服务仍可启动
	cacheStore := initCache(cfg.Cache)

	// 初始化路由
	r := router.NewRouter(db, cacheStore, cfg)

	var srv *http.Server
	if cfg.Server.EnableHTTPS {
		// 创建HTTPS服务器
		srv = &http.Server{
			Addr:         ":" + strconv.Itoa(cfg.Server.HTTPSPort),
			Handler:      r.GetEngine(),
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			TLSConfig: &tls.Config{
				NextProtos: []string{"h2", "http/1.1"}, // 支持HTTP/2和HTTP/1.1
			},
		}

		// 如果启用HTTP/2，配置HTTP/2支持
		if cfg.Server.EnableHTTP2 {
			if err := http2.ConfigureServer(srv, &http2.Server{}); err != nil {
				log.Fatalf("配置HTTP/2失败: %v", err)
			}
		}

		go func() {
			log.Printf("HTTPS服务器启动在端口 %d (HTTP/2: %v)", cfg.Server.HTTPSPort, cfg.Server.EnableHTTP2)
			if err := srv.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile); err != nil && err != http.ErrServerClosed {
				log.Fatalf("HTTPS服务器启动失败: %v", err)
			}
		}()
	} else {
		srv = &http.Server{
			Addr:         ":" + strconv.Itoa(cfg.Server.Port),
			Handler:      r.GetEngine(),
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		}

		go func() {
			log.Printf("HTTP服务器启动在端口 %d", cfg.Server.Port)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("HTTP服务器启动失败: %v", err)
			}
		}()
	}

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务器...")

	// 优雅关闭服务器
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("服务器强制关闭:", err)
	}

	log.Println("服务器已退出")
}

// initCache 初始化缓存后端
// 启用Redis且连接可用时使用RedisStore，否则使用进程内MemoryStore
func initCache(cfg config.CacheConfig) cache.Store {
	if !cfg.Enabled {
		logger.Info("Redis未启用，使用进程内缓存")
		return cache.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Errorf("Redis连接失败，降级为进程内缓存: %v", err)
		return cache.NewMemoryStore()
	}

	logger.Infof("Redis缓存已连接: %s", cfg.Addr)
	return cache.NewRedisStore(client, time.Duration(cfg.TTL)*time.Second)
}

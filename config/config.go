// Package config 提供应用程序配置管理功能
// 基于viper实现，支持配置文件和环境变量两种来源
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用程序总配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`   // HTTP服务配置
	Database DatabaseConfig `mapstructure:"database"` // 数据库配置
	Cache    CacheConfig    `mapstructure:"cache"`    // 缓存配置
	JWT      JWTConfig      `mapstructure:"jwt"`      // JWT认证配置
	Log      LogConfig      `mapstructure:"log"`      // 日志配置
}

// ServerConfig HTTP服务配置
type ServerConfig struct {
	Port         int    `mapstructure:"port"`           // HTTP监听端口
	HTTPSPort    int    `mapstructure:"https_port"`     // HTTPS监听端口
	EnableHTTPS  bool   `mapstructure:"enable_https"`   // 是否启用HTTPS
	EnableHTTP2  bool   `mapstructure:"enable_http2"`   // 是否启用HTTP/2
	TLSCertFile  string `mapstructure:"tls_cert_file"`  // TLS证书文件路径
	TLSKeyFile   string `mapstructure:"tls_key_file"`   // TLS私钥文件路径
	ReadTimeout  int    `mapstructure:"read_timeout"`   // 读超时（秒）
	WriteTimeout int    `mapstructure:"write_timeout"`  // 写超时（秒）
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`            // 数据库驱动，目前支持sqlite
	DSN             string `mapstructure:"dsn"`               // 数据源名称
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	MaxOpenConns    int    `mapstructure:"max_open_conns"`    // 最大打开连接数
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 连接最大生命周期（秒）
}

// CacheConfig 缓存配置
// Enabled为false时缓存层自动降级为纯内存实现，服务仍可正常工作
type CacheConfig struct {
	Enabled  bool   `mapstructure:"enabled"`  // 是否启用Redis缓存
	Addr     string `mapstructure:"addr"`     // Redis地址，如 localhost:6379
	Password string `mapstructure:"password"` // Redis密码
	DB       int    `mapstructure:"db"`       // Redis数据库编号
	TTL      int    `mapstructure:"ttl"`      // 缓存过期时间（秒），0表示不过期
}

// JWTConfig JWT认证配置
type JWTConfig struct {
	Secret          string `mapstructure:"secret"`            // 签名密钥
	AccessTokenTTL  int    `mapstructure:"access_token_ttl"`  // 访问令牌有效期（分钟）
	RefreshTokenTTL int    `mapstructure:"refresh_token_ttl"` // 刷新令牌有效期（分钟）
	VerifyTokenTTL  int    `mapstructure:"verify_token_ttl"`  // 邮箱验证令牌有效期（分钟）
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`     // 日志级别 (debug, info, warn, error)
	Format   string `mapstructure:"format"`    // 日志格式 (json, text)
	Output   string `mapstructure:"output"`    // 输出方式 (console, file, both)
	FilePath string `mapstructure:"file_path"` // 日志文件路径
}

// Load 加载应用程序配置
// 查找顺序: ./config.yaml -> ./config/config.yaml，环境变量前缀KEEPNOTE覆盖文件配置
// 返回:
//
//	*Config - 配置实例
//	error - 加载失败时返回错误
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("KEEPNOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// 配置文件缺失时使用默认值和环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret must be configured (KEEPNOTE_JWT_SECRET)")
	}

	return &cfg, nil
}

// setDefaults 设置默认配置
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.https_port", 8443)
	v.SetDefault("server.enable_https", false)
	v.SetDefault("server.enable_http2", false)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "keepnote.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 3600)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 0)

	v.SetDefault("jwt.access_token_ttl", 60)
	v.SetDefault("jwt.refresh_token_ttl", 7*24*60)
	v.SetDefault("jwt.verify_token_ttl", 24*60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "console")
	v.SetDefault("log.file_path", "logs/app.log")
}

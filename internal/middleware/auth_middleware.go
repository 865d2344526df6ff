// Package middleware 提供gin中间件
// 包含访问令牌鉴权和请求日志
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/weiwangfds/keepnote/internal/response"
	"github.com/weiwangfds/keepnote/internal/service/auth"
)

// AuthRequired 访问令牌鉴权中间件
// 从Authorization头解析Bearer令牌，校验通过后将用户ID写入请求上下文
func AuthRequired(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "缺少访问令牌")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "访问令牌格式错误")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(parts[1], auth.TokenAccess)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

package handler

import (
	"github.com/gin-gonic/gin"
)

// userIDKey 鉴权中间件写入的上下文键
const userIDKey = "user_id"

// currentUserID 从请求上下文中取出当前用户ID
// 受保护路由必须经过鉴权中间件，取不到值说明路由配置错误
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := v.(uint)
	return userID, ok
}

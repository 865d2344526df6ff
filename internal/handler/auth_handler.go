// Package handler 提供HTTP处理器
// 处理器只负责参数绑定、鉴权上下文提取和响应输出，业务规则全部下沉到服务层
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/weiwangfds/keepnote/internal/response"
	"github.com/weiwangfds/keepnote/internal/service/auth"
)

// AuthHandler 认证处理器
// 处理注册、邮箱验证和登录相关的HTTP请求
type AuthHandler struct {
	authService auth.AuthService
}

// NewAuthHandler 创建认证处理器实例
// 参数:
//   authService - 认证服务接口
// 返回:
//   *AuthHandler - 认证处理器实例
func NewAuthHandler(authService auth.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// registerResponse 注册响应数据
// 验证令牌随响应返回，由调用方通过邮件等渠道投递给用户
type registerResponse struct {
	Email       string `json:"email"`        // 邮箱
	Username    string `json:"username"`     // 用户名
	VerifyToken string `json:"verify_token"` // 邮箱验证令牌
}

// Register 注册新用户
// @Summary 用户注册
// @Description 使用邮箱、用户名和密码注册账号，用户名仅允许字母和数字，注册后需完成邮箱验证才能登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body auth.RegisterRequest true "注册请求"
// @Success 201 {object} response.APIResponse{data=registerResponse} "注册成功"
// @Failure 400 {object} response.APIResponse "请求参数错误或用户名格式非法"
// @Failure 500 {object} response.APIResponse "服务器内部错误"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误", err)
		return
	}

	user, verifyToken, err := h.authService.Register(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "注册成功", registerResponse{
		Email:       user.Email,
		Username:    user.Username,
		VerifyToken: verifyToken,
	})
}

// verifyEmailRequest 邮箱验证请求
type verifyEmailRequest struct {
	Token string `json:"token" binding:"required"` // 邮箱验证令牌
}

// VerifyEmail 验证邮箱
// @Summary 邮箱验证
// @Description 使用注册时签发的验证令牌完成邮箱验证，重复验证是幂等的
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body verifyEmailRequest true "验证请求"
// @Success 200 {object} response.APIResponse "验证成功"
// @Failure 400 {object} response.APIResponse "请求参数错误"
// @Failure 401 {object} response.APIResponse "令牌无效或已过期"
// @Router /api/v1/auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误", err)
		return
	}

	if err := h.authService.VerifyEmail(req.Token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "邮箱验证成功", nil)
}

// Login 用户登录
// @Summary 用户登录
// @Description 使用邮箱和密码登录，成功后返回访问令牌和刷新令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body auth.LoginRequest true "登录请求"
// @Success 200 {object} response.APIResponse{data=auth.LoginResult} "登录成功"
// @Failure 400 {object} response.APIResponse "请求参数错误"
// @Failure 401 {object} response.APIResponse "凭证错误、账号停用或邮箱未验证"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误", err)
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "登录成功", result)
}

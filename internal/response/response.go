// Package response 提供统一的API响应封装
// 所有处理器通过本包输出响应，保证成功与错误的信封格式一致
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/weiwangfds/keepnote/internal/errors"
)

// APIResponse 统一API响应格式
type APIResponse struct {
	Success bool        `json:"success"`         // 请求是否成功
	Message string      `json:"message"`         // 响应消息
	Data    interface{} `json:"data,omitempty"`  // 响应数据
	Error   string      `json:"error,omitempty"` // 错误信息
}

// Success 返回200成功响应
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created 返回201创建成功响应
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BadRequest 返回400参数错误响应
// 用于请求体绑定失败等尚未进入服务层的错误
func BadRequest(c *gin.Context, message string, err error) {
	resp := APIResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// Unauthorized 返回401未授权响应
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, APIResponse{
		Success: false,
		Message: message,
	})
}

// Error 将服务层错误转换为HTTP错误响应
// AppError按错误码映射状态码，其余错误一律按500处理
func Error(c *gin.Context, err error) {
	appErr, ok := apperrors.GetAppError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: apperrors.GetErrorMessage(apperrors.ErrInternalServer),
			Error:   err.Error(),
		})
		return
	}

	c.JSON(statusOf(appErr.Code), APIResponse{
		Success: false,
		Message: appErr.Message,
		Error:   appErr.Details,
	})
}

// statusOf 错误码到HTTP状态码的映射
func statusOf(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrNotFound,
		apperrors.ErrNoteNotFound,
		apperrors.ErrLabelNotFound,
		apperrors.ErrCollaboratorNotFound:
		return http.StatusNotFound
	case apperrors.ErrInvalidParams,
		apperrors.ErrReminderInPast,
		apperrors.ErrSearchQueryRequired,
		apperrors.ErrUsernameNotAlnum,
		apperrors.ErrEmailAlreadyExists:
		return http.StatusBadRequest
	case apperrors.ErrConflict,
		apperrors.ErrSelfCollaboration:
		return http.StatusConflict
	case apperrors.ErrUnauthorized,
		apperrors.ErrAuthFailed,
		apperrors.ErrInvalidCredentials,
		apperrors.ErrAccountInactive,
		apperrors.ErrEmailNotVerified,
		apperrors.ErrTokenInvalid,
		apperrors.ErrTokenExpired:
		return http.StatusUnauthorized
	case apperrors.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Package errors 定义应用程序统一的错误码和错误类型
// 所有领域错误在服务层以AppError表达，处理器层据此映射HTTP状态码
package errors

import (
	"fmt"

	"github.com/weiwangfds/keepnote/internal/i18n"
)

// ErrorCode 错误码类型
type ErrorCode int

// 定义错误码常量
const (
	// 通用错误码 (1000-1999)
	ErrSuccess        ErrorCode = 0    // 成功
	ErrInternalServer ErrorCode = 1000 // 服务器内部错误
	ErrInvalidParams  ErrorCode = 1001 // 参数错误
	ErrUnauthorized   ErrorCode = 1002 // 未授权
	ErrForbidden      ErrorCode = 1003 // 禁止访问
	ErrNotFound       ErrorCode = 1004 // 资源未找到
	ErrConflict       ErrorCode = 1005 // 资源冲突

	// 认证相关错误码 (2000-2999)
	ErrAuthFailed         ErrorCode = 2000 // 认证失败
	ErrInvalidCredentials ErrorCode = 2001 // 邮箱或密码错误
	ErrAccountInactive    ErrorCode = 2002 // 账号已停用
	ErrEmailNotVerified   ErrorCode = 2003 // 邮箱未验证
	ErrEmailAlreadyExists ErrorCode = 2004 // 邮箱已注册
	ErrUsernameNotAlnum   ErrorCode = 2005 // 用户名含非字母数字字符
	ErrTokenInvalid       ErrorCode = 2006 // 令牌无效
	ErrTokenExpired       ErrorCode = 2007 // 令牌过期

	// 笔记相关错误码 (3000-3999)
	ErrNoteNotFound         ErrorCode = 3000 // 笔记不存在（或对当前用户不可见）
	ErrReminderInPast       ErrorCode = 3001 // 提醒时间早于当前时间
	ErrSearchQueryRequired  ErrorCode = 3002 // 搜索关键词为空
	ErrSelfCollaboration    ErrorCode = 3003 // 将自己添加为协作者
	ErrCollaboratorNotFound ErrorCode = 3004 // 协作者用户不存在

	// 标签相关错误码 (4000-4999)
	ErrLabelNotFound ErrorCode = 4000 // 标签不存在（或不属于当前用户）

	// 数据库相关错误码 (5000-5999)
	ErrDatabaseQuery       ErrorCode = 5000 // 数据库查询错误
	ErrDatabaseInsert      ErrorCode = 5001 // 数据库插入错误
	ErrDatabaseUpdate      ErrorCode = 5002 // 数据库更新错误
	ErrDatabaseDelete      ErrorCode = 5003 // 数据库删除错误
	ErrDatabaseTransaction ErrorCode = 5004 // 数据库事务错误
)

// AppError 应用错误结构体
// @Description 应用程序统一错误格式
type AppError struct {
	// 错误码
	Code ErrorCode `json:"code"`
	// 错误消息
	Message string `json:"message"`
	// 详细错误信息
	Details string `json:"details,omitempty"`
	// 原始错误
	OriginalError error `json:"-"`
}

// Error 实现error接口
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%d] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 返回原始错误，支持errors.Is/As链
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// WithDetails 添加详细错误信息
func (e *AppError) WithDetails(details string) *AppError {
	return &AppError{
		Code:          e.Code,
		Message:       e.Message,
		Details:       details,
		OriginalError: e.OriginalError,
	}
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewByCode 创建应用错误，消息取自错误码对应的语言包
func NewByCode(code ErrorCode) *AppError {
	return New(code, GetErrorMessage(code))
}

// Wrap 包装原始错误
func Wrap(code ErrorCode, message string, err error) *AppError {
	appErr := &AppError{
		Code:          code,
		Message:       message,
		OriginalError: err,
	}
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}

// IsAppError 判断是否为应用错误
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError 获取应用错误
func GetAppError(err error) (*AppError, bool) {
	appErr, ok := err.(*AppError)
	return appErr, ok
}

// IsCode 判断错误是否为指定错误码的应用错误
func IsCode(err error, code ErrorCode) bool {
	if appErr, ok := GetAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// 错误码到i18n键的映射
var errorCodeToKeyMap = map[ErrorCode]string{
	ErrSuccess:        "success",
	ErrInternalServer: "internal_server_error",
	ErrInvalidParams:  "invalid_params",
	ErrUnauthorized:   "unauthorized",
	ErrForbidden:      "forbidden",
	ErrNotFound:       "not_found",
	ErrConflict:       "conflict",

	ErrAuthFailed:         "authentication_failed",
	ErrInvalidCredentials: "invalid_credentials",
	ErrAccountInactive:    "account_inactive",
	ErrEmailNotVerified:   "email_not_verified",
	ErrEmailAlreadyExists: "email_already_exists",
	ErrUsernameNotAlnum:   "username_not_alnum",
	ErrTokenInvalid:       "token_invalid",
	ErrTokenExpired:       "token_expired",

	ErrNoteNotFound:         "note_not_found",
	ErrReminderInPast:       "reminder_in_past",
	ErrSearchQueryRequired:  "search_query_required",
	ErrSelfCollaboration:    "self_collaboration",
	ErrCollaboratorNotFound: "collaborator_not_found",

	ErrLabelNotFound: "label_not_found",

	ErrDatabaseQuery:       "database_query",
	ErrDatabaseInsert:      "database_insert",
	ErrDatabaseUpdate:      "database_update",
	ErrDatabaseDelete:      "database_delete",
	ErrDatabaseTransaction: "database_transaction",
}

// GetErrorMessage 根据错误码获取错误消息（使用默认语言）
func GetErrorMessage(code ErrorCode) string {
	return GetErrorMessageWithLang(code, i18n.GetInstance().GetDefaultLanguage())
}

// GetErrorMessageWithLang 根据错误码和语言获取错误消息
func GetErrorMessageWithLang(code ErrorCode, lang string) string {
	key, exists := errorCodeToKeyMap[code]
	if !exists {
		key = "unknown_error"
	}
	return i18n.GetInstance().Translate(key, lang)
}

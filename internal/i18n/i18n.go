// Package i18n 提供国际化支持
// 负责管理应用程序的语言包和错误消息翻译
package i18n

import (
	"sync"

	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/weiwangfds/keepnote/internal/logger"
)

// 支持的语言
const (
	LangZhCN = "zh-CN"
	LangEnUS = "en-US"
)

var (
	instance *I18n
	once     sync.Once

	// 语言包存储
	translations = map[string]map[string]string{
		LangZhCN: {
			"success":               "成功",
			"internal_server_error": "服务器内部错误",
			"invalid_params":        "参数错误",
			"unauthorized":          "未授权",
			"forbidden":             "禁止访问",
			"not_found":             "资源未找到",
			"conflict":              "资源冲突",

			"authentication_failed": "认证失败",
			"invalid_credentials":   "邮箱或密码错误",
			"account_inactive":      "账号已停用",
			"email_not_verified":    "邮箱尚未验证",
			"email_already_exists":  "邮箱已被注册",
			"username_not_alnum":    "用户名只能包含字母和数字",
			"token_invalid":         "令牌无效",
			"token_expired":         "令牌已过期",

			"note_not_found":         "笔记不存在",
			"reminder_in_past":       "提醒时间必须晚于当前时间",
			"search_query_required":  "搜索关键词不能为空",
			"self_collaboration":     "不能将自己添加为协作者",
			"collaborator_not_found": "协作者用户不存在",

			"label_not_found": "标签不存在",

			"database_query":       "数据库查询错误",
			"database_insert":      "数据库插入错误",
			"database_update":      "数据库更新错误",
			"database_delete":      "数据库删除错误",
			"database_transaction": "数据库事务错误",

			"unknown_error": "未知错误",
		},
		LangEnUS: {
			"success":               "Success",
			"internal_server_error": "Internal Server Error",
			"invalid_params":        "Invalid Parameters",
			"unauthorized":          "Unauthorized",
			"forbidden":             "Forbidden",
			"not_found":             "Resource Not Found",
			"conflict":              "Resource Conflict",

			"authentication_failed": "Authentication Failed",
			"invalid_credentials":   "Invalid email or password",
			"account_inactive":      "Account is deactivated",
			"email_not_verified":    "Email is not verified",
			"email_already_exists":  "Email is already registered",
			"username_not_alnum":    "Username should contain alphanumeric values only",
			"token_invalid":         "Invalid token",
			"token_expired":         "Token has expired",

			"note_not_found":         "Note Not Found",
			"reminder_in_past":       "Reminder must be set in the future",
			"search_query_required":  "Search query is required",
			"self_collaboration":     "Cannot add yourself as a collaborator",
			"collaborator_not_found": "Collaborator user not found",

			"label_not_found": "Label Not Found",

			"database_query":       "Database Query Error",
			"database_insert":      "Database Insert Error",
			"database_update":      "Database Update Error",
			"database_delete":      "Database Delete Error",
			"database_transaction": "Database Transaction Error",

			"unknown_error": "Unknown Error",
		},
	}
)

// I18n 国际化管理器
type I18n struct {
	translators map[string]ut.Translator
	defaultLang string
}

// GetInstance 获取I18n单例
func GetInstance() *I18n {
	once.Do(func() {
		instance = &I18n{
			translators: make(map[string]ut.Translator),
			defaultLang: LangEnUS,
		}
		instance.initTranslators()
	})
	return instance
}

// initTranslators 初始化翻译器
func (i *I18n) initTranslators() {
	zhCN := zh.New()
	enUS := en_US.New()
	uni := ut.New(enUS, zhCN, enUS)

	// 注册支持的语言 - 使用locale库的标识符
	langMappings := map[string]string{
		LangZhCN: "zh",
		LangEnUS: "en_US",
	}

	for ourLang, localeLang := range langMappings {
		trans, found := uni.GetTranslator(localeLang)
		if !found {
			logger.Errorf("初始化翻译器失败 for language %s (locale: %s): translator not found", ourLang, localeLang)
			continue
		}
		i.translators[ourLang] = trans
	}
}

// Translate 根据键和语言获取翻译
// 未知的键返回unknown_error对应的翻译
func (i *I18n) Translate(key, lang string) string {
	msgs, ok := translations[lang]
	if !ok {
		msgs = translations[i.defaultLang]
	}

	if msg, ok := msgs[key]; ok {
		return msg
	}
	if msg, ok := msgs["unknown_error"]; ok {
		return msg
	}
	return key
}

// GetDefaultLanguage 获取默认语言
func (i *I18n) GetDefaultLanguage() string {
	return i.defaultLang
}

// SetDefaultLanguage 设置默认语言
func (i *I18n) SetDefaultLanguage(lang string) {
	if _, ok := translations[lang]; ok {
		i.defaultLang = lang
	}
}

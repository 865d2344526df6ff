// Package auth 提供注册、邮箱验证和登录相关的业务逻辑服务
// 密码使用bcrypt散列存储，登录成功后签发访问令牌和刷新令牌
package auth

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/weiwangfds/keepnote/internal/database"
	apperrors "github.com/weiwangfds/keepnote/internal/errors"
	"github.com/weiwangfds/keepnote/internal/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService 认证服务接口
type AuthService interface {
	// Register 注册新用户
	// 参数:
	//   req - 注册请求
	// 返回:
	//   *database.User - 创建的用户
	//   string - 邮箱验证令牌（由上层投递，邮件发送不在本服务范围内）
	//   error - 错误信息
	Register(req *RegisterRequest) (*database.User, string, error)

	// VerifyEmail 使用验证令牌完成邮箱验证
	// 对已验证的账号重复调用是幂等的
	VerifyEmail(token string) error

	// Login 邮箱密码登录
	// 凭证错误、账号停用、邮箱未验证均返回认证失败类错误
	Login(req *LoginRequest) (*LoginResult, error)
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`    // 邮箱
	Username string `json:"username" binding:"required,min=3,max=100"` // 用户名，仅允许字母和数字
	Password string `json:"password" binding:"required,min=6,max=68"`  // 密码
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // 邮箱
	Password string `json:"password" binding:"required"`    // 密码
}

// LoginResult 登录结果
type LoginResult struct {
	Email        string `json:"email"`         // 邮箱
	Username     string `json:"username"`      // 用户名
	AccessToken  string `json:"access_token"`  // 访问令牌
	RefreshToken string `json:"refresh_token"` // 刷新令牌
}

// usernamePattern 用户名格式：仅字母和数字
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// isUniqueViolation 判断错误是否为唯一索引冲突
// SQLite驱动未启用gorm错误翻译，需同时匹配原始错误文本
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// authService 认证服务实现
type authService struct {
	db     *gorm.DB
	tokens *TokenManager
}

// NewAuthService 创建认证服务实例
// 参数:
//
//	db - 数据库连接
//	tokens - 令牌管理器
//
// 返回:
//
//	AuthService - 认证服务接口
func NewAuthService(db *gorm.DB, tokens *TokenManager) AuthService {
	return &authService{
		db:     db,
		tokens: tokens,
	}
}

// Register 注册新用户
func (s *authService) Register(req *RegisterRequest) (*database.User, string, error) {
	if !usernamePattern.MatchString(req.Username) {
		return nil, "", apperrors.NewByCode(apperrors.ErrUsernameNotAlnum)
	}

	// 邮箱唯一性检查
	var count int64
	if err := s.db.Model(&database.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}
	if count > 0 {
		return nil, "", apperrors.NewByCode(apperrors.ErrEmailAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, "failed to hash password", err)
	}

	user := &database.User{
		UserID:       uuid.New().String(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		IsActive:     true,
		IsVerified:   false,
	}

	if err := s.db.Create(user).Error; err != nil {
		// 预检查与插入之间存在并发窗口，冲突最终由邮箱唯一索引兜底
		if isUniqueViolation(err) {
			return nil, "", apperrors.NewByCode(apperrors.ErrEmailAlreadyExists)
		}
		return nil, "", apperrors.Wrap(apperrors.ErrDatabaseInsert, apperrors.GetErrorMessage(apperrors.ErrDatabaseInsert), err)
	}

	verifyToken, err := s.tokens.Generate(user.ID, TokenVerify)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, "failed to generate verification token", err)
	}

	logger.Infof("用户注册成功: %s (%s)", user.Username, user.Email)
	return user, verifyToken, nil
}

// VerifyEmail 使用验证令牌完成邮箱验证
func (s *authService) VerifyEmail(token string) error {
	claims, err := s.tokens.Parse(token, TokenVerify)
	if err != nil {
		return err
	}

	var user database.User
	if err := s.db.First(&user, claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewByCode(apperrors.ErrTokenInvalid)
		}
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}

	if user.IsVerified {
		return nil
	}

	if err := s.db.Model(&user).Update("is_verified", true).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseUpdate, apperrors.GetErrorMessage(apperrors.ErrDatabaseUpdate), err)
	}

	logger.Infof("邮箱验证成功: %s", user.Email)
	return nil
}

// Login 邮箱密码登录
func (s *authService) Login(req *LoginRequest) (*LoginResult, error) {
	var user database.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewByCode(apperrors.ErrInvalidCredentials)
		}
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.NewByCode(apperrors.ErrInvalidCredentials)
	}
	if !user.IsActive {
		return nil, apperrors.NewByCode(apperrors.ErrAccountInactive)
	}
	if !user.IsVerified {
		return nil, apperrors.NewByCode(apperrors.ErrEmailNotVerified)
	}

	accessToken, err := s.tokens.Generate(user.ID, TokenAccess)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, "failed to generate access token", err)
	}
	refreshToken, err := s.tokens.Generate(user.ID, TokenRefresh)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, "failed to generate refresh token", err)
	}

	logger.Infof("用户登录成功: %s", user.Email)
	return &LoginResult{
		Email:        user.Email,
		Username:     user.Username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

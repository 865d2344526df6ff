package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/weiwangfds/keepnote/config"
	apperrors "github.com/weiwangfds/keepnote/internal/errors"
)

// TokenType 令牌类型
type TokenType string

const (
	TokenAccess  TokenType = "access"  // 访问令牌，请求受保护接口时携带
	TokenRefresh TokenType = "refresh" // 刷新令牌
	TokenVerify  TokenType = "verify"  // 邮箱验证令牌
)

// Claims JWT载荷
// 不同用途的令牌共用一个结构，通过TokenType区分，解析时校验类型防止混用
type Claims struct {
	UserID    uint      `json:"user_id"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager JWT令牌管理器
// 使用HMAC-SHA256签名，密钥来自配置
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	verifyTTL  time.Duration
}

// NewTokenManager 创建令牌管理器
func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{
		secret:     []byte(cfg.Secret),
		accessTTL:  time.Duration(cfg.AccessTokenTTL) * time.Minute,
		refreshTTL: time.Duration(cfg.RefreshTokenTTL) * time.Minute,
		verifyTTL:  time.Duration(cfg.VerifyTokenTTL) * time.Minute,
	}
}

// Generate 为用户签发指定类型的令牌
func (m *TokenManager) Generate(userID uint, typ TokenType) (string, error) {
	var ttl time.Duration
	switch typ {
	case TokenAccess:
		ttl = m.accessTTL
	case TokenRefresh:
		ttl = m.refreshTTL
	case TokenVerify:
		ttl = m.verifyTTL
	default:
		return "", apperrors.New(apperrors.ErrInternalServer, "unknown token type")
	}

	now := time.Now()
	claims := Claims{
		UserID:    userID,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse 解析并校验令牌
// 类型不匹配、签名无效均返回令牌无效错误；过期单独区分，便于客户端刷新
func (m *TokenManager) Parse(tokenStr string, want TokenType) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewByCode(apperrors.ErrTokenExpired)
		}
		return nil, apperrors.NewByCode(apperrors.ErrTokenInvalid)
	}

	if !token.Valid || claims.TokenType != want {
		return nil, apperrors.NewByCode(apperrors.ErrTokenInvalid)
	}

	return claims, nil
}

package auth

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiwangfds/keepnote/config"
	"github.com/weiwangfds/keepnote/internal/database"
	apperrors "github.com/weiwangfds/keepnote/internal/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupAuthService 设置测试用认证服务
func setupAuthService(t *testing.T) (AuthService, *TokenManager, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	tokens := NewTokenManager(config.JWTConfig{
		Secret:          "test-secret",
		AccessTokenTTL:  60,
		RefreshTokenTTL: 7 * 24 * 60,
		VerifyTokenTTL:  24 * 60,
	})

	return NewAuthService(db, tokens), tokens, db
}

// registerAndVerify 注册并完成邮箱验证，返回创建的用户
func registerAndVerify(t *testing.T, svc AuthService, email, username, password string) *database.User {
	user, verifyToken, err := svc.Register(&RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(verifyToken))
	return user
}

// TestRegister 测试用户注册
func TestRegister(t *testing.T) {
	svc, _, db := setupAuthService(t)

	t.Run("注册成功", func(t *testing.T) {
		user, verifyToken, err := svc.Register(&RegisterRequest{
			Email:    "alice@example.com",
			Username: "alice01",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, user.UserID)
		assert.NotEmpty(t, verifyToken)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsVerified)

		// 密码以散列存储
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.NotEmpty(t, user.PasswordHash)
	})

	t.Run("用户名含非字母数字字符被拒绝", func(t *testing.T) {
		for _, name := range []string{"bob smith", "bob_1", "bob!", "用户"} {
			_, _, err := svc.Register(&RegisterRequest{
				Email:    "bob@example.com",
				Username: name,
				Password: "secret123",
			})
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.ErrUsernameNotAlnum), "用户名 %q 应被拒绝", name)
		}

		// 非法注册不应留下用户记录
		var count int64
		require.NoError(t, db.Model(&database.User{}).Where("email = ?", "bob@example.com").Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("邮箱重复被拒绝", func(t *testing.T) {
		_, _, err := svc.Register(&RegisterRequest{
			Email:    "alice@example.com",
			Username: "alice02",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrEmailAlreadyExists))
	})
}

// TestUniqueViolationMapping 测试唯一索引冲突的识别
// 预检查与插入之间存在并发窗口，插入阶段的冲突必须映射为邮箱已存在而不是数据库错误
func TestUniqueViolationMapping(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, isUniqueViolation(stderrors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, isUniqueViolation(stderrors.New("database is locked")))
	assert.False(t, isUniqueViolation(nil))
}

// TestVerifyEmail 测试邮箱验证
func TestVerifyEmail(t *testing.T) {
	svc, tokens, db := setupAuthService(t)

	user, verifyToken, err := svc.Register(&RegisterRequest{
		Email:    "carol@example.com",
		Username: "carol",
		Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("验证成功", func(t *testing.T) {
		require.NoError(t, svc.VerifyEmail(verifyToken))

		var stored database.User
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.True(t, stored.IsVerified)
	})

	t.Run("重复验证幂等", func(t *testing.T) {
		assert.NoError(t, svc.VerifyEmail(verifyToken))
	})

	t.Run("伪造令牌被拒绝", func(t *testing.T) {
		err := svc.VerifyEmail("not-a-token")
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrTokenInvalid))
	})

	t.Run("访问令牌不能用于邮箱验证", func(t *testing.T) {
		accessToken, err := tokens.Generate(user.ID, TokenAccess)
		require.NoError(t, err)

		err = svc.VerifyEmail(accessToken)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrTokenInvalid))
	})
}

// TestLogin 测试登录失败阶梯和成功路径
func TestLogin(t *testing.T) {
	svc, tokens, db := setupAuthService(t)

	user := registerAndVerify(t, svc, "dave@example.com", "dave", "secret123")

	t.Run("登录成功并签发令牌", func(t *testing.T) {
		result, err := svc.Login(&LoginRequest{Email: "dave@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "dave@example.com", result.Email)
		assert.Equal(t, "dave", result.Username)

		// 访问令牌可解析且类型正确
		claims, err := tokens.Parse(result.AccessToken, TokenAccess)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)

		// 刷新令牌不能当访问令牌用
		_, err = tokens.Parse(result.RefreshToken, TokenAccess)
		assert.Error(t, err)
	})

	t.Run("邮箱不存在返回凭证错误", func(t *testing.T) {
		_, err := svc.Login(&LoginRequest{Email: "ghost@example.com", Password: "secret123"})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("密码错误返回凭证错误", func(t *testing.T) {
		_, err := svc.Login(&LoginRequest{Email: "dave@example.com", Password: "wrong"})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("账号停用拒绝登录", func(t *testing.T) {
		require.NoError(t, db.Model(&database.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)
		defer func() {
			require.NoError(t, db.Model(&database.User{}).Where("id = ?", user.ID).Update("is_active", true).Error)
		}()

		_, err := svc.Login(&LoginRequest{Email: "dave@example.com", Password: "secret123"})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrAccountInactive))
	})

	t.Run("邮箱未验证拒绝登录", func(t *testing.T) {
		_, _, err := svc.Register(&RegisterRequest{
			Email:    "eve@example.com",
			Username: "eve1",
			Password: "secret123",
		})
		require.NoError(t, err)

		_, err = svc.Login(&LoginRequest{Email: "eve@example.com", Password: "secret123"})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrEmailNotVerified))
	})
}

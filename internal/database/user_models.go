package database

import (
	"time"
)

// User 用户模型
// 存储注册用户的身份信息，密码只保存bcrypt散列
// 邮箱验证之前账号不能登录
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                       // 主键ID，自增
	UserID       string    `gorm:"not null;uniqueIndex;size:36" json:"user_id"` // 对外用户ID，UUID
	Email        string    `gorm:"not null;uniqueIndex;size:255" json:"email"`  // 邮箱，唯一
	Username     string    `gorm:"not null;size:100" json:"username"`           // 用户名，仅允许字母和数字
	PasswordHash string    `gorm:"not null;size:100" json:"-"`                  // 密码散列，不对外序列化
	IsActive     bool      `gorm:"default:true" json:"is_active"`               // 是否激活，停用账号无法登录
	IsVerified   bool      `gorm:"default:false" json:"is_verified"`            // 邮箱是否已验证
	CreatedAt    time.Time `json:"created_at"`                                  // 注册时间
	UpdatedAt    time.Time `json:"updated_at"`                                  // 最后修改时间
}

// TableName 指定User模型对应的数据库表名
func (User) TableName() string {
	return "users"
}

package database

import (
	"fmt"
	"time"

	"github.com/weiwangfds/keepnote/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init 初始化数据库连接
func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		// 启用WAL模式和其他SQLite优化选项
		dsn := cfg.DSN + "?_journal_mode=WAL&_synchronous=NORMAL&_cache_size=1000&_timeout=5000&_busy_timeout=5000"
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// 对于SQLite，限制并发连接数以避免锁定问题
	if cfg.Driver == "sqlite" {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	// 自动迁移表结构
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	return db, nil
}

// AutoMigrate 自动迁移数据库表结构并创建索引
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&User{},             // 用户表
		&Note{},             // 笔记主表
		&Label{},            // 标签表
		&NoteLabel{},        // 笔记标签关联表
		&NoteCollaborator{}, // 笔记协作者关联表
	)
	if err != nil {
		return err
	}

	return createIndexes(db)
}

// createIndexes 创建查询相关的复合索引
// 用途: 优化按所有者的活跃/归档/回收站列表查询和协作关系查询
func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// 活跃/归档列表查询优化：按所有者和状态标志过滤
		"CREATE INDEX IF NOT EXISTS idx_notes_owner_flags ON notes(owner_id, is_archive, is_delete)",
		// 回收站列表查询优化
		"CREATE INDEX IF NOT EXISTS idx_notes_owner_trashed ON notes(owner_id, is_delete, trashed_at DESC)",
		// 协作关系反查优化：根据用户查其协作的笔记
		"CREATE INDEX IF NOT EXISTS idx_note_collaborators_user ON note_collaborators(user_id, note_id)",
		// 标签关联反查优化
		"CREATE INDEX IF NOT EXISTS idx_note_labels_label ON note_labels(label_id, note_id)",
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			return err
		}
	}

	return nil
}

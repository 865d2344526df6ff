// Package label 提供标签管理相关的业务逻辑服务
// 标签严格归属于单个用户，没有协作概念，所有操作都按所有者过滤
package label

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/weiwangfds/keepnote/internal/cache"
	"github.com/weiwangfds/keepnote/internal/database"
	apperrors "github.com/weiwangfds/keepnote/internal/errors"
	"github.com/weiwangfds/keepnote/internal/logger"
	"github.com/weiwangfds/keepnote/internal/policy"
	"gorm.io/gorm"
)

// LabelService 标签服务接口
// 非所有者访问标签与标签不存在不可区分，一律返回标签不存在
type LabelService interface {
	// CreateLabel 创建标签
	// 标签按(名称, 所有者)唯一，名称已存在时复用现有标签而不是报错
	CreateLabel(ctx context.Context, userID uint, req *CreateLabelRequest) (*database.Label, error)

	// ListLabels 列出当前用户的全部标签
	ListLabels(ctx context.Context, userID uint) ([]database.Label, error)

	// GetLabel 获取标签详情
	// 缓存命中直接返回，未命中查库并在查到时回填缓存
	GetLabel(ctx context.Context, userID uint, labelID string) (*database.Label, error)

	// UpdateLabel 重命名标签
	// 持久化成功后以最新状态覆盖缓存条目
	UpdateLabel(ctx context.Context, userID uint, labelID string, req *UpdateLabelRequest) (*database.Label, error)

	// DeleteLabel 删除标签及其与笔记的关联边，笔记本身不受影响
	DeleteLabel(ctx context.Context, userID uint, labelID string) error

	// ListNotesByLabel 列出携带指定标签的笔记
	ListNotesByLabel(ctx context.Context, userID uint, labelID string) (*database.Label, []database.Note, error)
}

// CreateLabelRequest 创建标签请求
type CreateLabelRequest struct {
	Name string `json:"name" binding:"required,max=100"` // 标签名称
}

// UpdateLabelRequest 更新标签请求
type UpdateLabelRequest struct {
	Name string `json:"name" binding:"required,max=100"` // 标签名称
}

// labelService 标签服务实现
type labelService struct {
	db    *gorm.DB
	cache cache.Store
}

// NewLabelService 创建标签服务实例
// 参数:
//
//	db - 数据库连接
//	cacheStore - 缓存存储
//
// 返回:
//
//	LabelService - 标签服务接口
func NewLabelService(db *gorm.DB, cacheStore cache.Store) LabelService {
	return &labelService{
		db:    db,
		cache: cacheStore,
	}
}

// findOwned 按对外ID查找当前用户拥有的标签
func (s *labelService) findOwned(userID uint, labelID string) (*database.Label, error) {
	var label database.Label
	err := s.db.Where("label_id = ? AND owner_id = ?", labelID, userID).First(&label).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewByCode(apperrors.ErrLabelNotFound)
		}
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}
	return &label, nil
}

// cachedLabel 查询缓存中的标签条目，缓存层错误按未命中处理
func (s *labelService) cachedLabel(ctx context.Context, key cache.Key) *database.Label {
	entry, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warnf("缓存读取失败，降级为查库: %s: %v", key, err)
		return nil
	}
	if !hit {
		return nil
	}
	return entry.AsLabel()
}

// setCachedLabel 写入标签缓存，失败仅记录日志
func (s *labelService) setCachedLabel(ctx context.Context, key cache.Key, label *database.Label) {
	if err := s.cache.Set(ctx, key, cache.NewLabelEntry(label)); err != nil {
		logger.Warnf("缓存写入失败: %s: %v", key, err)
	}
}

// CreateLabel 创建标签
func (s *labelService) CreateLabel(ctx context.Context, userID uint, req *CreateLabelRequest) (*database.Label, error) {
	// (名称, 所有者)已存在时复用，保持创建的幂等性
	var existing database.Label
	err := s.db.Where("owner_id = ? AND name = ?", userID, req.Name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}

	label := &database.Label{
		LabelID: uuid.New().String(),
		Name:    req.Name,
		OwnerID: userID,
	}
	if err := s.db.Create(label).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseInsert, apperrors.GetErrorMessage(apperrors.ErrDatabaseInsert), err)
	}

	s.setCachedLabel(ctx, cache.LabelKey(userID, label.LabelID), label)

	logger.Infof("标签创建成功: %s (用户 %d)", label.Name, userID)
	return label, nil
}

// ListLabels 列出当前用户的全部标签
func (s *labelService) ListLabels(_ context.Context, userID uint) ([]database.Label, error) {
	var labels []database.Label
	err := s.db.Where("owner_id = ?", userID).Order("name ASC").Find(&labels).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}
	return labels, nil
}

// GetLabel 获取标签详情
// 缓存条目形态: 单个标签
func (s *labelService) GetLabel(ctx context.Context, userID uint, labelID string) (*database.Label, error) {
	key := cache.LabelKey(userID, labelID)
	if cached := s.cachedLabel(ctx, key); cached != nil && policy.CanUseLabel(userID, cached) {
		return cached, nil
	}

	label, err := s.findOwned(userID, labelID)
	if err != nil {
		return nil, err
	}

	s.setCachedLabel(ctx, key, label)
	return label, nil
}

// UpdateLabel 重命名标签
func (s *labelService) UpdateLabel(ctx context.Context, userID uint, labelID string, req *UpdateLabelRequest) (*database.Label, error) {
	label, err := s.findOwned(userID, labelID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(label).Update("name", req.Name).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseUpdate, apperrors.GetErrorMessage(apperrors.ErrDatabaseUpdate), err)
	}

	fresh, err := s.findOwned(userID, labelID)
	if err != nil {
		return nil, err
	}
	s.setCachedLabel(ctx, cache.LabelKey(userID, labelID), fresh)

	logger.Infof("标签重命名成功: %s -> %s (用户 %d)", label.LabelID, req.Name, userID)
	return fresh, nil
}

// DeleteLabel 删除标签及其关联边
func (s *labelService) DeleteLabel(ctx context.Context, userID uint, labelID string) error {
	label, err := s.findOwned(userID, labelID)
	if err != nil {
		return err
	}

	// 先清缓存再删记录
	if err := s.cache.Delete(ctx, cache.LabelKey(userID, labelID)); err != nil {
		logger.Warnf("缓存清除失败: %s: %v", cache.LabelKey(userID, labelID), err)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("label_id = ?", label.ID).Delete(&database.NoteLabel{}).Error; err != nil {
		tx.Rollback()
		return apperrors.Wrap(apperrors.ErrDatabaseDelete, apperrors.GetErrorMessage(apperrors.ErrDatabaseDelete), err)
	}
	if err := tx.Delete(&database.Label{}, label.ID).Error; err != nil {
		tx.Rollback()
		return apperrors.Wrap(apperrors.ErrDatabaseDelete, apperrors.GetErrorMessage(apperrors.ErrDatabaseDelete), err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseTransaction, apperrors.GetErrorMessage(apperrors.ErrDatabaseTransaction), err)
	}

	logger.Infof("标签删除成功: %s (用户 %d)", label.Name, userID)
	return nil
}

// ListNotesByLabel 列出携带指定标签的笔记
// 包含已归档的笔记，排除回收站中的
func (s *labelService) ListNotesByLabel(ctx context.Context, userID uint, labelID string) (*database.Label, []database.Note, error) {
	label, err := s.GetLabel(ctx, userID, labelID)
	if err != nil {
		return nil, nil, err
	}

	var notes []database.Note
	err = s.db.Model(&database.Note{}).
		Joins("JOIN note_labels nl ON nl.note_id = notes.id").
		Where("nl.label_id = ? AND notes.is_delete = ?", label.ID, false).
		Preload("Labels").
		Preload("Collaborators").
		Order("notes.updated_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}

	return label, notes, nil
}

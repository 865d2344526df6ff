// Package note 提供笔记管理相关的业务逻辑服务
// 包含笔记的增删改查、归档、回收站、提醒、标签与协作者管理以及搜索
// 读取路径统一走旁路缓存，写入路径负责刷新或清除对应的缓存条目
package note

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/weiwangfds/keepnote/internal/cache"
	"github.com/weiwangfds/keepnote/internal/database"
	apperrors "github.com/weiwangfds/keepnote/internal/errors"
	"github.com/weiwangfds/keepnote/internal/logger"
	"github.com/weiwangfds/keepnote/internal/policy"
	"gorm.io/gorm"
)

// NoteService 笔记服务接口
// 所有方法的第一个业务参数都是发起请求的用户ID，可见性过滤在查询层完成：
// 对用户不可见的笔记与不存在的笔记不可区分，一律返回笔记不存在
type NoteService interface {
	// CreateNote 创建新笔记，所有者为当前用户
	// 创建成功后填充该笔记的缓存条目
	CreateNote(ctx context.Context, userID uint, req *CreateNoteRequest) (*database.Note, error)

	// ListActiveNotes 列出当前用户可见的活跃笔记
	// 包含用户拥有的和作为协作者参与的笔记，排除已归档和回收站中的
	ListActiveNotes(ctx context.Context, userID uint) ([]database.Note, error)

	// GetNote 获取笔记详情（所有者或协作者）
	// 缓存命中直接返回，未命中查库并在查到时回填缓存
	GetNote(ctx context.Context, userID uint, noteID string) (*database.Note, error)

	// UpdateNote 更新笔记标题和正文（所有者或协作者）
	// 持久化成功后以数据库中的最新状态覆盖相关缓存条目
	UpdateNote(ctx context.Context, userID uint, noteID string, req *UpdateNoteRequest) (*database.Note, error)

	// DeleteNote 硬删除笔记（仅所有者）
	// 先清除缓存条目再删除存储记录和关联边
	DeleteNote(ctx context.Context, userID uint, noteID string) error

	// GetArchiveView 查看笔记的归档状态（仅所有者）
	GetArchiveView(ctx context.Context, userID uint, noteID string) (*database.Note, error)

	// ToggleArchive 翻转笔记的归档标志（仅所有者）
	ToggleArchive(ctx context.Context, userID uint, noteID string) (*database.Note, error)

	// ListArchivedNotes 列出当前用户已归档且不在回收站的笔记
	ListArchivedNotes(ctx context.Context, userID uint) ([]database.Note, error)

	// GetTrashView 查看笔记的回收站状态（仅所有者，包含已在回收站的笔记）
	GetTrashView(ctx context.Context, userID uint, noteID string) (*database.Note, error)

	// ToggleTrash 翻转笔记的回收站标志（仅所有者）
	// 移入回收站时写入TrashedAt并清除缓存；恢复时清空TrashedAt并刷新缓存
	ToggleTrash(ctx context.Context, userID uint, noteID string) (*database.Note, error)

	// ListTrashedNotes 列出当前用户回收站中的笔记
	ListTrashedNotes(ctx context.Context, userID uint) ([]database.Note, error)

	// AttachLabel 按名称为笔记附加标签（所有者或协作者）
	// 标签按(名称, 当前用户)查找，不存在则透明创建；重复附加是无操作
	AttachLabel(ctx context.Context, userID uint, noteID string, labelName string) (*database.Note, error)

	// AttachCollaborator 按邮箱为笔记添加协作者（所有者或协作者）
	// 目标用户不存在返回协作者不存在；目标为当前用户返回冲突；重复添加是无操作
	AttachCollaborator(ctx context.Context, userID uint, noteID string, email string) (*database.Note, error)

	// SearchNotes 按空白分词搜索当前用户可见的活跃笔记
	// 每个词独立走缓存，命中返回该词此前的匹配集合；结果按笔记ID去重
	SearchNotes(ctx context.Context, userID uint, query string) ([]database.Note, error)

	// SetReminder 设置笔记提醒（所有者或协作者）
	// 提醒时间必须严格晚于当前时间，设置成功覆盖已有提醒
	SetReminder(ctx context.Context, userID uint, noteID string, remindAt time.Time) (*database.Note, error)

	// ClearReminder 清除笔记提醒（所有者或协作者）
	// 第二个返回值表示清除前是否设置了提醒，未设置时不视为错误
	ClearReminder(ctx context.Context, userID uint, noteID string) (*database.Note, bool, error)
}

// CreateNoteRequest 创建笔记请求
type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required,max=200"` // 笔记标题
	Content string `json:"content"`                          // 笔记内容
}

// UpdateNoteRequest 更新笔记请求
// 只有标题和正文可以通过该请求修改，状态标志走各自的专用接口
type UpdateNoteRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=200"` // 笔记标题
	Content *string `json:"content"`                           // 笔记内容
}

// noteService 笔记服务实现
type noteService struct {
	db    *gorm.DB
	cache cache.Store
}

// NewNoteService 创建笔记服务实例
// 参数:
//
//	db - 数据库连接
//	cacheStore - 缓存存储
//
// 返回:
//
//	NoteService - 笔记服务接口
func NewNoteService(db *gorm.DB, cacheStore cache.Store) NoteService {
	return &noteService{
		db:    db,
		cache: cacheStore,
	}
}

// visibleQuery 构造当前用户可见笔记的基础查询
// 可见 = 用户是所有者，或在协作者集合中；LEFT JOIN带用户条件，每条笔记至多匹配一行
func (s *noteService) visibleQuery(userID uint) *gorm.DB {
	return s.db.Model(&database.Note{}).
		Joins("LEFT JOIN note_collaborators nc ON nc.note_id = notes.id AND nc.user_id = ?", userID).
		Where("notes.owner_id = ? OR nc.user_id IS NOT NULL", userID)
}

// findVisible 按对外ID查找当前用户可见的笔记
// includeDeleted为false时排除回收站中的笔记
func (s *noteService) findVisible(userID uint, noteID string, includeDeleted bool) (*database.Note, error) {
	query := s.visibleQuery(userID).
		Preload("Labels").
		Preload("Collaborators").
		Where("notes.note_id = ?", noteID)
	if !includeDeleted {
		query = query.Where("notes.is_delete = ?", false)
	}

	var note database.Note
	if err := query.First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewByCode(apperrors.ErrNoteNotFound)
		}
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}
	return &note, nil
}

// findOwned 按对外ID查找当前用户拥有的笔记
// 管理类操作（归档、回收、删除）使用该查询，协作者视角下与不存在等价
func (s *noteService) findOwned(userID uint, noteID string, includeDeleted bool) (*database.Note, error) {
	query := s.db.
		Preload("Labels").
		Preload("Collaborators").
		Where("note_id = ? AND owner_id = ?", noteID, userID)
	if !includeDeleted {
		query = query.Where("is_delete = ?", false)
	}

	var note database.Note
	if err := query.First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewByCode(apperrors.ErrNoteNotFound)
		}
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}
	return &note, nil
}

// escapeLike 转义LIKE模式中的通配符和转义符
// 搜索词必须按字面匹配，词中的%和_不具有通配语义
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// memberIDs 返回笔记的所有相关用户：所有者和全部协作者
func memberIDs(note *database.Note) []uint {
	ids := []uint{note.OwnerID}
	for _, c := range note.Collaborators {
		if c.ID != note.OwnerID {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// cachedNote 查询缓存中的单条笔记条目
// 缓存层错误按未命中处理，读取退化为直接查库
func (s *noteService) cachedNote(ctx context.Context, key cache.Key) *database.Note {
	entry, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warnf("缓存读取失败，降级为查库: %s: %v", key, err)
		return nil
	}
	if !hit {
		return nil
	}
	return entry.AsNote()
}

// setCachedNote 写入单条笔记缓存，失败仅记录日志
func (s *noteService) setCachedNote(ctx context.Context, key cache.Key, note *database.Note) {
	if err := s.cache.Set(ctx, key, cache.NewNoteEntry(note)); err != nil {
		logger.Warnf("缓存写入失败: %s: %v", key, err)
	}
}

// refreshNoteCache 用数据库中的最新状态覆盖所有相关用户的缓存条目
// 覆盖值来自一次全新的查库，保证后续读取能看到包括存储默认值在内的全部变更
func (s *noteService) refreshNoteCache(ctx context.Context, noteID string) *database.Note {
	var note database.Note
	err := s.db.
		Preload("Labels").
		Preload("Collaborators").
		Where("note_id = ?", noteID).
		First(&note).Error
	if err != nil {
		logger.Warnf("缓存刷新查询失败: note %s: %v", noteID, err)
		return nil
	}

	for _, uid := range memberIDs(&note) {
		s.setCachedNote(ctx, cache.NoteKey(uid, noteID), &note)
	}
	return &note
}

// purgeNoteCache 清除所有相关用户的缓存条目
func (s *noteService) purgeNoteCache(ctx context.Context, note *database.Note) {
	for _, uid := range memberIDs(note) {
		key := cache.NoteKey(uid, note.NoteID)
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Warnf("缓存清除失败: %s: %v", key, err)
		}
	}
}

// CreateNote 创建新笔记
func (s *noteService) CreateNote(ctx context.Context, userID uint, req *CreateNoteRequest) (*database.Note, error) {
	note := &database.Note{
		NoteID:  uuid.New().String(),
		Title:   req.Title,
		Content: req.Content,
		OwnerID: userID,
	}

	if err := s.db.Create(note).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseInsert, apperrors.GetErrorMessage(apperrors.ErrDatabaseInsert), err)
	}

	s.setCachedNote(ctx, cache.NoteKey(userID, note.NoteID), note)

	logger.Infof("笔记创建成功: %s (用户 %d)", note.NoteID, userID)
	return note, nil
}

// ListActiveNotes 列出当前用户可见的活跃笔记
func (s *noteService) ListActiveNotes(_ context.Context, userID uint) ([]database.Note, error) {
	var notes []database.Note
	err := s.visibleQuery(userID).
		Preload("Labels").
		Preload("Collaborators").
		Where("notes.is_archive = ? AND notes.is_delete = ?", false, false).
		Order("notes.updated_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}
	return notes, nil
}

// GetNote 获取笔记详情
// 缓存条目形态: 单条笔记
func (s *noteService) GetNote(ctx context.Context, userID uint, noteID string) (*database.Note, error) {
	key := cache.NoteKey(userID, noteID)
	if cached := s.cachedNote(ctx, key); cached != nil {
		return cached, nil
	}

	note, err := s.findVisible(userID, noteID, false)
	if err != nil {
		return nil, err
	}

	s.setCachedNote(ctx, key, note)
	return note, nil
}

// UpdateNote 更新笔记标题和正文
func (s *noteService) UpdateNote(ctx context.Context, userID uint, noteID string, req *UpdateNoteRequest) (*database.Note, error) {
	note, err := s.findVisible(userID, noteID, false)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}

	if err := s.db.Model(note).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseUpdate, apperrors.GetErrorMessage(apperrors.ErrDatabaseUpdate), err)
	}

	fresh := s.refreshNoteCache(ctx, noteID)
	if fresh == nil {
		return note, nil
	}

	logger.Infof("笔记更新成功: %s (用户 %d)", noteID, userID)
	return fresh, nil
}

// DeleteNote 硬删除笔记
func (s *noteService) DeleteNote(ctx context.Context, userID uint, noteID string) error {
	note, err := s.findOwned(userID, noteID, true)
	if err != nil {
		return err
	}

	// 先清缓存再删记录，避免删除后残留可命中的条目
	s.purgeNoteCache(ctx, note)

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("note_id = ?", note.ID).Delete(&database.NoteLabel{}).Error; err != nil {
		tx.Rollback()
		return apperrors.Wrap(apperrors.ErrDatabaseDelete, apperrors.GetErrorMessage(apperrors.ErrDatabaseDelete), err)
	}
	if err := tx.Where("note_id = ?", note.ID).Delete(&database.NoteCollaborator{}).Error; err != nil {
		tx.Rollback()
		return apperrors.Wrap(apperrors.ErrDatabaseDelete, apperrors.GetErrorMessage(apperrors.ErrDatabaseDelete), err)
	}
	if err := tx.Delete(&database.Note{}, note.ID).Error; err != nil {
		tx.Rollback()
		return apperrors.Wrap(apperrors.ErrDatabaseDelete, apperrors.GetErrorMessage(apperrors.ErrDatabaseDelete), err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseTransaction, apperrors.GetErrorMessage(apperrors.ErrDatabaseTransaction), err)
	}

	logger.Infof("笔记删除成功: %s (用户 %d)", noteID, userID)
	return nil
}

// GetArchiveView 查看笔记的归档状态
// 与笔记详情共用缓存键，条目形态同为单条笔记
// 协作者的详情缓存条目不能流入该仅所有者视图，命中后仍需校验管理权限
func (s *noteService) GetArchiveView(ctx context.Context, userID uint, noteID string) (*database.Note, error) {
	key := cache.NoteKey(userID, noteID)
	if cached := s.cachedNote(ctx, key); cached != nil && policy.CanManage(userID, cached) {
		return cached, nil
	}

	note, err := s.findOwned(userID, noteID, false)
	if err != nil {
		return nil, err
	}

	s.setCachedNote(ctx, key, note)
	return note, nil
}

// ToggleArchive 翻转笔记的归档标志
func (s *noteService) ToggleArchive(ctx context.Context, userID uint, noteID string) (*database.Note, error) {
	note, err := s.findOwned(userID, noteID, false)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"is_archive": !note.IsArchive,
		"updated_at": time.Now(),
	}
	if err := s.db.Model(note).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseUpdate, apperrors.GetErrorMessage(apperrors.ErrDatabaseUpdate), err)
	}

	fresh := s.refreshNoteCache(ctx, noteID)
	if fresh == nil {
		return s.findOwned(userID, noteID, false)
	}

	logger.Infof("笔记归档状态切换为 %v: %s (用户 %d)", fresh.IsArchive, noteID, userID)
	return fresh, nil
}

// ListArchivedNotes 列出当前用户已归档且不在回收站的笔记
func (s *noteService) ListArchivedNotes(_ context.Context, userID uint) ([]database.Note, error) {
	var notes []database.Note
	err := s.db.
		Preload("Labels").
		Preload("Collaborators").
		Where("owner_id = ? AND is_archive = ? AND is_delete = ?", userID, true, false).
		Order("updated_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}
	return notes, nil
}

// GetTrashView 查看笔记的回收站状态
// 回收站中的笔记不写入缓存，命中只可能来自未删除状态
func (s *noteService) GetTrashView(ctx context.Context, userID uint, noteID string) (*database.Note, error) {
	key := cache.NoteKey(userID, noteID)
	if cached := s.cachedNote(ctx, key); cached != nil && policy.CanManage(userID, cached) {
		return cached, nil
	}

	note, err := s.findOwned(userID, noteID, true)
	if err != nil {
		return nil, err
	}

	if !note.IsDelete {
		s.setCachedNote(ctx, key, note)
	}
	return note, nil
}

// ToggleTrash 翻转笔记的回收站标志
// IsDelete和TrashedAt在同一次更新中写入，保证两者同生同灭
func (s *noteService) ToggleTrash(ctx context.Context, userID uint, noteID string) (*database.Note, error) {
	note, err := s.findOwned(userID, noteID, true)
	if err != nil {
		return nil, err
	}

	var updates map[string]interface{}
	if note.IsDelete {
		updates = map[string]interface{}{
			"is_delete":  false,
			"trashed_at": nil,
			"updated_at": time.Now(),
		}
	} else {
		now := time.Now()
		updates = map[string]interface{}{
			"is_delete":  true,
			"trashed_at": now,
			"updated_at": now,
		}
	}

	if err := s.db.Model(note).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseUpdate, apperrors.GetErrorMessage(apperrors.ErrDatabaseUpdate), err)
	}

	if note.IsDelete {
		// 恢复：刷新相关用户的缓存条目
		if fresh := s.refreshNoteCache(ctx, noteID); fresh != nil {
			logger.Infof("笔记已从回收站恢复: %s (用户 %d)", noteID, userID)
			return fresh, nil
		}
	} else {
		// 移入回收站：清除缓存，回收站中的笔记不允许缓存命中
		s.purgeNoteCache(ctx, note)
		logger.Infof("笔记已移入回收站: %s (用户 %d)", noteID, userID)
	}

	return s.findOwned(userID, noteID, true)
}

// ListTrashedNotes 列出当前用户回收站中的笔记
func (s *noteService) ListTrashedNotes(_ context.Context, userID uint) ([]database.Note, error) {
	var notes []database.Note
	err := s.db.
		Preload("Labels").
		Preload("Collaborators").
		Where("owner_id = ? AND is_delete = ?", userID, true).
		Order("trashed_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}
	return notes, nil
}

// AttachLabel 按名称为笔记附加标签
func (s *noteService) AttachLabel(ctx context.Context, userID uint, noteID string, labelName string) (*database.Note, error) {
	note, err := s.findVisible(userID, noteID, false)
	if err != nil {
		return nil, err
	}

	// 标签按(名称, 当前用户)解析，不存在则透明创建
	var label database.Label
	err = s.db.Where("owner_id = ? AND name = ?", userID, labelName).First(&label).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		label = database.Label{
			LabelID: uuid.New().String(),
			Name:    labelName,
			OwnerID: userID,
		}
		if err := s.db.Create(&label).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrDatabaseInsert, apperrors.GetErrorMessage(apperrors.ErrDatabaseInsert), err)
		}
		logger.Infof("标签透明创建: %s (用户 %d)", labelName, userID)
	} else if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}

	// 集合语义：已存在的关联边不重复创建
	var count int64
	if err := s.db.Model(&database.NoteLabel{}).
		Where("note_id = ? AND label_id = ?", note.ID, label.ID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}
	if count == 0 {
		edge := database.NoteLabel{NoteID: note.ID, LabelID: label.ID}
		if err := s.db.Create(&edge).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrDatabaseInsert, apperrors.GetErrorMessage(apperrors.ErrDatabaseInsert), err)
		}
	}

	fresh := s.refreshNoteCache(ctx, noteID)
	if fresh == nil {
		return s.findVisible(userID, noteID, false)
	}
	return fresh, nil
}

// AttachCollaborator 按邮箱为笔记添加协作者
func (s *noteService) AttachCollaborator(ctx context.Context, userID uint, noteID string, email string) (*database.Note, error) {
	note, err := s.findVisible(userID, noteID, false)
	if err != nil {
		return nil, err
	}

	var target database.User
	if err := s.db.Where("email = ?", email).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewByCode(apperrors.ErrCollaboratorNotFound)
		}
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}

	if target.ID == userID {
		return nil, apperrors.NewByCode(apperrors.ErrSelfCollaboration)
	}
	// 所有者天然拥有全部权限，不出现在协作者集合中
	if target.ID == note.OwnerID {
		return nil, apperrors.New(apperrors.ErrConflict, apperrors.GetErrorMessage(apperrors.ErrConflict)).
			WithDetails("note owner cannot be added as a collaborator")
	}

	var count int64
	if err := s.db.Model(&database.NoteCollaborator{}).
		Where("note_id = ? AND user_id = ?", note.ID, target.ID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
	}
	if count == 0 {
		edge := database.NoteCollaborator{NoteID: note.ID, UserID: target.ID}
		if err := s.db.Create(&edge).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrDatabaseInsert, apperrors.GetErrorMessage(apperrors.ErrDatabaseInsert), err)
		}
		logger.Infof("协作者添加成功: %s -> %s (用户 %d)", email, noteID, userID)
	}

	fresh := s.refreshNoteCache(ctx, noteID)
	if fresh == nil {
		return s.findVisible(userID, noteID, false)
	}
	return fresh, nil
}

// SearchNotes 按空白分词搜索当前用户可见的活跃笔记
// 每个搜索词对应一个集合形态的缓存条目，多个词的结果合并后按笔记ID去重
func (s *noteService) SearchNotes(ctx context.Context, userID uint, query string) ([]database.Note, error) {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return nil, apperrors.NewByCode(apperrors.ErrSearchQueryRequired)
	}

	var merged []database.Note
	for _, token := range tokens {
		key := cache.SearchKey(userID, token)

		entry, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			logger.Warnf("搜索缓存读取失败，降级为查库: %s: %v", key, err)
			hit = false
		}
		if hit {
			if notes, ok := entry.AsNoteList(); ok {
				merged = append(merged, notes...)
				continue
			}
		}

		var notes []database.Note
		pattern := "%" + escapeLike(token) + "%"
		err = s.visibleQuery(userID).
			Preload("Labels").
			Preload("Collaborators").
			Where("notes.is_archive = ? AND notes.is_delete = ?", false, false).
			Where(`notes.title LIKE ? ESCAPE '\' OR notes.content LIKE ? ESCAPE '\'`, pattern, pattern).
			Find(&notes).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery), err)
		}

		// 只缓存非空结果
		if len(notes) > 0 {
			if err := s.cache.Set(ctx, key, cache.NewNoteListEntry(notes)); err != nil {
				logger.Warnf("搜索缓存写入失败: %s: %v", key, err)
			}
		}
		merged = append(merged, notes...)
	}

	// 同一条笔记可能命中多个搜索词，按ID去重
	seen := make(map[uint]bool, len(merged))
	result := make([]database.Note, 0, len(merged))
	for _, n := range merged {
		if !seen[n.ID] {
			seen[n.ID] = true
			result = append(result, n)
		}
	}
	return result, nil
}

// SetReminder 设置笔记提醒
func (s *noteService) SetReminder(ctx context.Context, userID uint, noteID string, remindAt time.Time) (*database.Note, error) {
	note, err := s.findVisible(userID, noteID, false)
	if err != nil {
		return nil, err
	}

	if !remindAt.After(time.Now()) {
		return nil, apperrors.NewByCode(apperrors.ErrReminderInPast)
	}

	updates := map[string]interface{}{
		"reminder":   remindAt,
		"updated_at": time.Now(),
	}
	if err := s.db.Model(note).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseUpdate, apperrors.GetErrorMessage(apperrors.ErrDatabaseUpdate), err)
	}

	fresh := s.refreshNoteCache(ctx, noteID)
	if fresh == nil {
		return s.findVisible(userID, noteID, false)
	}

	logger.Infof("提醒设置成功: %s @ %s (用户 %d)", noteID, remindAt.Format(time.RFC3339), userID)
	return fresh, nil
}

// ClearReminder 清除笔记提醒
func (s *noteService) ClearReminder(ctx context.Context, userID uint, noteID string) (*database.Note, bool, error) {
	note, err := s.findVisible(userID, noteID, false)
	if err != nil {
		return nil, false, err
	}

	if note.Reminder == nil {
		return note, false, nil
	}

	updates := map[string]interface{}{
		"reminder":   nil,
		"updated_at": time.Now(),
	}
	if err := s.db.Model(note).Updates(updates).Error; err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrDatabaseUpdate, apperrors.GetErrorMessage(apperrors.ErrDatabaseUpdate), err)
	}

	fresh := s.refreshNoteCache(ctx, noteID)
	if fresh == nil {
		fresh, err = s.findVisible(userID, noteID, false)
		if err != nil {
			return nil, false, err
		}
	}

	logger.Infof("提醒清除成功: %s (用户 %d)", noteID, userID)
	return fresh, true, nil
}

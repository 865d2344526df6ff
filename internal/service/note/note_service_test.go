package note

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiwangfds/keepnote/internal/cache"
	"github.com/weiwangfds/keepnote/internal/database"
	apperrors "github.com/weiwangfds/keepnote/internal/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupNoteService 设置测试用笔记服务
// 使用内存SQLite和进程内缓存
func setupNoteService(t *testing.T) (NoteService, *cache.MemoryStore, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	store := cache.NewMemoryStore()
	return NewNoteService(db, store), store, db
}

// createUser 创建测试用户
func createUser(t *testing.T, db *gorm.DB, username string) *database.User {
	user := &database.User{
		UserID:     uuid.New().String(),
		Email:      fmt.Sprintf("%s@example.com", username),
		Username:   username,
		IsActive:   true,
		IsVerified: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// TestCreateAndGetNote 测试创建和查询笔记
func TestCreateAndGetNote(t *testing.T) {
	ctx := context.Background()
	svc, store, db := setupNoteService(t)
	owner := createUser(t, db, "owner")

	t.Run("创建笔记", func(t *testing.T) {
		created, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{
			Title:   "购物清单",
			Content: "牛奶 鸡蛋",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.NoteID)
		assert.Equal(t, owner.ID, created.OwnerID)
		assert.False(t, created.IsArchive)
		assert.False(t, created.IsDelete)
		assert.Nil(t, created.TrashedAt)

		// 创建后缓存条目已填充
		entry, hit, err := store.Get(ctx, cache.NoteKey(owner.ID, created.NoteID))
		require.NoError(t, err)
		require.True(t, hit)
		assert.Equal(t, created.NoteID, entry.AsNote().NoteID)
	})

	t.Run("获取笔记详情", func(t *testing.T) {
		created, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "会议记录"})
		require.NoError(t, err)

		got, err := svc.GetNote(ctx, owner.ID, created.NoteID)
		require.NoError(t, err)
		assert.Equal(t, "会议记录", got.Title)
	})

	t.Run("其他用户不可见等价于不存在", func(t *testing.T) {
		stranger := createUser(t, db, "stranger")
		created, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "私密笔记"})
		require.NoError(t, err)

		_, err = svc.GetNote(ctx, stranger.ID, created.NoteID)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrNoteNotFound))
	})

	t.Run("不存在的笔记返回NotFound", func(t *testing.T) {
		_, err := svc.GetNote(ctx, owner.ID, "no-such-note")
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrNoteNotFound))
	})
}

// TestUpdateNoteRefreshesCache 测试更新后缓存反映最新状态
func TestUpdateNoteRefreshesCache(t *testing.T) {
	ctx := context.Background()
	svc, store, db := setupNoteService(t)
	owner := createUser(t, db, "owner")

	created, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "旧标题", Content: "旧内容"})
	require.NoError(t, err)

	newTitle := "新标题"
	updated, err := svc.UpdateNote(ctx, owner.ID, created.NoteID, &UpdateNoteRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "新标题", updated.Title)
	assert.Equal(t, "旧内容", updated.Content)

	// 缓存中的条目与数据库一致
	entry, hit, err := store.Get(ctx, cache.NoteKey(owner.ID, created.NoteID))
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "新标题", entry.AsNote().Title)

	// 缓存命中路径返回的也是最新值
	got, err := svc.GetNote(ctx, owner.ID, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "新标题", got.Title)
}

// TestArchiveToggle 测试归档状态翻转
func TestArchiveToggle(t *testing.T) {
	ctx := context.Background()
	svc, _, db := setupNoteService(t)
	owner := createUser(t, db, "owner")

	created, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "待归档"})
	require.NoError(t, err)

	t.Run("归档后从活跃列表消失", func(t *testing.T) {
		archived, err := svc.ToggleArchive(ctx, owner.ID, created.NoteID)
		require.NoError(t, err)
		assert.True(t, archived.IsArchive)

		active, err := svc.ListActiveNotes(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, active)

		archivedList, err := svc.ListArchivedNotes(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, archivedList, 1)
		assert.Equal(t, created.NoteID, archivedList[0].NoteID)
	})

	t.Run("再次翻转恢复活跃", func(t *testing.T) {
		restored, err := svc.ToggleArchive(ctx, owner.ID, created.NoteID)
		require.NoError(t, err)
		assert.False(t, restored.IsArchive)

		active, err := svc.ListActiveNotes(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, active, 1)
	})

	t.Run("协作者不能归档", func(t *testing.T) {
		collab := createUser(t, db, "collab")
		_, err := svc.AttachCollaborator(ctx, owner.ID, created.NoteID, collab.Email)
		require.NoError(t, err)

		_, err = svc.ToggleArchive(ctx, collab.ID, created.NoteID)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrNoteNotFound))
	})

	t.Run("协作者的详情缓存不泄漏到归档视图", func(t *testing.T) {
		collab := createUser(t, db, "collab2")
		_, err := svc.AttachCollaborator(ctx, owner.ID, created.NoteID, collab.Email)
		require.NoError(t, err)

		// 详情读取合法且填充协作者的缓存条目
		_, err = svc.GetNote(ctx, collab.ID, created.NoteID)
		require.NoError(t, err)

		// 仅所有者的归档视图必须拒绝，即使缓存已命中
		_, err = svc.GetArchiveView(ctx, collab.ID, created.NoteID)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrNoteNotFound))

		_, err = svc.GetTrashView(ctx, collab.ID, created.NoteID)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrNoteNotFound))
	})
}

// TestTrashRoundTrip 测试回收站往返
func TestTrashRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, store, db := setupNoteService(t)
	owner := createUser(t, db, "owner")

	created, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "待回收"})
	require.NoError(t, err)

	t.Run("移入回收站", func(t *testing.T) {
		trashed, err := svc.ToggleTrash(ctx, owner.ID, created.NoteID)
		require.NoError(t, err)
		assert.True(t, trashed.IsDelete)
		require.NotNil(t, trashed.TrashedAt)

		// 缓存条目已清除
		_, hit, err := store.Get(ctx, cache.NoteKey(owner.ID, created.NoteID))
		require.NoError(t, err)
		assert.False(t, hit)

		// 活跃列表和详情均不可见
		active, err := svc.ListActiveNotes(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, active)

		_, err = svc.GetNote(ctx, owner.ID, created.NoteID)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrNoteNotFound))

		// 回收站列表可见
		trashedList, err := svc.ListTrashedNotes(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, trashedList, 1)

		// 回收站状态视图仍可访问
		view, err := svc.GetTrashView(ctx, owner.ID, created.NoteID)
		require.NoError(t, err)
		assert.True(t, view.IsDelete)
	})

	t.Run("恢复后时间戳清空", func(t *testing.T) {
		restored, err := svc.ToggleTrash(ctx, owner.ID, created.NoteID)
		require.NoError(t, err)
		assert.False(t, restored.IsDelete)
		assert.Nil(t, restored.TrashedAt)

		active, err := svc.ListActiveNotes(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, active, 1)
	})
}

// TestHardDelete 测试硬删除
func TestHardDelete(t *testing.T) {
	ctx := context.Background()
	svc, store, db := setupNoteService(t)
	owner := createUser(t, db, "owner")
	collab := createUser(t, db, "collab")

	created, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "终将删除"})
	require.NoError(t, err)
	_, err = svc.AttachLabel(ctx, owner.ID, created.NoteID, "临时")
	require.NoError(t, err)
	_, err = svc.AttachCollaborator(ctx, owner.ID, created.NoteID, collab.Email)
	require.NoError(t, err)

	t.Run("协作者不能删除", func(t *testing.T) {
		err := svc.DeleteNote(ctx, collab.ID, created.NoteID)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrNoteNotFound))
	})

	t.Run("所有者删除后记录和关联边消失", func(t *testing.T) {
		require.NoError(t, svc.DeleteNote(ctx, owner.ID, created.NoteID))

		var noteCount, labelEdges, collabEdges int64
		require.NoError(t, db.Model(&database.Note{}).Where("note_id = ?", created.NoteID).Count(&noteCount).Error)
		require.NoError(t, db.Model(&database.NoteLabel{}).Count(&labelEdges).Error)
		require.NoError(t, db.Model(&database.NoteCollaborator{}).Count(&collabEdges).Error)
		assert.Zero(t, noteCount)
		assert.Zero(t, labelEdges)
		assert.Zero(t, collabEdges)

		// 所有相关用户的缓存条目都被清除
		_, hit, _ := store.Get(ctx, cache.NoteKey(owner.ID, created.NoteID))
		assert.False(t, hit)
		_, hit, _ = store.Get(ctx, cache.NoteKey(collab.ID, created.NoteID))
		assert.False(t, hit)

		// 标签本身不受影响
		var labelCount int64
		require.NoError(t, db.Model(&database.Label{}).Count(&labelCount).Error)
		assert.Equal(t, int64(1), labelCount)
	})
}

// TestAttachLabel 测试标签附加的创建复用和集合语义
func TestAttachLabel(t *testing.T) {
	ctx := context.Background()
	svc, _, db := setupNoteService(t)
	owner := createUser(t, db, "owner")

	created, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "笔记"})
	require.NoError(t, err)

	t.Run("不存在的标签透明创建", func(t *testing.T) {
		result, err := svc.AttachLabel(ctx, owner.ID, created.NoteID, "工作")
		require.NoError(t, err)
		require.Len(t, result.Labels, 1)
		assert.Equal(t, "工作", result.Labels[0].Name)
	})

	t.Run("重复附加不产生重复边", func(t *testing.T) {
		result, err := svc.AttachLabel(ctx, owner.ID, created.NoteID, "工作")
		require.NoError(t, err)
		assert.Len(t, result.Labels, 1)

		var edges int64
		require.NoError(t, db.Model(&database.NoteLabel{}).Count(&edges).Error)
		assert.Equal(t, int64(1), edges)

		// 标签没有被重复创建
		var labels int64
		require.NoError(t, db.Model(&database.Label{}).Where("name = ?", "工作").Count(&labels).Error)
		assert.Equal(t, int64(1), labels)
	})

	t.Run("第二个标签同样生效", func(t *testing.T) {
		result, err := svc.AttachLabel(ctx, owner.ID, created.NoteID, "紧急")
		require.NoError(t, err)
		assert.Len(t, result.Labels, 2)
	})
}

// TestAttachCollaborator 测试协作者添加与协作可见性
func TestAttachCollaborator(t *testing.T) {
	ctx := context.Background()
	svc, _, db := setupNoteService(t)
	owner := createUser(t, db, "owner")
	collab := createUser(t, db, "collab")

	created, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "共享笔记", Content: "原始内容"})
	require.NoError(t, err)

	t.Run("目标用户不存在", func(t *testing.T) {
		_, err := svc.AttachCollaborator(ctx, owner.ID, created.NoteID, "ghost@example.com")
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCollaboratorNotFound))
	})

	t.Run("不能添加自己", func(t *testing.T) {
		_, err := svc.AttachCollaborator(ctx, owner.ID, created.NoteID, owner.Email)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrSelfCollaboration))
	})

	t.Run("添加成功后协作者可见可编辑", func(t *testing.T) {
		result, err := svc.AttachCollaborator(ctx, owner.ID, created.NoteID, collab.Email)
		require.NoError(t, err)
		require.Len(t, result.Collaborators, 1)

		// 协作者的活跃列表包含该笔记
		list, err := svc.ListActiveNotes(ctx, collab.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, created.NoteID, list[0].NoteID)

		// 协作者可以编辑正文
		newContent := "协作者修改的内容"
		updated, err := svc.UpdateNote(ctx, collab.ID, created.NoteID, &UpdateNoteRequest{Content: &newContent})
		require.NoError(t, err)
		assert.Equal(t, newContent, updated.Content)
	})

	t.Run("重复添加是无操作", func(t *testing.T) {
		result, err := svc.AttachCollaborator(ctx, owner.ID, created.NoteID, collab.Email)
		require.NoError(t, err)
		assert.Len(t, result.Collaborators, 1)
	})

	t.Run("协作者不能把所有者加为协作者", func(t *testing.T) {
		_, err := svc.AttachCollaborator(ctx, collab.ID, created.NoteID, owner.Email)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrConflict))
	})
}

// TestSearchNotes 测试分词搜索、去重和按词缓存
func TestSearchNotes(t *testing.T) {
	ctx := context.Background()
	svc, store, db := setupNoteService(t)
	owner := createUser(t, db, "owner")

	_, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "周末购物", Content: "牛奶和面包"})
	require.NoError(t, err)
	second, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "工作计划", Content: "购物网站改版"})
	require.NoError(t, err)

	t.Run("空查询被拒绝", func(t *testing.T) {
		_, err := svc.SearchNotes(ctx, owner.ID, "   ")
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrSearchQueryRequired))
	})

	t.Run("单词匹配标题或正文", func(t *testing.T) {
		results, err := svc.SearchNotes(ctx, owner.ID, "购物")
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("多词结果按笔记去重", func(t *testing.T) {
		// 两个词都命中第二条笔记，结果中只出现一次
		results, err := svc.SearchNotes(ctx, owner.ID, "购物 工作")
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("命中的搜索词写入缓存", func(t *testing.T) {
		entry, hit, err := store.Get(ctx, cache.SearchKey(owner.ID, "购物"))
		require.NoError(t, err)
		require.True(t, hit)
		notes, ok := entry.AsNoteList()
		require.True(t, ok)
		assert.Len(t, notes, 2)
	})

	t.Run("无结果的搜索词不缓存", func(t *testing.T) {
		results, err := svc.SearchNotes(ctx, owner.ID, "不存在的词")
		require.NoError(t, err)
		assert.Empty(t, results)

		_, hit, err := store.Get(ctx, cache.SearchKey(owner.ID, "不存在的词"))
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("归档的笔记不出现在搜索结果中", func(t *testing.T) {
		_, err := svc.ToggleArchive(ctx, owner.ID, second.NoteID)
		require.NoError(t, err)

		// 使用此前未缓存过的词，确认查库路径排除已归档笔记
		results, err := svc.SearchNotes(ctx, owner.ID, "改版")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("已缓存的搜索词返回缓存时点的结果", func(t *testing.T) {
		// "工作"在归档前已缓存，命中时返回的仍是当时的匹配集合
		results, err := svc.SearchNotes(ctx, owner.ID, "工作")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("搜索词中的通配符按字面匹配", func(t *testing.T) {
		discount, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "促销", Content: "全场折扣 100%"})
		require.NoError(t, err)

		// %只匹配真正包含百分号的笔记，而不是所有笔记
		results, err := svc.SearchNotes(ctx, owner.ID, "%")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, discount.NoteID, results[0].NoteID)

		// _同理，没有笔记包含下划线
		results, err = svc.SearchNotes(ctx, owner.ID, "_")
		require.NoError(t, err)
		assert.Empty(t, results)

		// 含通配符的完整词仍按字面命中
		results, err = svc.SearchNotes(ctx, owner.ID, "100%")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})
}

// failingStore 所有操作都失败的缓存实现
// 用于验证缓存后端不可用时读取路径降级为直接查库
type failingStore struct{}

var errStoreDown = stderrors.New("cache backend unavailable")

func (failingStore) Get(context.Context, cache.Key) (*cache.Entry, bool, error) {
	return nil, false, errStoreDown
}

func (failingStore) Set(context.Context, cache.Key, *cache.Entry) error {
	return errStoreDown
}

func (failingStore) Delete(context.Context, cache.Key) error {
	return errStoreDown
}

// TestCacheUnavailableDegradesToStore 测试缓存全面故障时服务仍可用
func TestCacheUnavailableDegradesToStore(t *testing.T) {
	ctx := context.Background()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	svc := NewNoteService(db, failingStore{})
	owner := createUser(t, db, "owner")

	created, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "缓存故障", Content: "仍然可读"})
	require.NoError(t, err)

	t.Run("详情读取回源查库", func(t *testing.T) {
		got, err := svc.GetNote(ctx, owner.ID, created.NoteID)
		require.NoError(t, err)
		assert.Equal(t, "缓存故障", got.Title)
	})

	t.Run("更新仍然持久化", func(t *testing.T) {
		newTitle := "更新后的标题"
		updated, err := svc.UpdateNote(ctx, owner.ID, created.NoteID, &UpdateNoteRequest{Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, newTitle, updated.Title)
	})

	t.Run("搜索回源查库", func(t *testing.T) {
		results, err := svc.SearchNotes(ctx, owner.ID, "可读")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("回收与删除不受影响", func(t *testing.T) {
		_, err := svc.ToggleTrash(ctx, owner.ID, created.NoteID)
		require.NoError(t, err)
		require.NoError(t, svc.DeleteNote(ctx, owner.ID, created.NoteID))

		var count int64
		require.NoError(t, db.Model(&database.Note{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

// TestReminder 测试提醒的设置、查看和清除
func TestReminder(t *testing.T) {
	ctx := context.Background()
	svc, _, db := setupNoteService(t)
	owner := createUser(t, db, "owner")

	created, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "带提醒的笔记"})
	require.NoError(t, err)

	t.Run("过去的时间被拒绝", func(t *testing.T) {
		_, err := svc.SetReminder(ctx, owner.ID, created.NoteID, time.Now().Add(-time.Hour))
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrReminderInPast))
	})

	t.Run("等于当前时刻的时间被拒绝", func(t *testing.T) {
		// 提醒必须严格晚于当前时间，相等视为已过期
		_, err := svc.SetReminder(ctx, owner.ID, created.NoteID, time.Now())
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrReminderInPast))
	})

	t.Run("未设置时清除返回无提醒", func(t *testing.T) {
		_, cleared, err := svc.ClearReminder(ctx, owner.ID, created.NoteID)
		require.NoError(t, err)
		assert.False(t, cleared)
	})

	t.Run("设置未来提醒", func(t *testing.T) {
		remindAt := time.Now().Add(24 * time.Hour)
		result, err := svc.SetReminder(ctx, owner.ID, created.NoteID, remindAt)
		require.NoError(t, err)
		require.NotNil(t, result.Reminder)
		assert.WithinDuration(t, remindAt, *result.Reminder, time.Second)
	})

	t.Run("覆盖已有提醒", func(t *testing.T) {
		later := time.Now().Add(48 * time.Hour)
		result, err := svc.SetReminder(ctx, owner.ID, created.NoteID, later)
		require.NoError(t, err)
		require.NotNil(t, result.Reminder)
		assert.WithinDuration(t, later, *result.Reminder, time.Second)
	})

	t.Run("清除已设置的提醒", func(t *testing.T) {
		result, cleared, err := svc.ClearReminder(ctx, owner.ID, created.NoteID)
		require.NoError(t, err)
		assert.True(t, cleared)
		assert.Nil(t, result.Reminder)
	})
}

// TestCollaboratorCacheConsistency 测试协作场景下的缓存一致性
// 一方修改后，另一方的缓存条目被刷新为最新状态
func TestCollaboratorCacheConsistency(t *testing.T) {
	ctx := context.Background()
	svc, store, db := setupNoteService(t)
	owner := createUser(t, db, "owner")
	collab := createUser(t, db, "collab")

	created, err := svc.CreateNote(ctx, owner.ID, &CreateNoteRequest{Title: "协作文档", Content: "v1"})
	require.NoError(t, err)
	_, err = svc.AttachCollaborator(ctx, owner.ID, created.NoteID, collab.Email)
	require.NoError(t, err)

	// 双方都读取一次，各自填充缓存
	_, err = svc.GetNote(ctx, owner.ID, created.NoteID)
	require.NoError(t, err)
	_, err = svc.GetNote(ctx, collab.ID, created.NoteID)
	require.NoError(t, err)

	// 协作者更新正文
	v2 := "v2"
	_, err = svc.UpdateNote(ctx, collab.ID, created.NoteID, &UpdateNoteRequest{Content: &v2})
	require.NoError(t, err)

	// 所有者的缓存条目也反映了更新
	entry, hit, err := store.Get(ctx, cache.NoteKey(owner.ID, created.NoteID))
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "v2", entry.AsNote().Content)

	got, err := svc.GetNote(ctx, owner.ID, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Content)

	// 所有者移入回收站后，协作者的缓存也被清除
	_, err = svc.ToggleTrash(ctx, owner.ID, created.NoteID)
	require.NoError(t, err)
	_, hit, err = store.Get(ctx, cache.NoteKey(collab.ID, created.NoteID))
	require.NoError(t, err)
	assert.False(t, hit)

	_, err = svc.GetNote(ctx, collab.ID, created.NoteID)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNoteNotFound))
}

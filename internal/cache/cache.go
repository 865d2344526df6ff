// Package cache 提供笔记和标签读取路径上的旁路缓存
// 缓存只是查询加速层，不具备持久性，权威数据始终在数据库中
// 缓存不可用时所有读取自动退化为直接查库
package cache

import (
	"context"
	"fmt"

	"github.com/weiwangfds/keepnote/internal/database"
)

// 缓存键的实体类别
// 搜索结果使用独立的类别，保证裸搜索词不会与实体键冲突
const (
	KindNote   = "note"
	KindLabel  = "label"
	KindSearch = "search"
)

// Key 结构化缓存键
// 所有键都带上所有者维度，同一实体在不同用户视角下的缓存互不影响
type Key struct {
	OwnerID uint   // 请求者的用户ID
	Kind    string // 实体类别
	Ref     string // 实体对外ID或搜索词
}

// String 返回复合键的字符串形式 {owner}-{kind}-{ref}
func (k Key) String() string {
	return fmt.Sprintf("%d-%s-%s", k.OwnerID, k.Kind, k.Ref)
}

// NoteKey 构造单条笔记的缓存键
func NoteKey(ownerID uint, noteID string) Key {
	return Key{OwnerID: ownerID, Kind: KindNote, Ref: noteID}
}

// LabelKey 构造单个标签的缓存键
func LabelKey(ownerID uint, labelID string) Key {
	return Key{OwnerID: ownerID, Kind: KindLabel, Ref: labelID}
}

// SearchKey 构造单个搜索词的缓存键
func SearchKey(ownerID uint, token string) Key {
	return Key{OwnerID: ownerID, Kind: KindSearch, Ref: token}
}

// Shape 缓存条目的数据形态标记
type Shape string

const (
	ShapeNote     Shape = "note"      // 单条笔记
	ShapeNoteList Shape = "note_list" // 笔记集合（搜索结果）
	ShapeLabel    Shape = "label"     // 单个标签
)

// Entry 带形态标记的缓存条目
// 每个调用点只读写一种形态：
//   - 笔记详情/归档视图读写ShapeNote
//   - 标签详情读写ShapeLabel
//   - 搜索按词读写ShapeNoteList
//
// 形态不匹配视为缓存未命中，由调用方回源查库
type Entry struct {
	Shape Shape           `json:"shape"`
	Note  *database.Note  `json:"note,omitempty"`
	Notes []database.Note `json:"notes,omitempty"`
	Label *database.Label `json:"label,omitempty"`
}

// NewNoteEntry 构造单条笔记条目
func NewNoteEntry(note *database.Note) *Entry {
	return &Entry{Shape: ShapeNote, Note: note}
}

// NewNoteListEntry 构造笔记集合条目
func NewNoteListEntry(notes []database.Note) *Entry {
	return &Entry{Shape: ShapeNoteList, Notes: notes}
}

// NewLabelEntry 构造单个标签条目
func NewLabelEntry(label *database.Label) *Entry {
	return &Entry{Shape: ShapeLabel, Label: label}
}

// AsNote 以单条笔记形态读取条目
// 返回nil表示条目不是该形态
func (e *Entry) AsNote() *database.Note {
	if e == nil || e.Shape != ShapeNote {
		return nil
	}
	return e.Note
}

// AsNoteList 以笔记集合形态读取条目
func (e *Entry) AsNoteList() ([]database.Note, bool) {
	if e == nil || e.Shape != ShapeNoteList {
		return nil, false
	}
	return e.Notes, true
}

// AsLabel 以单个标签形态读取条目
func (e *Entry) AsLabel() *database.Label {
	if e == nil || e.Shape != ShapeLabel {
		return nil
	}
	return e.Label
}

// Store 缓存存储接口
// Get的第二个返回值表示是否命中；实现层错误向上传递，由调用方决定降级策略
type Store interface {
	// Get 查询缓存条目
	Get(ctx context.Context, key Key) (*Entry, bool, error)

	// Set 写入或覆盖缓存条目
	Set(ctx context.Context, key Key, entry *Entry) error

	// Delete 删除缓存条目，键不存在时不报错
	Delete(ctx context.Context, key Key) error
}

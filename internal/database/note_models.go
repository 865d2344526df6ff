package database

import (
	"time"
)

// Note 笔记模型
// 归档和回收站是两个相互独立的标志位，一条笔记可以同时处于归档和回收站状态
// TrashedAt与IsDelete同生同灭：移入回收站时写入时间戳，恢复时清空
// 硬删除通过显式Delete操作完成，不使用gorm.DeletedAt（回收站语义由IsDelete承担）
type Note struct {
	ID        uint       `gorm:"primarykey" json:"id"`                        // 主键ID，自增
	NoteID    string     `gorm:"not null;uniqueIndex;size:36" json:"note_id"` // 对外笔记ID，UUID
	Title     string     `gorm:"not null;size:200" json:"title"`              // 笔记标题，最大200字符
	Content   string     `gorm:"type:text" json:"content"`                    // 笔记内容
	OwnerID   uint       `gorm:"not null;index" json:"owner_id"`              // 所有者ID，创建后不可变更
	Owner     User       `gorm:"foreignKey:OwnerID" json:"-"`                 // 所有者对象
	IsArchive bool       `gorm:"default:false" json:"is_archive"`             // 是否已归档
	IsDelete  bool       `gorm:"default:false" json:"is_delete"`              // 是否在回收站
	TrashedAt *time.Time `json:"trashed_at"`                                  // 移入回收站的时间，IsDelete为true时非空
	Reminder  *time.Time `json:"reminder"`                                    // 提醒时间，可为空
	CreatedAt time.Time  `json:"created_at"`                                  // 创建时间
	UpdatedAt time.Time  `json:"updated_at"`                                  // 最后修改时间

	// 关联关系
	Labels        []Label `gorm:"many2many:note_labels;" json:"labels,omitempty"`        // 多对多关联标签
	Collaborators []User  `gorm:"many2many:note_collaborators;" json:"collaborators,omitempty"` // 多对多关联协作者
}

// TableName 指定Note模型对应的数据库表名
func (Note) TableName() string {
	return "notes"
}

// Label 标签模型
// 标签归属于创建它的用户，(owner_id, name)组合唯一
// 同名标签在不同用户之间相互独立
type Label struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                        // 主键ID，自增
	LabelID   string    `gorm:"not null;uniqueIndex;size:36" json:"label_id"`                // 对外标签ID，UUID
	Name      string    `gorm:"not null;size:100;uniqueIndex:idx_labels_owner_name" json:"name"` // 标签名称
	OwnerID   uint      `gorm:"not null;uniqueIndex:idx_labels_owner_name" json:"owner_id"`  // 所有者ID
	Owner     User      `gorm:"foreignKey:OwnerID" json:"-"`                                 // 所有者对象
	CreatedAt time.Time `json:"created_at"`                                                  // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                  // 最后修改时间

	// 关联关系
	Notes []Note `gorm:"many2many:note_labels;" json:"notes,omitempty"` // 多对多关联笔记
}

// TableName 指定Label模型对应的数据库表名
func (Label) TableName() string {
	return "labels"
}

// NoteLabel 笔记标签关联模型
// 显式声明关联表，便于在硬删除笔记时清理关联边并保证集合语义
type NoteLabel struct {
	NoteID    uint      `gorm:"primarykey;autoIncrement:false" json:"note_id"`  // 笔记ID
	LabelID   uint      `gorm:"primarykey;autoIncrement:false" json:"label_id"` // 标签ID
	CreatedAt time.Time `json:"created_at"`                                     // 关联创建时间
}

// TableName 指定NoteLabel模型对应的数据库表名
func (NoteLabel) TableName() string {
	return "note_labels"
}

// NoteCollaborator 笔记协作者关联模型
// 协作者获得查看和编辑正文的权限，归档/回收/删除仍仅限所有者
// 所有者不应出现在自己笔记的协作者集合中，由服务层保证
type NoteCollaborator struct {
	NoteID    uint      `gorm:"primarykey;autoIncrement:false" json:"note_id"` // 笔记ID
	UserID    uint      `gorm:"primarykey;autoIncrement:false" json:"user_id"` // 协作者用户ID
	CreatedAt time.Time `json:"created_at"`                                    // 关联创建时间
}

// TableName 指定NoteCollaborator模型对应的数据库表名
func (NoteCollaborator) TableName() string {
	return "note_collaborators"
}

// Package policy 定义笔记和标签的可见性与操作权限规则
// 权限分为三档：查看、编辑正文、管理
// 协作者拥有前两档；归档、回收、删除和协作者管理仅限所有者
// 规则对所有端点统一适用，违反时上层一律以NotFound响应，避免泄露资源是否存在
package policy

import (
	"github.com/weiwangfds/keepnote/internal/database"
)

// CanView 判断用户能否查看笔记
// 所有者和协作者可见
func CanView(userID uint, note *database.Note) bool {
	if note == nil {
		return false
	}
	if note.OwnerID == userID {
		return true
	}
	return IsCollaborator(userID, note)
}

// CanEditContent 判断用户能否编辑笔记的标题和正文
// 与查看权限一致：协作者可以编辑内容
func CanEditContent(userID uint, note *database.Note) bool {
	return CanView(userID, note)
}

// CanManage 判断用户能否管理笔记
// 归档、移入/移出回收站、硬删除、添加协作者均属管理操作，仅限所有者
func CanManage(userID uint, note *database.Note) bool {
	if note == nil {
		return false
	}
	return note.OwnerID == userID
}

// CanUseLabel 判断用户能否查看或操作标签
// 标签没有协作概念，一律仅限所有者
func CanUseLabel(userID uint, label *database.Label) bool {
	if label == nil {
		return false
	}
	return label.OwnerID == userID
}

// IsCollaborator 判断用户是否在笔记的协作者集合中
// 要求note.Collaborators已预加载
func IsCollaborator(userID uint, note *database.Note) bool {
	if note == nil {
		return false
	}
	for _, c := range note.Collaborators {
		if c.ID == userID {
			return true
		}
	}
	return false
}

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weiwangfds/keepnote/internal/database"
)

// TestNotePermissions 测试笔记的三档权限规则
func TestNotePermissions(t *testing.T) {
	owner := uint(1)
	collaborator := uint(2)
	stranger := uint(3)

	note := &database.Note{
		OwnerID: owner,
		Collaborators: []database.User{
			{ID: collaborator},
		},
	}

	t.Run("所有者拥有全部权限", func(t *testing.T) {
		assert.True(t, CanView(owner, note))
		assert.True(t, CanEditContent(owner, note))
		assert.True(t, CanManage(owner, note))
	})

	t.Run("协作者可查看和编辑但不可管理", func(t *testing.T) {
		assert.True(t, CanView(collaborator, note))
		assert.True(t, CanEditContent(collaborator, note))
		assert.False(t, CanManage(collaborator, note))
	})

	t.Run("无关用户没有任何权限", func(t *testing.T) {
		assert.False(t, CanView(stranger, note))
		assert.False(t, CanEditContent(stranger, note))
		assert.False(t, CanManage(stranger, note))
	})

	t.Run("nil笔记一律拒绝", func(t *testing.T) {
		assert.False(t, CanView(owner, nil))
		assert.False(t, CanManage(owner, nil))
	})
}

// TestIsCollaborator 测试协作者集合判断
func TestIsCollaborator(t *testing.T) {
	note := &database.Note{
		OwnerID: 1,
		Collaborators: []database.User{
			{ID: 2},
			{ID: 5},
		},
	}

	assert.True(t, IsCollaborator(2, note))
	assert.True(t, IsCollaborator(5, note))
	assert.False(t, IsCollaborator(1, note))
	assert.False(t, IsCollaborator(9, note))

	t.Run("协作者集合未预加载时不可见", func(t *testing.T) {
		bare := &database.Note{OwnerID: 1}
		assert.False(t, IsCollaborator(2, bare))
	})
}

// TestLabelPermissions 测试标签的所有者独占规则
func TestLabelPermissions(t *testing.T) {
	label := &database.Label{OwnerID: 1, Name: "工作"}

	assert.True(t, CanUseLabel(1, label))
	assert.False(t, CanUseLabel(2, label))
	assert.False(t, CanUseLabel(1, nil))
}

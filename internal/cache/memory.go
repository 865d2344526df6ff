package cache

import (
	"context"
	"sync"
)

// MemoryStore 进程内缓存实现
// 未配置Redis时的默认缓存后端，同时用于单元测试
// 条目不过期，语义与RedisStore的TTL=0一致
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryStore 创建内存缓存实例
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*Entry),
	}
}

// Get 查询缓存条目
func (s *MemoryStore) Get(_ context.Context, key Key) (*Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key.String()]
	if !ok {
		return nil, false, nil
	}
	return entry, true, nil
}

// Set 写入或覆盖缓存条目
func (s *MemoryStore) Set(_ context.Context, key Key, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key.String()] = entry
	return nil
}

// Delete 删除缓存条目
func (s *MemoryStore) Delete(_ context.Context, key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key.String())
	return nil
}

// Len 返回当前条目数量，仅用于测试
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

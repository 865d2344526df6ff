package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore 基于Redis的缓存实现
// 条目以JSON序列化存储，TTL为0时条目不过期，仅靠写路径的显式刷新和删除维护一致性
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore 创建Redis缓存实例
// 参数:
//
//	client - 已建立连接的Redis客户端
//	ttl - 条目过期时间，0表示不过期
//
// 返回:
//
//	*RedisStore - Redis缓存实例
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// Get 查询缓存条目
func (s *RedisStore) Get(ctx context.Context, key Key) (*Entry, bool, error) {
	data, err := s.client.Get(ctx, key.String()).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		// 无法解析的条目按未命中处理，顺手清掉脏数据
		_ = s.client.Del(ctx, key.String()).Err()
		return nil, false, nil
	}

	return &entry, true, nil
}

// Set 写入或覆盖缓存条目
func (s *RedisStore) Set(ctx context.Context, key Key, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key.String(), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete 删除缓存条目
func (s *RedisStore) Delete(ctx context.Context, key Key) error {
	if err := s.client.Del(ctx, key.String()).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

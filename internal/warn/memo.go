// Package warn 告警去重
package warn

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// 默认参数
const (
	DefaultTTL      = 10 * time.Minute
	DefaultCapacity = 1024
)

// Memo 有界去重集合：同一个键在 TTL 内只告警一次
//
// 集合已满时新键不会被记住，但告警照常输出。只用于减少重复日志，与渲染结果无关。
type Memo struct {
	cache    *gocache.Cache
	capacity int
}

// NewMemo 创建去重集合；ttl、capacity 为 0 时使用默认值
func NewMemo(ttl time.Duration, capacity int) *Memo {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memo{
		cache:    gocache.New(ttl, 2*ttl),
		capacity: capacity,
	}
}

// First 报告 key 是否首次出现，并尝试记住它
func (m *Memo) First(key string) bool {
	if m == nil {
		return true
	}
	if _, found := m.cache.Get(key); found {
		return false
	}
	if m.cache.ItemCount() < m.capacity {
		// Add 在并发下只会有一个调用方成功
		return m.cache.Add(key, struct{}{}, gocache.DefaultExpiration) == nil
	}
	return true
}

// Warn 仅在 key 首次出现时以 Warn 级别输出日志
func (m *Memo) Warn(log logrus.FieldLogger, key string, fields logrus.Fields, msg string) {
	if log == nil || !m.First(key) {
		return
	}
	log.WithFields(fields).Warn(msg)
}

// Len 当前记住的键数量
func (m *Memo) Len() int {
	if m == nil {
		return 0
	}
	return m.cache.ItemCount()
}

// Reset 清空集合
func (m *Memo) Reset() {
	if m != nil {
		m.cache.Flush()
	}
}

package render

import (
	"sync"

	"github.com/riverfjs/mathtext-go/internal/types"
)

// DefaultPoolSize 默认引擎池大小
const DefaultPoolSize = 4

// Pool 有界引擎池。Acquire 在没有空闲引擎时阻塞，直到有引擎被 Release。
type Pool struct {
	engines chan Engine
	size    int

	mu     sync.RWMutex
	closed bool
}

// NewPool 创建引擎池，size 个引擎由 factory 预先创建
func NewPool(size int, factory func() Engine) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	p := &Pool{engines: make(chan Engine, size), size: size}
	for i := 0; i < size; i++ {
		p.engines <- factory()
	}
	return p
}

// Acquire 取出一个引擎；池已关闭时返回 ErrPoolClosed
func (p *Pool) Acquire() (Engine, error) {
	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()
	if closed {
		return nil, types.ErrPoolClosed
	}
	return <-p.engines, nil
}

// Release 归还引擎
func (p *Pool) Release(e Engine) {
	if e == nil {
		return
	}
	select {
	case p.engines <- e:
	default:
		// 不属于本池的多余引擎直接丢弃
	}
}

// Size 池容量
func (p *Pool) Size() int { return p.size }

// Idle 当前空闲引擎数
func (p *Pool) Idle() int { return len(p.engines) }

// Close 关闭引擎池，之后的 Acquire 都会失败；已取出的引擎仍可归还
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

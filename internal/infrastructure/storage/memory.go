package storage

import "sync"

// MemoryBackend keeps everything in a map. Used by tests and as a throwaway
// driver; FailWrites/FailReads let tests make the medium unavailable on
// demand to exercise the rollback paths.
type MemoryBackend struct {
	mu         sync.RWMutex
	data       map[string]string
	failReads  bool
	failWrites bool
}

// NewMemoryBackend 创建一个内存后端
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		data: make(map[string]string),
	}
}

// Read 读取键值
func (b *MemoryBackend) Read(key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.failReads {
		return "", false, ErrUnavailable
	}
	value, ok := b.data[key]
	return value, ok, nil
}

// Write 写入键值
func (b *MemoryBackend) Write(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failWrites {
		return ErrUnavailable
	}
	b.data[key] = value
	return nil
}

// FailWrites 控制后续写操作是否失败
func (b *MemoryBackend) FailWrites(fail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failWrites = fail
}

// FailReads 控制后续读操作是否失败
func (b *MemoryBackend) FailReads(fail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failReads = fail
}

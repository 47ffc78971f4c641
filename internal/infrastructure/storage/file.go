package storage

import (
	"os"
	"path/filepath"
)

// FileBackend persists each collection key as one JSON file under dir.
// Writes go to a temp file first and are renamed into place so a collection
// is never observable half-written, even if the process dies mid-write.
type FileBackend struct {
	dir string
}

// NewFileBackend 创建文件后端，目录不存在时自动创建
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, ErrUnavailable
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Read 读取键值
func (b *FileBackend) Read(key string) (string, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, ErrUnavailable
	}
	return string(data), true, nil
}

// Write 写入键值，先写临时文件再原子替换
func (b *FileBackend) Write(key, value string) error {
	tmp, err := os.CreateTemp(b.dir, key+".*.tmp")
	if err != nil {
		return ErrUnavailable
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return ErrUnavailable
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return ErrUnavailable
	}
	if err := os.Rename(tmpName, b.path(key)); err != nil {
		os.Remove(tmpName)
		return ErrUnavailable
	}
	return nil
}

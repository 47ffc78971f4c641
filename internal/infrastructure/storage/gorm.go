package storage

import (
	"errors"

	"gorm.io/gorm"
)

// KVEntry 是gorm后端的存储行，一个集合一行
type KVEntry struct {
	K string `gorm:"primaryKey;type:varchar(191)"`
	V string `gorm:"type:longtext"`
}

// TableName 指定表名
func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormBackend keeps collection blobs in a kv_entries table. Works over
// sqlite (default, embedded) or mysql, whichever gorm dialector cmd/server
// opens. Each Write is a single upsert, so a collection replace stays
// all-or-nothing.
type GormBackend struct {
	DB *gorm.DB
}

// NewGormBackend 创建gorm后端并迁移表结构
func NewGormBackend(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, ErrUnavailable
	}
	return &GormBackend{DB: db}, nil
}

// Read 读取键值
func (b *GormBackend) Read(key string) (string, bool, error) {
	var entry KVEntry
	if err := b.DB.First(&entry, "k = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, ErrUnavailable
	}
	return entry.V, true, nil
}

// Write 写入键值
func (b *GormBackend) Write(key, value string) error {
	entry := KVEntry{K: key, V: value}
	err := b.DB.Save(&entry).Error
	if err != nil {
		return ErrUnavailable
	}
	return nil
}

package dao

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

// newTestDB 在临时目录创建一个 sqlite 测试库，自动迁移全部表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDBEngineWithConfig(DatabaseConfig{
		Type:        "sqlite",
		Path:        filepath.Join(t.TempDir(), "test.sqlite3"),
		AutoMigrate: true,
	}, nil)
	if err != nil {
		t.Fatalf("NewDBEngineWithConfig failed: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

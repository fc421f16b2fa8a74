package service

import (
	"path/filepath"
	"testing"

	"github.com/haierkeys/notes-app-service/internal/dao"
	"github.com/haierkeys/notes-app-service/internal/domain"
	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"

	"go.uber.org/zap"
)

// newTestRepos 创建基于临时 sqlite 的真实仓储，服务层测试贴近真实链路
func newTestRepos(t *testing.T) (domain.UserRepository, domain.NoteRepository) {
	t.Helper()

	db, err := dao.NewDBEngineWithConfig(dao.DatabaseConfig{
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

	return dao.NewUserRepository(db), dao.NewNoteRepository(db)
}

func newTestTokenManager() pkgapp.TokenManager {
	return pkgapp.NewTokenManager(pkgapp.TokenConfig{SecretKey: "test-secret"})
}

func newTestUserService(t *testing.T) (UserService, domain.UserRepository) {
	userRepo, _ := newTestRepos(t)
	svc := NewUserService(userRepo, newTestTokenManager(), zap.NewNop(), &ServiceConfig{RegisterIsEnable: true})
	return svc, userRepo
}

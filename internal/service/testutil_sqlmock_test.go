package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newMockDB 用 go-sqlmock 造一个可被 GORM 使用的 *gorm.DB。
// 用 mysql dialector 只是为了占位符风格稳定（?），不会连真库。
// SkipDefaultTransaction 避免每次写操作都包事务，简化断言
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqldb, SkipInitializeWithVersion: true}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		_ = sqldb.Close()
		t.Fatalf("gorm.Open: %v", err)
	}

	return db, mock, sqldb
}

// fakeStore 对象存储桩：记录删除过的 key，直传链接返回固定格式
type fakeStore struct {
	prefix    string
	removed   []string
	removeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{prefix: "https://cdn.example.com"}
}

func (f *fakeStore) PresignedPut(_ context.Context, key string) (string, error) {
	return "https://signed.example.com/" + key + "?X-Amz-Expires=600", nil
}

func (f *fakeStore) Remove(_ context.Context, key string) error {
	f.removed = append(f.removed, key)
	return f.removeErr
}

func (f *fakeStore) PublicURL(key string) string {
	return f.prefix + "/" + key
}

func (f *fakeStore) KeyFromURL(fileURL string) (string, bool) {
	if !strings.HasPrefix(fileURL, f.prefix+"/") {
		return "", false
	}
	return strings.TrimPrefix(fileURL, f.prefix+"/"), true
}

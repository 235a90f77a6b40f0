package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"Lee_CMS/internal/repository/mysql"

	"github.com/DATA-DOG/go-sqlmock"
)

func newUploadService(t *testing.T) (*UploadService, sqlmock.Sqlmock, *fakeStore, func()) {
	t.Helper()
	db, mock, sqldb := newMockDB(t)
	store := newFakeStore()
	svc := &UploadService{imageRepo: &mysql.ImageRepository{DB: db}, store: store}
	return svc, mock, store, func() { _ = sqldb.Close() }
}

var imageKeyRe = regexp.MustCompile(`^images/[0-9a-f-]{36}\.png$`)

func TestPresignImage(t *testing.T) {
	svc, mock, _, closeDB := newUploadService(t)
	defer closeDB()

	// 授权的同时就插元数据行（客户端还没上传，这是已接受的竞态）
	mock.ExpectExec("INSERT INTO `images`").WillReturnResult(sqlmock.NewResult(11, 1))

	res, err := svc.PresignImage(context.Background(), "photo.png", "image/png", nil)
	if err != nil {
		t.Fatalf("PresignImage: %v", err)
	}

	// key 在 images/ 命名空间下且保留原扩展名
	key, ok := strings.CutPrefix(res.FileURL, "https://cdn.example.com/")
	if !ok {
		t.Fatalf("fileUrl not under the public prefix: %q", res.FileURL)
	}
	if !imageKeyRe.MatchString(key) {
		t.Fatalf("unexpected key %q", key)
	}
	if !strings.Contains(res.SignedURL, key) {
		t.Fatalf("signed url should target the same key: %q", res.SignedURL)
	}
	if res.ImageID != 11 {
		t.Fatalf("expected image id 11, got %d", res.ImageID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPresignAttachment(t *testing.T) {
	svc, _, _, closeDB := newUploadService(t)
	defer closeDB()

	res, err := svc.PresignAttachment(context.Background(), "report.2024.pdf")
	if err != nil {
		t.Fatalf("PresignAttachment: %v", err)
	}

	key := strings.TrimPrefix(res.FileURL, "https://cdn.example.com/")
	if !strings.HasPrefix(key, "attachments/") || !strings.HasSuffix(key, ".pdf") {
		t.Fatalf("unexpected key %q", key)
	}
	if res.ImageID != 0 {
		t.Fatal("attachments must not create image rows")
	}
}

func TestFileExt(t *testing.T) {
	cases := []struct{ filename, fallback, want string }{
		{"a.jpg", "jpg", "jpg"},
		{"archive.tar.gz", "bin", "gz"},
		{"noext", "jpg", "noext"}, // 和旧实现一致：没有点时整个文件名被当扩展名
		{"", "bin", "bin"},
		{"trailing.", "jpg", "jpg"},
	}
	for _, tc := range cases {
		if got := fileExt(tc.filename, tc.fallback); got != tc.want {
			t.Errorf("fileExt(%q, %q) = %q, want %q", tc.filename, tc.fallback, got, tc.want)
		}
	}
}

func TestDeleteByURL_RejectsForeignPrefix(t *testing.T) {
	svc, _, store, closeDB := newUploadService(t)
	defer closeDB()

	err := svc.DeleteByURL(context.Background(), "https://attacker.example.org/images/x.png")
	if !errors.Is(err, ErrInvalidFileURL) {
		t.Fatalf("expected ErrInvalidFileURL, got %v", err)
	}
	if len(store.removed) != 0 {
		t.Fatal("nothing should have been removed")
	}
}

func TestDeleteByURL(t *testing.T) {
	svc, _, store, closeDB := newUploadService(t)
	defer closeDB()

	if err := svc.DeleteByURL(context.Background(), "https://cdn.example.com/attachments/a.pdf"); err != nil {
		t.Fatalf("DeleteByURL: %v", err)
	}
	if len(store.removed) != 1 || store.removed[0] != "attachments/a.pdf" {
		t.Fatalf("removed %v", store.removed)
	}
}

// 单独删图是“先对象后元数据”，对象删不掉要报错，不吞
func TestDeleteImage(t *testing.T) {
	svc, mock, store, closeDB := newUploadService(t)
	defer closeDB()

	now := time.Now()
	cols := []string{"id", "storage_key", "url", "original_filename", "content_type", "event_id", "created_at"}
	mock.ExpectQuery("SELECT \\* FROM `images`").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(11, "images/a.png", "https://cdn.example.com/images/a.png", "a.png", "image/png", nil, now))
	mock.ExpectExec("DELETE FROM `images`").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.DeleteImage(context.Background(), 11); err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}
	if len(store.removed) != 1 || store.removed[0] != "images/a.png" {
		t.Fatalf("removed %v", store.removed)
	}
}

func TestDeleteImage_StoreFailureFailsLoud(t *testing.T) {
	svc, mock, store, closeDB := newUploadService(t)
	defer closeDB()

	store.removeErr = errors.New("store down")

	now := time.Now()
	cols := []string{"id", "storage_key", "url", "original_filename", "content_type", "event_id", "created_at"}
	mock.ExpectQuery("SELECT \\* FROM `images`").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(11, "images/a.png", "https://cdn.example.com/images/a.png", "a.png", "image/png", nil, now))

	if err := svc.DeleteImage(context.Background(), 11); err == nil {
		t.Fatal("expected error when the object delete fails")
	}
}

func TestDeleteImage_NotFound(t *testing.T) {
	svc, mock, _, closeDB := newUploadService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT \\* FROM `images`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if err := svc.DeleteImage(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

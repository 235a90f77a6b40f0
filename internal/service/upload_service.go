package service

import (
	"context"
	"errors"
	"strings"

	"Lee_CMS/internal/model"
	"Lee_CMS/internal/pkg"
	"Lee_CMS/internal/repository/mysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadService struct {
	imageRepo *mysql.ImageRepository
	store     pkg.ObjectStore
}

func NewUploadService(store pkg.ObjectStore) *UploadService {
	return &UploadService{
		imageRepo: &mysql.ImageRepository{DB: mysql.DB},
		store:     store,
	}
}

type PresignResult struct {
	SignedURL string
	FileURL   string
	ImageID   uint64
}

// fileExt 取最后一个点后面的部分，没有点就整个文件名兜底成默认扩展名
func fileExt(filename, fallback string) string {
	parts := strings.Split(filename, ".")
	ext := parts[len(parts)-1]
	if ext == "" {
		return fallback
	}
	return ext
}

// PresignImage 图片直传授权。元数据行在客户端真正上传之前就插入，
// 上传失败或被放弃时这行会指向不存在的对象，这里不做对账
func (s *UploadService) PresignImage(ctx context.Context, filename, contentType string, eventID *uint64) (*PresignResult, error) {
	key := "images/" + uuid.NewString() + "." + fileExt(filename, "jpg")

	signedURL, err := s.store.PresignedPut(ctx, key)
	if err != nil {
		return nil, err
	}
	fileURL := s.store.PublicURL(key)

	image := &model.Image{
		StorageKey:       key,
		URL:              fileURL,
		OriginalFilename: filename,
		ContentType:      contentType,
		EventID:          eventID,
	}
	if err := s.imageRepo.Create(image); err != nil {
		return nil, err
	}

	return &PresignResult{SignedURL: signedURL, FileURL: fileURL, ImageID: image.ID}, nil
}

// PresignAttachment 附件直传授权，不落元数据
func (s *UploadService) PresignAttachment(ctx context.Context, filename string) (*PresignResult, error) {
	key := "attachments/" + uuid.NewString() + "." + fileExt(filename, "bin")

	signedURL, err := s.store.PresignedPut(ctx, key)
	if err != nil {
		return nil, err
	}

	return &PresignResult{SignedURL: signedURL, FileURL: s.store.PublicURL(key)}, nil
}

// DeleteByURL 公网地址必须在配置的前缀下，否则按非法输入拒绝
func (s *UploadService) DeleteByURL(ctx context.Context, fileURL string) error {
	key, ok := s.store.KeyFromURL(fileURL)
	if !ok {
		return ErrInvalidFileURL
	}
	return s.store.Remove(ctx, key)
}

// DeleteImage 单独删图：先删对象（这里失败要报错），再删元数据行
func (s *UploadService) DeleteImage(ctx context.Context, id uint64) error {
	image, err := s.imageRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := s.store.Remove(ctx, image.StorageKey); err != nil {
		return err
	}
	return s.imageRepo.Delete(id)
}

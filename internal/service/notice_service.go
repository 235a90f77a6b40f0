package service

import (
	"context"
	"errors"
	"log"

	"Lee_CMS/internal/model"
	"Lee_CMS/internal/pkg"
	"Lee_CMS/internal/repository/mysql"

	"gorm.io/gorm"
)

type NoticeService struct {
	repo  *mysql.NoticeRepository
	store pkg.ObjectStore
}

func NewNoticeService(store pkg.ObjectStore) *NoticeService {
	return &NoticeService{
		repo:  &mysql.NoticeRepository{DB: mysql.DB},
		store: store,
	}
}

type CreateNoticeInput struct {
	Title              string
	Content            string
	IsPublished        *bool
	AttachmentURL      *string
	AttachmentFilename *string
}

// UpdateNoticeInput 指针字段：nil 表示客户端没传这个字段，不动；空串表示清空
type UpdateNoticeInput struct {
	Title              *string
	Content            *string
	IsPublished        *bool
	AttachmentURL      *string
	AttachmentFilename *string
}

func (s *NoticeService) Create(in CreateNoticeInput) (*model.Notice, error) {
	if in.Title == "" || in.Content == "" {
		return nil, ErrTitleContent
	}

	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}

	notice := &model.Notice{
		Title:              in.Title,
		Content:            in.Content,
		IsPublished:        published,
		AttachmentURL:      nullable(in.AttachmentURL),
		AttachmentFilename: nullable(in.AttachmentFilename),
	}

	if err := s.repo.Create(notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *NoticeService) List(search string, page, limit int) ([]model.Notice, Pagination, error) {
	page, limit = normalizePage(page, limit)
	list, total, err := s.repo.List(search, false, (page-1)*limit, limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	return list, makePagination(page, limit, total), nil
}

// ListPublished 公开端列表，只出已发布的
func (s *NoticeService) ListPublished(search string, page, limit int) ([]model.Notice, Pagination, error) {
	page, limit = normalizePage(page, limit)
	list, total, err := s.repo.List(search, true, (page-1)*limit, limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	return list, makePagination(page, limit, total), nil
}

// GetByID 后台详情，不看发布状态
func (s *NoticeService) GetByID(id uint64) (*model.Notice, error) {
	notice, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return notice, err
}

// GetPublishedByID 公开详情，未发布等同不存在，这条过滤不允许绕过
func (s *NoticeService) GetPublishedByID(id uint64) (*model.Notice, error) {
	notice, err := s.repo.FindPublishedByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return notice, err
}

func (s *NoticeService) Update(ctx context.Context, id uint64, in UpdateNoticeInput) (*model.Notice, error) {
	existing, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// 附件换了就顺手清掉旧对象，失败只记日志，不影响本次更新
	if in.AttachmentURL != nil && existing.AttachmentURL != nil && *existing.AttachmentURL != *in.AttachmentURL {
		if key, ok := s.store.KeyFromURL(*existing.AttachmentURL); ok {
			if err := s.store.Remove(ctx, key); err != nil {
				log.Printf("notice %d: remove old attachment %s: %v", id, key, err)
			}
		}
	}

	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.IsPublished != nil {
		fields["is_published"] = *in.IsPublished
	}
	if in.AttachmentURL != nil {
		fields["attachment_url"] = nullable(in.AttachmentURL)
	}
	if in.AttachmentFilename != nil {
		fields["attachment_filename"] = nullable(in.AttachmentFilename)
	}

	if len(fields) > 0 {
		if err := s.repo.Update(id, fields); err != nil {
			return nil, err
		}
	}
	return s.repo.FindByID(id)
}

// Delete 删除公告，先尽力清理附件对象再删行；清理失败不阻塞删除
func (s *NoticeService) Delete(ctx context.Context, id uint64) error {
	notice, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 幂等：已经没了就当删除成功
			return nil
		}
		return err
	}

	if notice.AttachmentURL != nil {
		if key, ok := s.store.KeyFromURL(*notice.AttachmentURL); ok {
			if err := s.store.Remove(ctx, key); err != nil {
				log.Printf("notice %d: remove attachment %s: %v", id, key, err)
			}
		}
	}

	return s.repo.Delete(id)
}

// IncrementView 先读后写的近似计数，并发下可能丢更新，够用
func (s *NoticeService) IncrementView(id uint64) (int64, error) {
	notice, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	next := notice.ViewCount + 1
	if err := s.repo.UpdateViewCount(id, next); err != nil {
		return 0, err
	}
	return next, nil
}

package service

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"Lee_CMS/internal/model"
	"Lee_CMS/internal/pkg"
	"Lee_CMS/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	// slug 只留韩文、小写字母、数字、空格和连字符
	slugStripRe    = regexp.MustCompile(`[^가-힣a-z0-9\s-]`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
	// 正文里的 markdown 图片链接，删除活动时据此回收对象
	mdImageRe = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)
)

type EventService struct {
	repo      *mysql.EventRepository
	imageRepo *mysql.ImageRepository
	store     pkg.ObjectStore
}

func NewEventService(store pkg.ObjectStore) *EventService {
	return &EventService{
		repo:      &mysql.EventRepository{DB: mysql.DB},
		imageRepo: &mysql.ImageRepository{DB: mysql.DB},
		store:     store,
	}
}

type CreateEventInput struct {
	Title              string
	Content            string
	IsPublished        *bool
	CoverImageURL      *string
	AttachmentURL      *string
	AttachmentFilename *string
}

type UpdateEventInput struct {
	Title         *string
	Content       *string
	IsPublished   *bool
	CoverImageURL *string
}

// GenerateSlug 标题规整后拼上毫秒时间戳的 36 进制，唯一性靠时间戳兜底，不查库
func GenerateSlug(title string) string {
	s := strings.ToLower(title)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	s = strings.TrimSpace(s)
	return s + "-" + strconv.FormatInt(time.Now().UnixMilli(), 36)
}

func (s *EventService) Create(in CreateEventInput) (*model.Event, error) {
	if in.Title == "" || in.Content == "" {
		return nil, ErrTitleContent
	}

	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}

	event := &model.Event{
		Title:              in.Title,
		Slug:               GenerateSlug(in.Title),
		Content:            in.Content,
		IsPublished:        published,
		CoverImageURL:      nullable(in.CoverImageURL),
		AttachmentURL:      nullable(in.AttachmentURL),
		AttachmentFilename: nullable(in.AttachmentFilename),
	}

	if err := s.repo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) List(search string, page, limit int) ([]model.EventSummary, Pagination, error) {
	page, limit = normalizePage(page, limit)
	list, total, err := s.repo.List(search, false, (page-1)*limit, limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	return list, makePagination(page, limit, total), nil
}

func (s *EventService) ListPublished(search string, page, limit int) ([]model.EventSummary, Pagination, error) {
	page, limit = normalizePage(page, limit)
	list, total, err := s.repo.List(search, true, (page-1)*limit, limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	return list, makePagination(page, limit, total), nil
}

func (s *EventService) GetByID(id uint64) (*model.Event, error) {
	event, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return event, err
}

// GetPublishedBySlug 公开端入口，未发布一律 404
func (s *EventService) GetPublishedBySlug(slug string) (*model.Event, error) {
	event, err := s.repo.FindPublishedBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return event, err
}

func (s *EventService) Update(id uint64, in UpdateEventInput) (*model.Event, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
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
	if in.CoverImageURL != nil {
		fields["cover_image_url"] = nullable(in.CoverImageURL)
	}

	if len(fields) > 0 {
		if err := s.repo.Update(id, fields); err != nil {
			return nil, err
		}
	}
	return s.repo.FindByID(id)
}

// collectImageURLs 封面 + 正文 markdown 图片，只收公网前缀下的
func (s *EventService) collectImageURLs(event *model.Event) []string {
	var urls []string
	if event.CoverImageURL != nil {
		if _, ok := s.store.KeyFromURL(*event.CoverImageURL); ok {
			urls = append(urls, *event.CoverImageURL)
		}
	}
	for _, m := range mdImageRe.FindAllStringSubmatch(event.Content, -1) {
		if _, ok := s.store.KeyFromURL(m[1]); ok {
			urls = append(urls, m[1])
		}
	}
	return urls
}

// Delete 删除活动并回收引用的图片对象和元数据行，清理失败不阻塞删除
func (s *EventService) Delete(ctx context.Context, id uint64) error {
	event, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	for _, u := range s.collectImageURLs(event) {
		key, _ := s.store.KeyFromURL(u)
		if err := s.store.Remove(ctx, key); err != nil {
			log.Printf("event %d: remove image %s: %v", id, key, err)
		}
		if err := s.imageRepo.DeleteByURL(u); err != nil {
			log.Printf("event %d: delete image row %s: %v", id, u, err)
		}
	}

	return s.repo.Delete(id)
}

// IncrementView slug 定位，先读后写，近似计数
func (s *EventService) IncrementView(slug string) (int64, error) {
	event, err := s.repo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	next := event.ViewCount + 1
	if err := s.repo.UpdateViewCount(event.ID, next); err != nil {
		return 0, err
	}
	return next, nil
}

package mysql

import (
	"Lee_CMS/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func (r *EventRepository) Create(event *model.Event) error {
	return r.DB.Create(event).Error
}

func (r *EventRepository) FindByID(id uint64) (*model.Event, error) {
	var event model.Event
	err := r.DB.First(&event, "id = ?", id).Error
	return &event, err
}

// FindPublishedBySlug 公开端按 slug 查详情，未发布视为不存在
func (r *EventRepository) FindPublishedBySlug(slug string) (*model.Event, error) {
	var event model.Event
	err := r.DB.First(&event, "slug = ? AND is_published = ?", slug, true).Error
	return &event, err
}

// FindBySlug 浏览数接口用，不过滤发布状态
func (r *EventRepository) FindBySlug(slug string) (*model.Event, error) {
	var event model.Event
	err := r.DB.First(&event, "slug = ?", slug).Error
	return &event, err
}

func (r *EventRepository) listQuery(search string, publishedOnly bool) *gorm.DB {
	q := r.DB.Model(&model.Event{})
	if search != "" {
		q = q.Where("title LIKE ?", "%"+search+"%")
	}
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	return q
}

// List 列表只取概要列，正文留给详情接口
func (r *EventRepository) List(search string, publishedOnly bool, offset, limit int) ([]model.EventSummary, int64, error) {
	var total int64
	if err := r.listQuery(search, publishedOnly).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.EventSummary
	err := r.listQuery(search, publishedOnly).
		Select("id, title, slug, cover_image_url, is_published, created_at, updated_at").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

func (r *EventRepository) Update(id uint64, fields map[string]interface{}) error {
	return r.DB.Model(&model.Event{}).Where("id = ?", id).Updates(fields).Error
}

func (r *EventRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Event{}, "id = ?", id).Error
}

func (r *EventRepository) UpdateViewCount(id uint64, count int64) error {
	return r.DB.Model(&model.Event{}).Where("id = ?", id).Update("view_count", count).Error
}

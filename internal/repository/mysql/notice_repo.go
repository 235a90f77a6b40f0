package mysql

import (
	"Lee_CMS/internal/model"

	"gorm.io/gorm"
)

type NoticeRepository struct {
	DB *gorm.DB
}

func (r *NoticeRepository) Create(notice *model.Notice) error {
	return r.DB.Create(notice).Error
}

func (r *NoticeRepository) FindByID(id uint64) (*model.Notice, error) {
	var notice model.Notice
	err := r.DB.First(&notice, "id = ?", id).Error
	return &notice, err
}

// FindPublishedByID 公开端查询，未发布的一律当不存在
func (r *NoticeRepository) FindPublishedByID(id uint64) (*model.Notice, error) {
	var notice model.Notice
	err := r.DB.First(&notice, "id = ? AND is_published = ?", id, true).Error
	return &notice, err
}

// listQuery 计数和取数各构建一次，避免复用链式查询踩 gorm 的坑
func (r *NoticeRepository) listQuery(search string, publishedOnly bool) *gorm.DB {
	q := r.DB.Model(&model.Notice{})
	if search != "" {
		q = q.Where("title LIKE ?", "%"+search+"%")
	}
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	return q
}

// List 分页列表，search 为标题模糊匹配（utf8mb4_general_ci 下 LIKE 天然不区分大小写）
func (r *NoticeRepository) List(search string, publishedOnly bool, offset, limit int) ([]model.Notice, int64, error) {
	var total int64
	if err := r.listQuery(search, publishedOnly).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Notice
	err := r.listQuery(search, publishedOnly).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

// Update 部分更新：只写调用方给出的列，没给的列不动
func (r *NoticeRepository) Update(id uint64, fields map[string]interface{}) error {
	return r.DB.Model(&model.Notice{}).Where("id = ?", id).Updates(fields).Error
}

func (r *NoticeRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Notice{}, "id = ?", id).Error
}

// UpdateViewCount 浏览数直接写目标值，配合先读后写的近似计数
func (r *NoticeRepository) UpdateViewCount(id uint64, count int64) error {
	return r.DB.Model(&model.Notice{}).Where("id = ?", id).Update("view_count", count).Error
}

package mysql

import (
	"Lee_CMS/internal/model"

	"gorm.io/gorm"
)

type ImageRepository struct {
	DB *gorm.DB
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.DB.Create(image).Error
}

func (r *ImageRepository) FindByID(id uint64) (*model.Image, error) {
	var image model.Image
	err := r.DB.First(&image, "id = ?", id).Error
	return &image, err
}

func (r *ImageRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Image{}, "id = ?", id).Error
}

// DeleteByURL 正文清理时只有 URL，没有 id
func (r *ImageRepository) DeleteByURL(url string) error {
	return r.DB.Delete(&model.Image{}, "url = ?", url).Error
}

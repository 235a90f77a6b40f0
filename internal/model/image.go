package model

import "time"

// Image 上传授权时就落库（先写元数据再等客户端直传，可能存在无对象的行）
type Image struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	StorageKey       string    `gorm:"size:255;not null" json:"storage_key"`
	URL              string    `gorm:"size:512;not null;index" json:"url"`
	OriginalFilename string    `gorm:"size:255" json:"original_filename"`
	ContentType      string    `gorm:"size:100" json:"content_type"`
	EventID          *uint64   `gorm:"index" json:"event_id"`
	CreatedAt        time.Time `json:"created_at"`
}

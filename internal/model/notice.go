package model

import "time"

type Notice struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:200;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	// IsPublished 公开可见开关，默认发布
	IsPublished        bool      `gorm:"not null;default:true" json:"is_published"`
	AttachmentURL      *string   `gorm:"size:512" json:"attachment_url"`
	AttachmentFilename *string   `gorm:"size:255" json:"attachment_filename"`
	ViewCount          int64     `gorm:"not null;default:0" json:"view_count"`
	CreatedAt          time.Time `gorm:"index:idx_notice_created,sort:desc" json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

package model

import "time"

type Event struct {
	ID    uint64 `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:200;not null" json:"title"`
	// Slug 由标题+时间戳生成，公开端靠它查详情；时间戳后缀保证基本不撞
	Slug               string    `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Content            string    `gorm:"type:text" json:"content"`
	IsPublished        bool      `gorm:"not null;default:true" json:"is_published"`
	CoverImageURL      *string   `gorm:"size:512" json:"cover_image_url"`
	AttachmentURL      *string   `gorm:"size:512" json:"attachment_url"`
	AttachmentFilename *string   `gorm:"size:255" json:"attachment_filename"`
	ViewCount          int64     `gorm:"not null;default:0" json:"view_count"`
	CreatedAt          time.Time `gorm:"index:idx_event_created,sort:desc" json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// EventSummary 列表页只取概要列，正文可能很大
type EventSummary struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	CoverImageURL *string   `json:"cover_image_url"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

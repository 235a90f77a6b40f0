package service

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrTitleContent   = errors.New("title and content required")
	ErrInvalidFileURL = errors.New("invalid file url")
)

// Pagination 列表响应里的分页信息
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func normalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return page, limit
}

func makePagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// nullable 空串归一成 NULL，和建记录时 "attachment_url || null" 的语义一致
func nullable(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

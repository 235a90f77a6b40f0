package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Lee_CMS/internal/service"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	svc *service.NoticeService
}

type CreateNoticeReq struct {
	Title              string  `json:"title"`
	Content            string  `json:"content"`
	IsPublished        *bool   `json:"is_published"`
	AttachmentURL      *string `json:"attachment_url"`
	AttachmentFilename *string `json:"attachment_filename"`
}

// UpdateNoticeReq 全部指针：没传的字段保持原值，传空串表示清空
type UpdateNoticeReq struct {
	Title              *string `json:"title"`
	Content            *string `json:"content"`
	IsPublished        *bool   `json:"is_published"`
	AttachmentURL      *string `json:"attachment_url"`
	AttachmentFilename *string `json:"attachment_filename"`
}

func NewNoticeHandler(svc *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{svc: svc}
}

func parseListQuery(c *gin.Context) (page, limit int, search string) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	search = c.Query("search")
	return page, limit, search
}

// List 后台列表接口
func (h *NoticeHandler) List(c *gin.Context) {
	page, limit, search := parseListQuery(c)

	list, pagination, err := h.svc.List(search, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list, "pagination": pagination})
}

// PublicList 公开列表接口，只出已发布的
func (h *NoticeHandler) PublicList(c *gin.Context) {
	page, limit, search := parseListQuery(c)

	list, pagination, err := h.svc.ListPublished(search, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list, "pagination": pagination})
}

func (h *NoticeHandler) Create(c *gin.Context) {
	var req CreateNoticeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	notice, err := h.svc.Create(service.CreateNoticeInput{
		Title:              req.Title,
		Content:            req.Content,
		IsPublished:        req.IsPublished,
		AttachmentURL:      req.AttachmentURL,
		AttachmentFilename: req.AttachmentFilename,
	})
	if err != nil {
		if errors.Is(err, service.ErrTitleContent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, notice)
}

// Get 后台详情，不管发布状态
func (h *NoticeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	notice, err := h.svc.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, notice)
}

// PublicGet 公开详情，未发布的对外就是 404
func (h *NoticeHandler) PublicGet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	notice, err := h.svc.GetPublishedByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, notice)
}

func (h *NoticeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req UpdateNoticeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	notice, err := h.svc.Update(c.Request.Context(), id, service.UpdateNoticeInput{
		Title:              req.Title,
		Content:            req.Content,
		IsPublished:        req.IsPublished,
		AttachmentURL:      req.AttachmentURL,
		AttachmentFilename: req.AttachmentFilename,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, notice)
}

func (h *NoticeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// View 浏览数 +1
func (h *NoticeHandler) View(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	count, err := h.svc.IncrementView(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"view_count": count})
}

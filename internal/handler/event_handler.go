package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Lee_CMS/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc *service.EventService
}

type CreateEventReq struct {
	Title              string  `json:"title"`
	Content            string  `json:"content"`
	IsPublished        *bool   `json:"is_published"`
	CoverImageURL      *string `json:"cover_image_url"`
	AttachmentURL      *string `json:"attachment_url"`
	AttachmentFilename *string `json:"attachment_filename"`
}

type UpdateEventReq struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	IsPublished   *bool   `json:"is_published"`
	CoverImageURL *string `json:"cover_image_url"`
}

func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) List(c *gin.Context) {
	page, limit, search := parseListQuery(c)

	list, pagination, err := h.svc.List(search, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list, "pagination": pagination})
}

func (h *EventHandler) PublicList(c *gin.Context) {
	page, limit, search := parseListQuery(c)

	list, pagination, err := h.svc.ListPublished(search, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list, "pagination": pagination})
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	event, err := h.svc.Create(service.CreateEventInput{
		Title:              req.Title,
		Content:            req.Content,
		IsPublished:        req.IsPublished,
		CoverImageURL:      req.CoverImageURL,
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

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	event, err := h.svc.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// PublicGet 公开端按 slug 查详情
func (h *EventHandler) PublicGet(c *gin.Context) {
	event, err := h.svc.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req UpdateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	event, err := h.svc.Update(id, service.UpdateEventInput{
		Title:         req.Title,
		Content:       req.Content,
		IsPublished:   req.IsPublished,
		CoverImageURL: req.CoverImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
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

func (h *EventHandler) View(c *gin.Context) {
	count, err := h.svc.IncrementView(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"view_count": count})
}

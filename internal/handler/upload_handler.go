package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Lee_CMS/internal/service"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	svc *service.UploadService
}

type PresignImageReq struct {
	Filename    string  `json:"filename"`
	ContentType string  `json:"contentType"`
	EventID     *uint64 `json:"eventId"`
}

type PresignAttachmentReq struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

type DeleteAttachmentReq struct {
	FileURL string `json:"fileUrl"`
}

func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// PresignImage 图片直传授权，顺带插元数据行
func (h *UploadHandler) PresignImage(c *gin.Context) {
	var req PresignImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}
	if req.Filename == "" || req.ContentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename and contentType required"})
		return
	}

	res, err := h.svc.PresignImage(c.Request.Context(), req.Filename, req.ContentType, req.EventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"signedUrl": res.SignedURL,
		"fileUrl":   res.FileURL,
		"imageId":   res.ImageID,
	})
}

// PresignAttachment 附件直传授权，不落库
func (h *UploadHandler) PresignAttachment(c *gin.Context) {
	var req PresignAttachmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}
	if req.Filename == "" || req.ContentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename and contentType required"})
		return
	}

	res, err := h.svc.PresignAttachment(c.Request.Context(), req.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"signedUrl":        res.SignedURL,
		"fileUrl":          res.FileURL,
		"originalFilename": req.Filename,
	})
}

// DeleteAttachment 按公网地址删对象，地址不在公网前缀下按非法输入处理
func (h *UploadHandler) DeleteAttachment(c *gin.Context) {
	var req DeleteAttachmentReq
	if err := c.ShouldBindJSON(&req); err != nil || req.FileURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileUrl required"})
		return
	}

	if err := h.svc.DeleteByURL(c.Request.Context(), req.FileURL); err != nil {
		if errors.Is(err, service.ErrInvalidFileURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file url"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteImage 删除单张图片（对象 + 元数据行）
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.svc.DeleteImage(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

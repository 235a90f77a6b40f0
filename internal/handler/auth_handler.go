package handler

import (
	"net/http"

	"Lee_CMS/internal/middleware"
	"Lee_CMS/internal/pkg"
	"Lee_CMS/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

type AuthReq struct {
	Action   string `json:"action"`
	Password string `json:"password"`
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Auth 登录/登出共用一个入口，按 action 区分（沿用旧接口的约定）
func (h *AuthHandler) Auth(c *gin.Context) {
	var req AuthReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	switch req.Action {
	case "login":
		if req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password required"})
			return
		}

		if !h.svc.VerifyPassword(req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
			return
		}

		token, err := h.svc.CreateSession()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.SessionCookieName, token, int(pkg.SessionTTL.Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})

	case "logout":
		// 登出只清浏览器侧 cookie，已签发的 token 到期前仍然有效（无状态会话的已知限制）
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	}
}

package middleware

import (
	"net/http"

	"Lee_CMS/internal/pkg"

	"github.com/gin-gonic/gin"
)

// SessionCookieName 管理员会话 cookie
const SessionCookieName = "admin_session"

// AuthAPI 保护 /api/admin/*（登录接口除外），没登录或 token 失效都给 401
func AuthAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		if !pkg.VerifySession(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		c.Next()
	}
}

// AuthPage 保护 /admin/* 页面，没登录重定向到登录页
func AuthPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" || !pkg.VerifySession(token) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

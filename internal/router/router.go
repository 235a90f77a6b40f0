package router

import (
	"net/http"

	"Lee_CMS/internal/handler"
	"Lee_CMS/internal/middleware"
	"Lee_CMS/internal/pkg"
	"Lee_CMS/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(store pkg.ObjectStore, passwordHash string) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	auth := handler.NewAuthHandler(service.NewAuthService(passwordHash))
	notice := handler.NewNoticeHandler(service.NewNoticeService(store))
	event := handler.NewEventHandler(service.NewEventService(store))
	upload := handler.NewUploadHandler(service.NewUploadService(store))

	// 登录页不设防
	r.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", nil)
	})

	// 后台页面：没登录跳转到 /login
	adminPages := r.Group("/admin")
	adminPages.Use(middleware.AuthPage())
	{
		adminPages.GET("", func(c *gin.Context) {
			c.HTML(http.StatusOK, "admin.html", gin.H{"Section": "home"})
		})
		adminPages.GET("/notices", func(c *gin.Context) {
			c.HTML(http.StatusOK, "admin.html", gin.H{"Section": "notices"})
		})
		adminPages.GET("/events", func(c *gin.Context) {
			c.HTML(http.StatusOK, "admin.html", gin.H{"Section": "events"})
		})
	}

	// 认证接口本身不能挡在门外
	r.POST("/api/admin/auth", auth.Auth)

	// 后台 API：统一 401
	adminAPI := r.Group("/api/admin")
	adminAPI.Use(middleware.AuthAPI())
	{
		adminAPI.GET("/notices", notice.List)
		adminAPI.POST("/notices", notice.Create)
		adminAPI.GET("/notices/:id", notice.Get)
		adminAPI.PUT("/notices/:id", notice.Update)
		adminAPI.DELETE("/notices/:id", notice.Delete)

		adminAPI.GET("/events", event.List)
		adminAPI.POST("/events", event.Create)
		adminAPI.GET("/events/:id", event.Get)
		adminAPI.PUT("/events/:id", event.Update)
		adminAPI.DELETE("/events/:id", event.Delete)

		adminAPI.POST("/images/presign", upload.PresignImage)
		adminAPI.DELETE("/images/:id", upload.DeleteImage)
		adminAPI.POST("/attachments/presign", upload.PresignAttachment)
		adminAPI.POST("/attachments/delete", upload.DeleteAttachment)
	}

	// 公开接口
	public := r.Group("/api")
	{
		public.GET("/notices", notice.PublicList)
		public.GET("/notices/:id", notice.PublicGet)
		public.POST("/notices/:id/view", notice.View)

		public.GET("/events", event.PublicList)
		public.GET("/events/:slug", event.PublicGet)
		public.POST("/events/:slug/view", event.View)
	}

	return r
}

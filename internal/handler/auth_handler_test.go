package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Lee_CMS/internal/middleware"
	"Lee_CMS/internal/pkg"
	"Lee_CMS/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func newAuthRouter(t *testing.T, password string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash := ""
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("bcrypt: %v", err)
		}
		hash = string(h)
	}

	r := gin.New()
	r.POST("/api/admin/auth", NewAuthHandler(service.NewAuthService(hash)).Auth)
	return r
}

func postAuth(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_LoginSetsSessionCookie(t *testing.T) {
	r := newAuthRouter(t, "secret-pw")

	w := postAuth(r, `{"action":"login","password":"secret-pw"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	res := w.Result()
	var session *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == middleware.SessionCookieName {
			session = c
		}
	}
	if session == nil {
		t.Fatal("session cookie not set")
	}
	if !session.HttpOnly {
		t.Fatal("session cookie must be http-only")
	}
	if session.MaxAge != int(pkg.SessionTTL.Seconds()) {
		t.Fatalf("cookie max-age %d, want %d", session.MaxAge, int(pkg.SessionTTL.Seconds()))
	}
	if !pkg.VerifySession(session.Value) {
		t.Fatal("cookie must hold a valid session token")
	}
}

func TestAuth_WrongPassword(t *testing.T) {
	r := newAuthRouter(t, "secret-pw")

	if w := postAuth(r, `{"action":"login","password":"nope"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuth_EmptyPassword(t *testing.T) {
	r := newAuthRouter(t, "secret-pw")

	if w := postAuth(r, `{"action":"login","password":""}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// 没配置口令哈希时必须一律拒绝（fail closed）
func TestAuth_NoConfiguredHashFailsClosed(t *testing.T) {
	r := newAuthRouter(t, "")

	if w := postAuth(r, `{"action":"login","password":"anything"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuth_LogoutClearsCookie(t *testing.T) {
	r := newAuthRouter(t, "secret-pw")

	w := postAuth(r, `{"action":"logout"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			session = c
		}
	}
	if session == nil {
		t.Fatal("logout should rewrite the cookie")
	}
	if session.Value != "" || session.MaxAge >= 0 {
		t.Fatalf("logout cookie should expire immediately: value=%q max-age=%d", session.Value, session.MaxAge)
	}
}

func TestAuth_UnknownAction(t *testing.T) {
	r := newAuthRouter(t, "secret-pw")

	if w := postAuth(r, `{"action":"whatever"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

package pkg

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenParseFailure = errors.New("token parse failure")
)

// SessionTTL 管理后台只有一个口令，会话给 7 天
const SessionTTL = time.Hour * 24 * 7

// SessionSecret 启动时由 config 覆盖；默认值和旧前端保持一致
var SessionSecret = []byte("fallback-secret")

type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// CreateSession 签发管理员会话 token。无状态：登出只清 cookie，不回收已签发的 token
func CreateSession() (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	})
	return token.SignedString(SessionSecret)
}

// ParseSession 只校验签名和过期时间
func ParseSession(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		return SessionSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, err
		}
	}
	if !token.Valid {
		return nil, ErrTokenParseFailure
	}
	return token.Claims.(*SessionClaims), nil
}

// VerifySession 中间件用的布尔版本
func VerifySession(tokenStr string) bool {
	_, err := ParseSession(tokenStr)
	return err == nil
}

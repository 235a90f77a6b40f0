package service

import (
	"Lee_CMS/internal/pkg"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	passwordHash string
}

func NewAuthService(passwordHash string) *AuthService {
	return &AuthService{passwordHash: passwordHash}
}

// VerifyPassword 和配置的 bcrypt 哈希比对；没配置哈希时直接拒绝
func (s *AuthService) VerifyPassword(password string) bool {
	if s.passwordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
}

func (s *AuthService) CreateSession() (string, error) {
	return pkg.CreateSession()
}

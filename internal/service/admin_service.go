package service

import (
	"fmt"

	jwtutil "github.com/kickoff-elo/kickoff-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AdminService 관리자 비밀번호 확인 및 토큰 발급
type AdminService struct {
	passwordHash []byte
	jwtManager   *jwtutil.JWTManager
}

// NewAdminService passwordHash가 비어 있고 password가 있으면 시작 시 해싱
func NewAdminService(passwordHash, password string, jwtManager *jwtutil.JWTManager) (*AdminService, error) {
	s := &AdminService{jwtManager: jwtManager}

	switch {
	case passwordHash != "":
		s.passwordHash = []byte(passwordHash)
	case password != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		s.passwordHash = hash
	}

	return s, nil
}

// Enabled 관리자 로그인 사용 가능 여부
func (s *AdminService) Enabled() bool {
	return len(s.passwordHash) > 0
}

// Login 비밀번호 확인 후 관리자 JWT 발급
func (s *AdminService) Login(password string) (string, error) {
	if !s.Enabled() {
		return "", ErrAdminDisabled
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate("admin", jwtutil.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"wingman_admin/internal/config"
	"wingman_admin/internal/model"
)

// SessionService issues and verifies console session tokens for the single
// configured admin operator.
type SessionService struct {
	config *config.Config
}

func NewSessionService(cfg *config.Config) *SessionService {
	return &SessionService{config: cfg}
}

// Login checks the credentials against the configured admin account and
// issues an access token on success.
func (s *SessionService) Login(email, password string) (*model.SessionToken, error) {
	if !strings.EqualFold(email, s.config.AdminEmail) {
		return nil, model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.config.AdminPasswordHash), []byte(password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &model.SessionToken{
		AccessToken: accessToken,
		ExpiresIn:   s.config.AccessTokenMaxAge,
	}, nil
}

// Identity returns the configured admin operator.
func (s *SessionService) Identity() model.AdminIdentity {
	return model.AdminIdentity{
		Email: s.config.AdminEmail,
		Name:  s.config.AdminName,
	}
}

func (s *SessionService) generateAccessToken() (string, error) {
	claims := jwt.MapClaims{
		"email": s.config.AdminEmail,
		"name":  s.config.AdminName,
		"exp":   time.Now().Add(time.Duration(s.config.AccessTokenMaxAge) * time.Second).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

package service

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"wingman_admin/internal/config"
	"wingman_admin/internal/model"
)

func testConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &config.Config{
		JWTSecret:         "test-secret",
		AccessTokenMaxAge: 3600,
		AdminEmail:        "admin@example.com",
		AdminName:         "Admin",
		AdminPasswordHash: string(hash),
	}
}

func TestLogin_Success(t *testing.T) {
	svc := NewSessionService(testConfig(t, "correct horse"))

	token, err := svc.Login("admin@example.com", "correct horse")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.AccessToken == "" {
		t.Fatal("expected a signed access token")
	}
	if token.ExpiresIn != 3600 {
		t.Errorf("ExpiresIn = %d, want 3600", token.ExpiresIn)
	}

	// The token verifies against the configured secret and carries identity
	parsed, err := jwt.Parse(token.AccessToken, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["email"] != "admin@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
}

func TestLogin_CaseInsensitiveEmail(t *testing.T) {
	svc := NewSessionService(testConfig(t, "pw"))

	if _, err := svc.Login("Admin@Example.COM", "pw"); err != nil {
		t.Errorf("expected case-insensitive email match, got: %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewSessionService(testConfig(t, "right"))

	_, err := svc.Login("admin@example.com", "wrong")

	if !errors.Is(err, model.ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewSessionService(testConfig(t, "pw"))

	_, err := svc.Login("intruder@example.com", "pw")

	if !errors.Is(err, model.ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestIdentity(t *testing.T) {
	svc := NewSessionService(testConfig(t, "pw"))

	admin := svc.Identity()
	if admin.Email != "admin@example.com" || admin.Name != "Admin" {
		t.Errorf("identity = %+v", admin)
	}
}

package services

import (
	"errors"
	"testing"
	"time"

	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/models"
)

const testSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret, 7*24*time.Hour)

	token, err := svc.Register("a@x.com", "pw123", "Alice")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if token == "" {
		t.Fatal("Register returned empty token")
	}

	userID, role, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if role != models.RoleUser {
		t.Errorf("registered role = %q, want %q", role, models.RoleUser)
	}
	if userID == 0 {
		t.Error("token carries zero user id")
	}

	loginToken, user, err := svc.Login("a@x.com", "pw123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loginToken == "" {
		t.Error("Login returned empty token")
	}
	if user.Name != "Alice" || user.Role != models.RoleUser {
		t.Errorf("Login user = %q/%q, want Alice/user", user.Name, user.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret, time.Hour)

	if _, err := svc.Register("a@x.com", "pw123", ""); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	_, err := svc.Register("a@x.com", "other", "")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Register error = %v, want ErrEmailTaken", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret, time.Hour)

	if _, err := svc.Register("a@x.com", "pw123", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "a@x.com", "wrong"},
		{"unknown email", "b@x.com", "pw123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Login error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret, time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, _, err := svc.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret, -time.Minute)

	token, err := svc.Register("a@x.com", "pw123", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, _, err := svc.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret, time.Hour)
	other := NewAuthService(db, "different-secret", time.Hour)

	token, err := svc.Register("a@x.com", "pw123", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("cross-secret token error = %v, want ErrInvalidToken", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret, time.Hour)

	if err := svc.EnsureAdmin("admin@x.com", "admin123", "Boss"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	// Idempotent on the same email.
	if err := svc.EnsureAdmin("admin@x.com", "admin123", "Boss"); err != nil {
		t.Fatalf("second EnsureAdmin failed: %v", err)
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", "admin@x.com").Count(&count)
	if count != 1 {
		t.Fatalf("found %d admin rows, want 1", count)
	}

	token, user, err := svc.Login("admin@x.com", "admin123")
	if err != nil {
		t.Fatalf("admin Login failed: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("admin role = %q, want %q", user.Role, models.RoleAdmin)
	}
	if _, role, err := svc.ValidateToken(token); err != nil || role != models.RoleAdmin {
		t.Errorf("admin token role = %q (err %v), want admin", role, err)
	}
}

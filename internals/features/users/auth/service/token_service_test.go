package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"coursehub_backend/internals/configs"
	"coursehub_backend/internals/features/users/auth/model"
)

func testConfig(ttl time.Duration) *configs.Config {
	return &configs.Config{
		JWTSecret:      "test-secret",
		AccessTokenTTL: ttl,
	}
}

func testUser() *model.UserModel {
	return &model.UserModel{
		ID:       uuid.New(),
		UserName: "alice",
		Email:    "a@x.com",
		Role:     "student",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := testConfig(time.Minute)
	user := testUser()

	token, err := IssueAccessToken(cfg, user)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	claims, err := VerifyAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if claims.Subject != user.ID.String() {
		t.Fatalf("subject = %q, want %q", claims.Subject, user.ID.String())
	}
	if claims.UserName != "alice" || claims.Email != "a@x.com" || claims.Role != "student" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	cfg := testConfig(time.Minute)
	token, err := IssueAccessToken(cfg, testUser())
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	other := testConfig(time.Minute)
	other.JWTSecret = "other-secret"
	if _, err := VerifyAccessToken(other, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	cfg := testConfig(-time.Minute)
	token, err := IssueAccessToken(cfg, testUser())
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := VerifyAccessToken(cfg, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	cfg := testConfig(time.Minute)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := VerifyAccessToken(cfg, tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: err = %v, want ErrInvalidToken", tok, err)
		}
	}
}

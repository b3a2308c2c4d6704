package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"coursehub_backend/internals/configs"
	"coursehub_backend/internals/features/users/auth/model"
)

// ErrInvalidToken is the only rejection the token service surfaces.
// Malformed structure, bad signature and expiry all collapse into it; the
// distinction is logged but never sent to the client.
var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is the identity carried inside an access token.
type AccessClaims struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// ========================== ISSUE ==========================
func IssueAccessToken(cfg *configs.Config, user *model.UserModel) (string, error) {
	now := time.Now().UTC()
	claims := AccessClaims{
		UserName: user.UserName,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
}

// ========================== VERIFY ==========================
func VerifyAccessToken(cfg *configs.Config, tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		log.Printf("[WARN] access token rejected: %v", err)
		return nil, ErrInvalidToken
	}
	return claims, nil
}

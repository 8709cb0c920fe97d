package security

import (
	"errors"
	"fmt"
	"time"

	"Quill/internal/api/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret []byte
	jwtExpiry time.Duration
)

// Configure 注入签名密钥与有效期，需在签发前调用
func Configure(cfg config.JWTConfig) {
	jwtSecret = []byte(cfg.Secret)
	jwtExpiry = time.Duration(cfg.ExpiryHours) * time.Hour
}

// GenerateToken 为指定用户签发一个新的 JWT Token
func GenerateToken(userID string) (string, error) {
	now := time.Now()

	claims := &UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "Quill",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken 验证 Token 字符串并解析出 Claims
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is invalid or expired")
	}

	return claims, nil
}

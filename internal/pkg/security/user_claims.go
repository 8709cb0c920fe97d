package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 定义了 Token 中携带的业务身份，仅包含用户 ID
type UserClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

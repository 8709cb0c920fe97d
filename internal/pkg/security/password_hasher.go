package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost 口令哈希代价因子
const hashCost = bcrypt.DefaultCost

// HashPassword 对明文口令做 bcrypt 哈希，空口令直接拒绝
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPasswordHash 校验明文与哈希是否匹配，不匹配时返回非 nil 错误
func CheckPasswordHash(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

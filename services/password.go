package services

import "golang.org/x/crypto/bcrypt"

// Cost 12 cho thời gian hash khoảng 100ms trên phần cứng thông thường.
const bcryptCost = 12

// HashPassword băm mật khẩu với salt ngẫu nhiên
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword so sánh mật khẩu với hash, an toàn về timing
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

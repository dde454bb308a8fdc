package config

import (
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

var Cloudinary *cloudinary.Cloudinary

// LoadEnv nạp file .env nếu có, thiếu thì dùng biến môi trường sẵn có
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

// GetEnv lấy giá trị biến môi trường
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault lấy giá trị biến môi trường với giá trị mặc định
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConnectCloudinary khởi tạo client Cloudinary cho upload ảnh
func ConnectCloudinary() {
	var err error
	Cloudinary, err = cloudinary.NewFromParams(
		GetEnv("CLOUDINARY_CLOUD_NAME"),
		GetEnv("CLOUDINARY_API_KEY"),
		GetEnv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Lỗi khi khởi tạo Cloudinary: %v", err)
	}
}

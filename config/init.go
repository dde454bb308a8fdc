package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tourism/services"
)

// InitApp tạo gin engine với CORS và khởi tạo các thành phần dùng chung
func InitApp() (*gin.Engine, error) {
	// Env phải nạp trước khi đọc bất kỳ cấu hình nào
	LoadEnv()

	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	if origins := GetEnv("CORS_ORIGINS"); origins != "" {
		configCors.AllowOrigins = strings.Split(origins, ",")
	} else {
		configCors.AllowAllOrigins = true
		configCors.AllowCredentials = false
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	return router, nil
}

func initComponents() error {
	// Secret ký token là cấu hình bắt buộc, thiếu thì dừng process ngay
	if err := services.InitTokenSecret(GetEnv("JWT_SECRET")); err != nil {
		return err
	}

	ConnectDB()
	MigrateDB()

	ConnectCloudinary()

	log.Println("All components initialized successfully")
	return nil
}

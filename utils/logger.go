package utils

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

var (
	loggerOnce  sync.Once
	infoLogger  *log.Logger
	errorLogger *log.Logger
)

// initLoggers mở file log theo ngày, fallback về stderr nếu không mở được
func initLoggers() {
	loggerOnce.Do(func() {
		infoLogger = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
		errorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

		if err := os.MkdirAll("logs", 0755); err != nil {
			errorLogger.Printf("không tạo được thư mục logs: %v", err)
			return
		}

		timestamp := time.Now().Format("2006-01-02")
		logFile, err := os.OpenFile(fmt.Sprintf("logs/app-%s.log", timestamp), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			errorLogger.Printf("không mở được file log: %v", err)
			return
		}

		infoLogger = log.New(logFile, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
		errorLogger = log.New(logFile, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	})
}

// LogInfo ghi log thông tin
func LogInfo(format string, v ...interface{}) {
	initLoggers()
	infoLogger.Printf(format, v...)
}

// LogError ghi log lỗi
func LogError(format string, v ...interface{}) {
	initLoggers()
	errorLogger.Printf(format, v...)
}

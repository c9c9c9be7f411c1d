package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	"menu_board/internal/global"
	"menu_board/internal/logger"
	"menu_board/internal/realtime"
	"menu_board/internal/utility"
	"menu_board/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// initRealtime nối tầng event CRUD vào hub realtime và bật Redis fanout nếu có cấu hình.
func initRealtime(ctx context.Context) {
	log := logger.GetAppLogger()
	hub := realtime.GetHub()
	realtime.RegisterBridge(hub)
	log.Info("📡 [REALTIME] Hub và bridge đã khởi tạo")

	cfg := global.MongoDB_ServerConfig
	if cfg.RedisAddress == "" {
		log.Info("📡 [REALTIME] Không có cấu hình Redis, chạy đơn instance")
		return
	}

	fanout, err := realtime.NewRedisFanout(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB, hub)
	if err != nil {
		log.WithError(err).Error("📡 [REALTIME] Không kết nối được Redis, tiếp tục chạy đơn instance")
		return
	}
	hub.SetFanout(fanout)
	go fanout.Start(ctx)
	log.Info("📡 [REALTIME] Redis fanout đã bật")
}

// startScheduleWorker chạy worker áp dụng lịch chiếu trong goroutine riêng.
func startScheduleWorker(ctx context.Context) {
	log := logger.GetAppLogger()
	scheduleWorker, err := worker.NewScheduleApplyWorker(30 * time.Second)
	if err != nil {
		log.WithError(err).Error("Failed to create schedule worker, continuing without schedule worker")
		return
	}

	go utility.GoProtect(func() {
		scheduleWorker.Start(ctx)
	})
	log.Info("🕐 [SCHEDULE] Schedule Apply Worker started successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Resolve đường dẫn tương đối từ thư mục chứa config/env
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo dữ liệu mẫu (chỉ khi INITMODE=true)
	InitDefaultData()

	// Context chung cho các background worker, hủy khi tiến trình dừng
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Khởi tạo realtime hub + bridge + Redis fanout
	initRealtime(ctx)

	// Chạy worker áp dụng lịch chiếu
	startScheduleWorker(ctx)

	// Chạy Fiber server trên main thread
	main_thread()
}

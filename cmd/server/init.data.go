package main

import (
	"context"

	"menu_board/internal/api/initsvc"
	"menu_board/internal/global"
	"menu_board/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mẫu (tài khoản + nhà hàng demo) khi INITMODE=true.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("🔄 [INIT] INITMODE tắt, bỏ qua khởi tạo dữ liệu mẫu")
		return
	}

	log.Info("🔄 [INIT] Starting InitDefaultData...")

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	if err := initService.InitSampleData(context.Background()); err != nil {
		log.WithError(err).Error("❌ [INIT] Failed to initialize sample data")
		return
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}

package worker

import (
	"context"
	"time"

	schedulesvc "menu_board/internal/api/schedule/service"
	"menu_board/internal/logger"
)

// ScheduleApplyWorker worker áp dụng lịch chiếu: định kỳ quét các lịch đang đến hạn
// (đúng thứ trong tuần và khung giờ) rồi gán thực đơn tương ứng cho màn hình.
// Màn hình đã đúng thực đơn thì bỏ qua, không phát event thừa.
type ScheduleApplyWorker struct {
	scheduleService *schedulesvc.ScheduleService
	interval        time.Duration // Khoảng thời gian giữa các lần quét
}

// NewScheduleApplyWorker tạo mới ScheduleApplyWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần quét (mặc định: 30 giây)
func NewScheduleApplyWorker(interval time.Duration) (*ScheduleApplyWorker, error) {
	scheduleService, err := schedulesvc.NewScheduleService()
	if err != nil {
		return nil, err
	}
	if interval < 5*time.Second {
		interval = 30 * time.Second
	}
	return &ScheduleApplyWorker{
		scheduleService: scheduleService,
		interval:        interval,
	}, nil
}

// Start chạy worker trong vòng lặp: mỗi interval gọi ApplyDue với thời điểm hiện tại.
func (w *ScheduleApplyWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🕐 [SCHEDULE] Starting Schedule Apply Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🕐 [SCHEDULE] Schedule Apply Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🕐 [SCHEDULE] Panic khi áp dụng lịch chiếu, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				applied, err := w.scheduleService.ApplyDue(ctx, time.Now())
				if err != nil {
					log.WithError(err).Error("🕐 [SCHEDULE] Lỗi quét lịch chiếu đến hạn")
					return
				}
				if applied > 0 {
					log.WithFields(map[string]interface{}{
						"applied": applied,
					}).Info("🕐 [SCHEDULE] Đã áp dụng lịch chiếu cho màn hình")
				}
			}()
		}
	}
}

// Package schedulesvc - service lịch chiếu: validate khung giờ, tìm và áp dụng lịch đến hạn.
package schedulesvc

import (
	"context"
	"fmt"
	"time"

	basesvc "menu_board/internal/api/base/service"
	displaysvc "menu_board/internal/api/display/service"
	models "menu_board/internal/api/schedule/models"
	"menu_board/internal/common"
	"menu_board/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleService là cấu trúc chứa các phương thức liên quan đến lịch chiếu
type ScheduleService struct {
	*basesvc.BaseServiceMongoImpl[models.Schedule]
	displayService *displaysvc.DisplayService
}

// NewScheduleService tạo mới ScheduleService
func NewScheduleService() (*ScheduleService, error) {
	scheduleCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Schedules)
	if !exist {
		return nil, fmt.Errorf("failed to get schedules collection: %v", common.ErrNotFound)
	}
	displayService, err := displaysvc.NewDisplayService()
	if err != nil {
		return nil, fmt.Errorf("failed to create display service: %v", err)
	}

	return &ScheduleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Schedule](scheduleCollection),
		displayService:       displayService,
	}, nil
}

// ValidateTimeWindow kiểm tra khung giờ hợp lệ: startTime phải trước endTime.
// So sánh chuỗi "HH:MM" đúng vì định dạng luôn zero-padded.
func ValidateTimeWindow(startTime, endTime string) error {
	if startTime >= endTime {
		return common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Khung giờ không hợp lệ: %s phải trước %s", startTime, endTime), common.StatusBadRequest, nil)
	}
	return nil
}

// ValidateOwnership kiểm tra màn hình và thực đơn đều thuộc nhà hàng.
func (s *ScheduleService) ValidateOwnership(ctx context.Context, restaurantID, displayID, menuID primitive.ObjectID) error {
	display, err := s.displayService.BaseServiceMongoImpl.FindOneById(ctx, displayID)
	if err != nil {
		return err
	}
	if display.RestaurantID != restaurantID {
		return common.ErrWrongRestaurant
	}

	menuCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Menus)
	if !exist {
		return common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil)
	}
	count, err := menuCollection.CountDocuments(ctx, bson.M{"_id": menuID, "restaurantId": restaurantID})
	if err != nil {
		return common.NewError(common.ErrCodeDatabaseQuery, common.MsgDatabaseError, common.StatusInternalServerError, err)
	}
	if count == 0 {
		return common.ErrWrongRestaurant
	}
	return nil
}

// FindDue tìm các lịch đang active khớp thứ trong tuần và khung giờ tại thời điểm now.
func (s *ScheduleService) FindDue(ctx context.Context, now time.Time) ([]models.Schedule, error) {
	hhmm := now.Format("15:04")
	filter := bson.M{
		"isActive":  true,
		"dayOfWeek": int(now.Weekday()),
		"startTime": bson.M{"$lte": hhmm},
		"endTime":   bson.M{"$gt": hhmm},
	}
	return s.BaseServiceMongoImpl.Find(ctx, filter, nil)
}

// pickWinners chọn lịch thắng cho mỗi màn hình khi nhiều lịch cùng khớp:
// lịch có startTime muộn nhất thắng.
func pickWinners(due []models.Schedule) map[primitive.ObjectID]models.Schedule {
	winner := make(map[primitive.ObjectID]models.Schedule)
	for _, schedule := range due {
		current, ok := winner[schedule.DisplayID]
		if !ok || schedule.StartTime > current.StartTime {
			winner[schedule.DisplayID] = schedule
		}
	}
	return winner
}

// ApplyDue áp dụng các lịch đến hạn: gán thực đơn của lịch cho màn hình tương ứng.
// Nhiều lịch cùng khớp một màn hình thì lịch có startTime muộn nhất thắng.
// Trả về số màn hình được cập nhật thực đơn.
func (s *ScheduleService) ApplyDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.FindDue(ctx, now)
	if err != nil {
		return 0, err
	}

	winner := pickWinners(due)

	applied := 0
	for displayID, schedule := range winner {
		display, err := s.displayService.BaseServiceMongoImpl.FindOneById(ctx, displayID)
		if err != nil {
			logrus.WithError(err).WithField("displayId", displayID.Hex()).Warn("Không tìm thấy màn hình khi áp dụng lịch chiếu")
			continue
		}
		if display.MenuID != nil && *display.MenuID == schedule.MenuID {
			continue
		}

		if _, err := s.displayService.AssignMenu(ctx, displayID, schedule.MenuID.Hex()); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"scheduleId": schedule.ID.Hex(),
				"displayId":  displayID.Hex(),
			}).Error("Không thể áp dụng lịch chiếu cho màn hình")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"scheduleId": schedule.ID.Hex(),
			"displayId":  displayID.Hex(),
			"menuId":     schedule.MenuID.Hex(),
		}).Info("Đã áp dụng lịch chiếu cho màn hình")
		applied++
	}
	return applied, nil
}

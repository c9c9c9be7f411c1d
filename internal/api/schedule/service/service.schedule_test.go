// Package schedulesvc - Test validate khung giờ và chọn lịch thắng khi trùng màn hình.
package schedulesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "menu_board/internal/api/schedule/models"
)

func TestValidateTimeWindow(t *testing.T) {
	assert.NoError(t, ValidateTimeWindow("08:00", "11:00"))
	assert.NoError(t, ValidateTimeWindow("00:00", "23:59"))

	// startTime >= endTime là không hợp lệ
	assert.Error(t, ValidateTimeWindow("11:00", "08:00"))
	assert.Error(t, ValidateTimeWindow("08:00", "08:00"))
}

func TestValidateTimeWindow_SoSanhChuoiZeroPadded(t *testing.T) {
	// "09:30" < "10:00" đúng cả khi so sánh chuỗi nhờ zero-padding
	assert.NoError(t, ValidateTimeWindow("09:30", "10:00"))
	assert.Error(t, ValidateTimeWindow("22:00", "09:00"))
}

func TestPickWinners_MotLichMoiManHinh(t *testing.T) {
	d1 := primitive.NewObjectID()
	d2 := primitive.NewObjectID()
	due := []models.Schedule{
		{ID: primitive.NewObjectID(), DisplayID: d1, StartTime: "08:00", EndTime: "11:00"},
		{ID: primitive.NewObjectID(), DisplayID: d2, StartTime: "09:00", EndTime: "14:00"},
	}

	winner := pickWinners(due)
	assert.Len(t, winner, 2)
	assert.Equal(t, "08:00", winner[d1].StartTime)
	assert.Equal(t, "09:00", winner[d2].StartTime)
}

func TestPickWinners_LichMuonNhatThang(t *testing.T) {
	displayID := primitive.NewObjectID()
	sang := models.Schedule{ID: primitive.NewObjectID(), DisplayID: displayID, StartTime: "06:00", EndTime: "14:00"}
	trua := models.Schedule{ID: primitive.NewObjectID(), DisplayID: displayID, StartTime: "11:00", EndTime: "14:00"}

	// Cả hai lịch cùng khớp lúc 11:30: lịch trưa (startTime muộn hơn) phải thắng
	winner := pickWinners([]models.Schedule{sang, trua})
	assert.Len(t, winner, 1)
	assert.Equal(t, trua.ID, winner[displayID].ID)

	// Thứ tự input không ảnh hưởng kết quả
	winner = pickWinners([]models.Schedule{trua, sang})
	assert.Equal(t, trua.ID, winner[displayID].ID)
}

func TestPickWinners_Rong(t *testing.T) {
	winner := pickWinners(nil)
	assert.Empty(t, winner)
}

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// kioskState trạng thái ghép nối được lưu giữa các lần chạy
type kioskState struct {
	PairingCode string `json:"pairingCode"`
	DisplayID   string `json:"displayId"`
}

func stateFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".menu_board", "display.json"), nil
}

// loadState đọc trạng thái đã lưu, trả nil nếu chưa từng ghép nối
func loadState() *kioskState {
	path, err := stateFilePath()
	if err != nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var st kioskState
	if err := json.Unmarshal(data, &st); err != nil || st.PairingCode == "" {
		return nil
	}
	return &st
}

// saveState ghi trạng thái ghép nối ra đĩa để lần sau tự kết nối lại
func saveState(st kioskState) error {
	path, err := stateFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := json.MarshalIndent(st, "", "  ")
	return os.WriteFile(path, data, 0o644)
}

// clearState xóa trạng thái khi mã ghép nối không còn hợp lệ
func clearState() {
	path, err := stateFilePath()
	if err != nil {
		return
	}
	_ = os.Remove(path)
}

package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// apiEnvelope format response thống nhất của server: {code, message, data, status}
type apiEnvelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
}

// DisplayMedia media màn chờ của màn hình
type DisplayMedia struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Display thông tin màn hình trả về từ server
type Display struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	PairingCode string        `json:"pairingCode"`
	IsPaired    bool          `json:"isPaired"`
	MenuID      *string       `json:"menuId,omitempty"`
	Media       *DisplayMedia `json:"media,omitempty"`
}

// Item một món trong thực đơn
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}

// Menu thực đơn kèm danh sách món đã populate theo thứ tự
type Menu struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Items       []Item `json:"items"`
}

// DisplayState trạng thái đầy đủ của màn hình: display + thực đơn đang gán
type DisplayState struct {
	Display Display `json:"display"`
	Menu    *Menu   `json:"menu,omitempty"`
}

// Client gọi REST API và SSE của server menu board
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient tạo client với base URL của server (ví dụ http://localhost:8080)
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Pair ghép nối kiosk với màn hình qua mã. POST /api/v1/displays/pair
func (c *Client) Pair(ctx context.Context, code string) (*DisplayState, error) {
	payload, _ := json.Marshal(map[string]string{"pairingCode": code})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/displays/pair", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doStateRequest(req)
}

// FetchState lấy trạng thái hiện tại theo mã đã ghép. GET /api/v1/displays/pair/:code
func (c *Client) FetchState(ctx context.Context, code string) (*DisplayState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/displays/pair/"+code, nil)
	if err != nil {
		return nil, err
	}
	return c.doStateRequest(req)
}

// errNotPaired server trả 404: mã không còn hợp lệ (bị regenerate hoặc màn hình bị xóa)
var errNotPaired = fmt.Errorf("mã ghép nối không còn hợp lệ")

func (c *Client) doStateRequest(req *http.Request) (*DisplayState, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("response không hợp lệ: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotPaired
	}
	if envelope.Status != "success" {
		return nil, fmt.Errorf("server trả lỗi: %s", envelope.Message)
	}

	var state DisplayState
	if err := json.Unmarshal(envelope.Data, &state); err != nil {
		return nil, fmt.Errorf("data không hợp lệ: %w", err)
	}
	return &state, nil
}

// SubscribeEvents mở kết nối SSE và gọi onEvent với tên mỗi event nhận được.
// Block cho đến khi kết nối đứt hoặc ctx bị cancel; caller tự reconnect.
func (c *Client) SubscribeEvents(ctx context.Context, displayID string, onEvent func(name string)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/events?displayId="+displayID, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	// Không timeout cho stream dài hạn
	streamClient := &http.Client{}
	resp, err := streamClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("SSE connect thất bại: HTTP %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	eventName := ""
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			eventName = strings.TrimPrefix(line, "event: ")
		case line == "":
			if eventName != "" {
				onEvent(eventName)
				eventName = ""
			}
		}
	}
	return scanner.Err()
}

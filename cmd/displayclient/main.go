// Kiosk client cho menu board: ghép nối với một màn hình qua mã,
// render thực đơn đang gán ra terminal và tự cập nhật realtime qua SSE.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	rotateInterval    = 5 * time.Second
	reconnectInterval = 3 * time.Second
)

func main() {
	server := flag.String("server", "http://localhost:8080", "Địa chỉ server menu board")
	code := flag.String("code", "", "Mã ghép nối (bỏ qua để dùng mã đã lưu hoặc nhập tay)")
	flag.Parse()

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	client := NewClient(*server)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	for ctx.Err() == nil {
		state, pairCode, err := connect(ctx, client, *code)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			logrus.Errorf("❌ Ghép nối thất bại: %v", err)
			time.Sleep(reconnectInterval)
			continue
		}
		// Mã từ flag chỉ dùng cho lần ghép đầu
		*code = ""

		if err := runKiosk(ctx, client, state, pairCode); err != nil {
			if errors.Is(err, errNotPaired) {
				// Màn hình bị xóa hoặc mã bị đổi: quay về màn hình ghép nối
				logrus.Warn("🔄 Mã ghép nối không còn hợp lệ, cần ghép nối lại")
				clearState()
				continue
			}
			logrus.Errorf("❌ Lỗi kết nối: %v", err)
			time.Sleep(reconnectInterval)
		}
	}
	fmt.Print(ansiReset)
}

// connect xác định mã ghép nối (flag > trạng thái đã lưu > nhập tay) và lấy state ban đầu
func connect(ctx context.Context, client *Client, flagCode string) (*DisplayState, string, error) {
	if flagCode != "" {
		state, err := client.Pair(ctx, flagCode)
		if err != nil {
			return nil, "", err
		}
		persist(state)
		return state, strings.ToUpper(strings.TrimSpace(flagCode)), nil
	}

	if saved := loadState(); saved != nil {
		state, err := client.FetchState(ctx, saved.PairingCode)
		if err == nil {
			return state, saved.PairingCode, nil
		}
		if !errors.Is(err, errNotPaired) {
			return nil, "", err
		}
		clearState()
	}

	entered, err := promptCode()
	if err != nil {
		return nil, "", err
	}
	state, err := client.Pair(ctx, entered)
	if err != nil {
		return nil, "", err
	}
	persist(state)
	return state, strings.ToUpper(strings.TrimSpace(entered)), nil
}

func promptCode() (string, error) {
	renderPairingPrompt()
	fmt.Print("Nhập mã ghép nối: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	code := strings.ToUpper(strings.TrimSpace(line))
	if code == "" {
		return "", fmt.Errorf("mã ghép nối trống")
	}
	return code, nil
}

func persist(state *DisplayState) {
	if err := saveState(kioskState{
		PairingCode: state.Display.PairingCode,
		DisplayID:   state.Display.ID,
	}); err != nil {
		logrus.Warnf("⚠️ Không lưu được trạng thái ghép nối: %v", err)
	}
}

// refreshEvents các event khiến kiosk fetch lại state
var refreshEvents = map[string]bool{
	"menu-assigned":             true,
	"menu-created":              true,
	"menu-updated":              true,
	"menu-deleted":              true,
	"item-created":              true,
	"item-updated":              true,
	"item-deleted":              true,
	"item-availability-changed": true,
	"display-updated":           true,
	"display-paired":            true,
	"restaurant-updated":        true,
}

// kioskView giữ trạng thái render giữa các lần tick/refresh.
// resetTimer được gọi khi danh sách món thay đổi để chu kỳ xoay 5 giây
// tính lại từ thời điểm đổi, thay vì tick dở chừng của chu kỳ cũ.
type kioskView struct {
	state      *DisplayState
	itemKey    string
	rotation   int
	resetTimer func()
}

func newKioskView(state *DisplayState, resetTimer func()) *kioskView {
	return &kioskView{state: state, itemKey: menuItemKey(state), resetTimer: resetTimer}
}

// tick chuyển sang món tiếp theo
func (k *kioskView) tick() {
	k.rotation++
}

// applyState nhận state mới từ server; danh sách món đổi thì quay về món đầu
// và reset chu kỳ xoay
func (k *kioskView) applyState(fresh *DisplayState) {
	k.state = fresh
	if key := menuItemKey(fresh); key != k.itemKey {
		k.itemKey = key
		k.rotation = 0
		k.resetTimer()
	}
}

func (k *kioskView) draw() {
	draw(k.state, k.rotation)
}

// runKiosk vòng render chính: SSE đẩy tín hiệu refresh, ticker xoay highlight.
// Trả errNotPaired khi server báo mã không còn hợp lệ.
func runKiosk(ctx context.Context, client *Client, state *DisplayState, pairCode string) error {
	kioskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	refresh := make(chan struct{}, 1)
	go func() {
		for kioskCtx.Err() == nil {
			err := client.SubscribeEvents(kioskCtx, state.Display.ID, func(name string) {
				if refreshEvents[name] {
					select {
					case refresh <- struct{}{}:
					default:
					}
				}
			})
			if kioskCtx.Err() != nil {
				return
			}
			if err != nil {
				logrus.Warnf("🔄 SSE mất kết nối, thử lại sau %s: %v", reconnectInterval, err)
			}
			time.Sleep(reconnectInterval)
		}
	}()

	ticker := time.NewTicker(rotateInterval)
	defer ticker.Stop()

	view := newKioskView(state, func() { ticker.Reset(rotateInterval) })
	view.draw()

	for {
		select {
		case <-kioskCtx.Done():
			return nil
		case <-ticker.C:
			view.tick()
			view.draw()
		case <-refresh:
			fresh, err := client.FetchState(kioskCtx, pairCode)
			if err != nil {
				if errors.Is(err, errNotPaired) {
					return errNotPaired
				}
				logrus.Warnf("⚠️ Fetch lại state thất bại: %v", err)
				continue
			}
			view.applyState(fresh)
			view.draw()
		}
	}
}

func draw(state *DisplayState, rotation int) {
	if state.Menu == nil {
		renderIdle(state)
		return
	}
	renderMenu(state, rotation)
}

func menuItemKey(state *DisplayState) string {
	if state.Menu == nil {
		return ""
	}
	ids := make([]string, 0, len(state.Menu.Items))
	for _, item := range state.Menu.Items {
		ids = append(ids, item.ID)
	}
	return strings.Join(ids, ",")
}

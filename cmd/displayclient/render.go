package main

import (
	"fmt"
	"strings"
)

const (
	ansiClear   = "\033[2J\033[H"
	ansiBold    = "\033[1m"
	ansiDim     = "\033[2m"
	ansiReverse = "\033[7m"
	ansiReset   = "\033[0m"
	screenWidth = 64
)

// renderPairingPrompt màn hình chờ nhập mã ghép nối
func renderPairingPrompt() {
	fmt.Print(ansiClear)
	printDivider()
	printCentered("MENU BOARD")
	printCentered("Màn hình chưa được ghép nối")
	printDivider()
	fmt.Println()
}

// renderIdle màn hình đã ghép nhưng chưa được gán thực đơn
func renderIdle(state *DisplayState) {
	fmt.Print(ansiClear)
	printDivider()
	printCentered(state.Display.Name)
	printDivider()
	fmt.Println()
	printCentered(ansiDim + "Chưa có thực đơn nào được gán" + ansiReset)
	if state.Display.Media != nil {
		fmt.Println()
		printCentered(ansiDim + "[" + state.Display.Media.Type + "] " + state.Display.Media.URL + ansiReset)
	}
	fmt.Println()
	printCentered(ansiDim + "Mã: " + state.Display.PairingCode + ansiReset)
}

// renderMenu vẽ thực đơn: mỗi lượt hiển thị một món, xoay theo rotation
func renderMenu(state *DisplayState, rotation int) {
	menu := state.Menu
	fmt.Print(ansiClear)
	printDivider()
	printCentered(ansiBold + menu.Name + ansiReset)
	if menu.Description != "" {
		printCentered(ansiDim + menu.Description + ansiReset)
	}
	printDivider()
	fmt.Println()

	if len(menu.Items) == 0 {
		printCentered(ansiDim + "Thực đơn trống" + ansiReset)
		return
	}

	item := menu.Items[rotation%len(menu.Items)]
	if item.Category != "" {
		printCentered(ansiDim + item.Category + ansiReset)
	}
	printCentered(ansiBold + item.Name + ansiReset)
	if item.Description != "" {
		printCentered(item.Description)
	}
	fmt.Println()
	printCentered(ansiBold + fmt.Sprintf("$%.2f", item.Price) + ansiReset)
	if !item.IsAvailable {
		fmt.Println()
		printCentered(ansiReverse + " HẾT MÓN " + ansiReset)
	}

	fmt.Println()
	printCentered(rotationDots(len(menu.Items), rotation%len(menu.Items)))
}

// rotationDots chỉ báo vị trí highlight: ● cho món hiện tại, ○ cho các món còn lại
func rotationDots(total, current int) string {
	dots := make([]string, 0, total)
	for i := 0; i < total; i++ {
		if i == current {
			dots = append(dots, "●")
		} else {
			dots = append(dots, "○")
		}
	}
	return strings.Join(dots, " ")
}

func printCentered(s string) {
	visible := len([]rune(stripANSI(s)))
	pad := (screenWidth - visible) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Println(strings.Repeat(" ", pad) + s)
}

func printDivider() {
	fmt.Println(strings.Repeat("═", screenWidth))
}

func stripANSI(s string) string {
	out := strings.Builder{}
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

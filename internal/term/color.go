package term

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// common CSS color names seen in caption styling; anything else is passed
// through as-is (hex values and ANSI indexes work directly)
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"orange":  "#ffa500",
}

func terminalColor(value string) lipgloss.Color {
	value = strings.ToLower(strings.TrimSpace(value))
	if hex, ok := namedColors[value]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(value)
}

func percentValue(s string) (float64, bool) {
	if !strings.HasSuffix(s, "%") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

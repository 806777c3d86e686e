package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KV 一个键值对
type KV struct {
	Key   string
	Value string
}

// PrintHeading 打印一个区块标题
func PrintHeading(w io.Writer, title string) error {
	s := lipgloss.NewStyle().
		Foreground(ColorAccentText).
		Background(ColorAccentPrimary).
		Bold(true).
		Padding(0, 1)
	_, err := fmt.Fprintln(w, s.Render(strings.ToUpper(title)))
	return err
}

// PrintKeyValues 按键名对齐打印键值对
func PrintKeyValues(w io.Writer, pairs []KV) error {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p.Key))
	}

	keyStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	valStyle := lipgloss.NewStyle().Foreground(ColorText)
	for _, p := range pairs {
		padding := strings.Repeat(" ", width-len(p.Key))
		if _, err := fmt.Fprintf(w, "  %s%s  %s\n", keyStyle.Render(p.Key), padding, valStyle.Render(p.Value)); err != nil {
			return err
		}
	}
	return nil
}

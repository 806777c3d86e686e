// Package style 提供终端样式化输出
package style

import "github.com/charmbracelet/lipgloss"

// 颜色集中定义，方便修改
const (
	// 主题强调色，用于标题背景
	ColorAccentPrimary = lipgloss.Color("#33A1FF")
	// 强调背景上的文本色
	ColorAccentText = lipgloss.Color("#FFFFFF")
	// 普通文本
	ColorText = lipgloss.Color("#E4E4E4")
	// 次要文本，例如键值对中的键
	ColorMuted = lipgloss.Color("#9CA3AF")

	ColorJSONKey    = lipgloss.Color("#55bcf4ff")
	ColorJSONString = ColorAccentText
	ColorJSONNumber = lipgloss.Color("#d4ec19ff")
	ColorJSONBool   = lipgloss.Color("#dfab49ff")
	ColorJSONNull   = lipgloss.Color("#6272A4")
	ColorJSONPunct  = lipgloss.Color("#6B7280")
)

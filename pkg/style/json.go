package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrintJSON 将 JSON 以缩进加高亮的方式输出到 writer
//
// string / []byte 视为原始 JSON 文本，其它值先经 json.MarshalIndent 编码
func PrintJSON(w io.Writer, v any) error {
	pretty, err := FormatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeJSON(pretty))
	return err
}

// FormatJSON 返回缩进后的 JSON 文本，以换行结尾
func FormatJSON(v any) (string, error) {
	var src []byte
	switch x := v.(type) {
	case nil:
		return "null\n", nil
	case string:
		src = []byte(x)
	case []byte:
		src = x
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		src = b
	}

	src = bytes.TrimSpace(src)
	if len(src) == 0 {
		return "null\n", nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, src, "", "  "); err != nil {
		return "", err
	}
	out.WriteByte('\n')
	return out.String(), nil
}

// colorizeJSON 对已缩进的合法 JSON 着色，空白保持原样
func colorizeJSON(s string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorJSONKey).Bold(true)
	strStyle := lipgloss.NewStyle().Foreground(ColorJSONString)
	numStyle := lipgloss.NewStyle().Foreground(ColorJSONNumber)
	boolStyle := lipgloss.NewStyle().Foreground(ColorJSONBool)
	nullStyle := lipgloss.NewStyle().Foreground(ColorJSONNull)
	punctStyle := lipgloss.NewStyle().Foreground(ColorJSONPunct)

	var b strings.Builder
	for i := 0; i < len(s); {
		ch := s[i]
		switch {
		case ch == '"':
			j := stringEnd(s, i)
			token := s[i:j]
			// 字符串后紧跟冒号即为键名
			if k := skipSpaces(s, j); k < len(s) && s[k] == ':' {
				b.WriteString(keyStyle.Render(token))
			} else {
				b.WriteString(strStyle.Render(token))
			}
			i = j
		case strings.IndexByte("{}[]:,", ch) >= 0:
			b.WriteString(punctStyle.Render(string(ch)))
			i++
		case ch == '-' || (ch >= '0' && ch <= '9'):
			j := i + 1
			for j < len(s) && strings.IndexByte("0123456789.eE+-", s[j]) >= 0 {
				j++
			}
			b.WriteString(numStyle.Render(s[i:j]))
			i = j
		case strings.HasPrefix(s[i:], "true"):
			b.WriteString(boolStyle.Render("true"))
			i += 4
		case strings.HasPrefix(s[i:], "false"):
			b.WriteString(boolStyle.Render("false"))
			i += 5
		case strings.HasPrefix(s[i:], "null"):
			b.WriteString(nullStyle.Render("null"))
			i += 4
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return b.String()
}

// stringEnd 返回从 i 处引号开始的字符串 token 的结束位置（半开区间）
func stringEnd(s string, i int) int {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return len(s)
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

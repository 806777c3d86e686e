package style

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null\n"},
		{"raw string", `{"a":1}`, "{\n  \"a\": 1\n}\n"},
		{"raw bytes", []byte(` [true] `), "[\n  true\n]\n"},
		{"empty", "  ", "null\n"},
		{"struct", struct {
			Name string `json:"name"`
		}{"x"}, "{\n  \"name\": \"x\"\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatJSON(tt.in)
			if err != nil {
				t.Fatalf("FormatJSON returned an error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatJSON() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := FormatJSON("{broken"); err == nil {
		t.Error("Expected an error for invalid JSON")
	}
}

func TestPrintJSONKeepsText(t *testing.T) {
	var buf bytes.Buffer
	in := `{"key":"va\"lue","n":-1.5e3,"ok":false,"none":null,"list":[1,2]}`
	if err := PrintJSON(&buf, in); err != nil {
		t.Fatalf("PrintJSON returned an error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"key"`, `"va\"lue"`, "-1.5e3", "false", "null", `"list"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %s, got:\n%s", want, out)
		}
	}
}

func TestPrintKeyValuesAligned(t *testing.T) {
	var buf bytes.Buffer
	err := PrintKeyValues(&buf, []KV{{Key: "a", Value: "1"}, {Key: "long", Value: "2"}})
	if err != nil {
		t.Fatalf("PrintKeyValues returned an error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "a") || !strings.Contains(lines[1], "long") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

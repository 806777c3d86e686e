package configs

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"YML", FormatYAML, false},
		{"json", FormatJSON, false},
		{"toml", FormatTOML, false},
		{"txt", FormatText, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGetConfigSection(t *testing.T) {
	path := writeFile(t, "hellodemo.yaml", "log:\n  level: error\n")
	_, v, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned an error: %v", err)
	}

	data, err := GetConfigSection(v, "log", true)
	if err != nil {
		t.Fatalf("GetConfigSection returned an error: %v", err)
	}
	logConfig, ok := data.(LogConfig)
	if !ok {
		t.Fatalf("Expected LogConfig, got %T", data)
	}
	if logConfig.Level != "error" {
		t.Errorf("Expected level error, got %q", logConfig.Level)
	}

	if _, err := GetConfigSection(v, "nope", true); err == nil {
		t.Error("Expected an error for an unknown section")
	}
	if _, err := GetConfigSection(v, "nope", false); err == nil {
		t.Error("Expected an error for an unset section")
	}

	raw, err := GetConfigSection(v, "", false)
	if err != nil {
		t.Fatalf("GetConfigSection returned an error: %v", err)
	}
	if _, ok := raw.(map[string]any)["server"]; !ok {
		t.Errorf("Expected server section in raw settings: %v", raw)
	}
}

func TestOutputData(t *testing.T) {
	data := map[string]any{"level": "info", "json": false}

	tests := []struct {
		format OutputFormat
		want   string
	}{
		{FormatYAML, "level: info"},
		{FormatJSON, `"level": "info"`},
		{FormatTOML, "level = "},
		{FormatText, "level:info"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := OutputData(data, tt.format, &buf, false); err != nil {
				t.Fatalf("OutputData returned an error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.want, buf.String())
			}
		})
	}

	if err := OutputData(data, OutputFormat("xml"), &bytes.Buffer{}, false); err == nil {
		t.Error("Expected an error for an unsupported format")
	}
}

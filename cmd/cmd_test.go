package cmd

import (
	"bytes"
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	appctx "github.com/yeisme/hellodemo/pkg/context"
	"github.com/yeisme/hellodemo/pkg/server"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		globalFlags = appctx.GlobalFlags{}
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json returned an error: %v", err)
	}
	for _, want := range []string{`"version"`, `"go_version"`, `"platform"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %s in output:\n%s", want, out)
		}
	}
}

func TestRootVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version returned an error: %v", err)
	}
	if !strings.HasPrefix(out, "hellodemo version ") {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestConfigInitThenList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hellodemo.toml")

	if _, err := execute(t, "--quiet", "config", "init", "--path", path, "--format", "toml"); err != nil {
		t.Fatalf("config init returned an error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected config file to be created: %v", err)
	}

	out, err := execute(t, "--quiet", "--config", path, "config", "list", "server", "--all", "--format", "yaml")
	if err != nil {
		t.Fatalf("config list returned an error: %v", err)
	}
	if !strings.Contains(out, "shutdown_timeout") {
		t.Errorf("Expected server section in output:\n%s", out)
	}

	out, err = execute(t, "--quiet", "--config", path, "config", "validate")
	if err != nil {
		t.Fatalf("config validate returned an error: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("Expected file path in output: %q", out)
	}
}

func TestServeFailsWhenAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		t.Skipf("cannot occupy %s for the test: %v", server.Addr, err)
	}
	defer ln.Close()

	cfgPath := filepath.Join(t.TempDir(), "hellodemo.yaml")
	if err := os.WriteFile(cfgPath, []byte("app:\n  quiet: true\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err = execute(t, "--config", cfgPath, "serve")
	if !errors.Is(err, server.ErrBind) {
		t.Fatalf("Expected ErrBind, got %v", err)
	}
}

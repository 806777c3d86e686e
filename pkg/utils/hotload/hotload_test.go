package hotload

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func startWatch(t *testing.T, path string, hook Func) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, 50*time.Millisecond, nil, hook) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Watch returned an error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("Watch did not return after cancel")
		}
	})
	// 等待 watcher 注册
	time.Sleep(100 * time.Millisecond)
}

func waitFor(cond func() bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWatchFiresOnContentChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hellodemo.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: info\n"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	var calls atomic.Int32
	startWatch(t, path, func() { calls.Add(1) })

	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatalf("Failed to rewrite file: %v", err)
	}

	if !waitFor(func() bool { return calls.Load() == 1 }, 3*time.Second) {
		t.Fatalf("Expected hook to fire once, got %d", calls.Load())
	}

	// 内容不变的写入不触发
	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatalf("Failed to rewrite file: %v", err)
	}
	time.Sleep(300 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("Expected no extra hook call for identical content, got %d calls", got)
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hellodemo.yaml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	var calls atomic.Int32
	startWatch(t, path, func() { calls.Add(1) })

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("b: 2\n"), 0o644); err != nil {
		t.Fatalf("Failed to write sibling: %v", err)
	}
	time.Sleep(300 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("Expected no hook call for a sibling file, got %d", got)
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "hellodemo.yaml")
	err := Watch(context.Background(), path, 0, nil, func() {})
	if err == nil {
		t.Error("Expected an error for a missing directory")
	}
}

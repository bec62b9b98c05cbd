package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// initDebugLog points the global logger at a temp file for one test
func initDebugLog(t *testing.T) string {
	t.Helper()

	logFile := filepath.Join(t.TempDir(), "test.log")
	err := Init(Config{
		FilePath:   logFile,
		Level:      ParseLevel("debug"),
		Format:     FormatText,
		MaxSizeMB:  10,
		MaxBackups: 2,
	})
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { Shutdown() })
	return logFile
}

func TestTimeWithResult(t *testing.T) {
	initDebugLog(t)

	result := TimeWithResult("test operation", func() int {
		return 42
	})

	if result != 42 {
		t.Errorf("TimeWithResult() returned %v, want 42", result)
	}
}

func TestTimeWithResultNoLogging(t *testing.T) {
	if err := Init(Config{FilePath: ""}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	result := TimeWithResult("test operation", func() string {
		return "ok"
	})

	if result != "ok" {
		t.Errorf("TimeWithResult() returned %q when logging is disabled", result)
	}
}

func TestStartEnd(t *testing.T) {
	logFile := initDebugLog(t)

	ctx := Start("kubectl config current-context")
	End(ctx)

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "kubectl config current-context") {
		t.Errorf("log does not contain timing entry:\n%s", content)
	}
	if !strings.Contains(string(content), "duration=") {
		t.Errorf("log does not contain duration:\n%s", content)
	}
}

func TestEndWithCount(t *testing.T) {
	logFile := initDebugLog(t)

	ctx := Start("query")
	EndWithCount(ctx, 3)

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "count=3") {
		t.Errorf("log does not contain count:\n%s", content)
	}
}

func TestStartEndWithNoLogging(t *testing.T) {
	if err := Init(Config{FilePath: ""}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	// Should not panic when logging is disabled
	ctx := Start("test operation")
	End(ctx)
	EndWithCount(ctx, 50)
}

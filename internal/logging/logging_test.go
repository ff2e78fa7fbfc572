package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "smartvault.log")
	if err := Init(Config{Level: "debug", Format: "json", OutputPath: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer InitNop()

	Info("vault loaded", Int("files", 3), String("backend", "local"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{`"msg":"vault loaded"`, `"files":3`, `"backend":"local"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %s: %s", want, data)
		}
	}
}

func TestSetLevel(t *testing.T) {
	if err := Init(Config{Level: "info", Format: "json", OutputPath: filepath.Join(t.TempDir(), "l.log")}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer InitNop()

	if L().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be off at info level")
	}
	SetLevel("debug")
	if !L().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be on after SetLevel")
	}
	SetLevel("nonsense")
	if !L().Core().Enabled(zapcore.DebugLevel) {
		t.Error("invalid level must be ignored")
	}
}

func TestWithFields(t *testing.T) {
	InitNop()
	ctx := WithFields(context.Background(), zap.String("action", "move"))
	if WithContext(ctx) == L() {
		t.Error("expected derived logger in context")
	}
	if WithContext(context.Background()) != L() {
		t.Error("expected global logger without context value")
	}
}

func TestDefaultFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultFile(); got != filepath.Join("/state", "smartvault", "smartvault.log") {
		t.Errorf("DefaultFile() = %q", got)
	}
}

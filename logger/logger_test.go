package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-component")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.component != "test-component" {
		t.Errorf("expected component 'test-component', got %q", l.component)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{Level: "nonsense", Format: "json"}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	l := NewFromEnv("env-component")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("").WithComponent("httpclient")
	if l.component != "httpclient" {
		t.Errorf("expected component 'httpclient', got %q", l.component)
	}
}

func TestDebugEmitsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: "debug", Format: "json", Timestamp: false}, "rest")
	zl := l.GetLogger().Output(&buf)
	scoped := &Logger{logger: zl, component: "rest"}

	scoped.Debug("request sent", Fields(FieldMethod, "GET", FieldStatus, 200))

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %v (%s)", err, buf.String())
	}
	if record[FieldComponent] != "rest" {
		t.Errorf("expected component field 'rest', got %v", record[FieldComponent])
	}
	if record[FieldMethod] != "GET" {
		t.Errorf("expected method field 'GET', got %v", record[FieldMethod])
	}
	if record[FieldStatus] != float64(200) {
		t.Errorf("expected status field 200, got %v", record[FieldStatus])
	}
	if !strings.Contains(buf.String(), "request sent") {
		t.Errorf("expected message in output, got %s", buf.String())
	}
}

func TestFieldsIgnoresDanglingValue(t *testing.T) {
	m := Fields("a", 1, "b")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("expected only the complete pair, got %v", m)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGlobalLogger(t *testing.T) {
	SetGlobalLogger(nil)
	l := GetGlobalLogger()
	if l == nil {
		t.Fatal("expected default global logger")
	}
	if got := GetGlobalLogger(); got != l {
		t.Error("expected global logger to be reused")
	}
}

package logger

import (
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %s", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"bad level", Config{Level: "verbose", Format: "json"}, true},
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

func TestNewWithInvalidLevel(t *testing.T) {
	l := New(&Config{Level: "nonsense", Format: "json", Output: "stderr"})
	if l == nil {
		t.Fatal("expected logger despite invalid level")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault().WithComponent("registry")
	if l == nil {
		t.Fatal("expected component logger")
	}
	// Must not mutate or share state with the parent.
	l2 := l.WithFields(map[string]interface{}{"k": "v"})
	if l2 == l {
		t.Error("WithFields must return a new logger")
	}
}

func TestFieldsBuilder(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields map: %v", m)
	}

	// Odd trailing value is dropped.
	m = Fields("a", 1, "dangling")
	if _, ok := m["dangling"]; ok {
		t.Error("dangling key should be ignored")
	}
}

package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		env     string
		enabled zapcore.Level
		wantErr bool
	}{
		{name: "development debug", level: "debug", env: "development", enabled: zapcore.DebugLevel},
		{name: "production info", level: "info", env: "production", enabled: zapcore.InfoLevel},
		{name: "warn", level: "warn", env: "test", enabled: zapcore.WarnLevel},
		{name: "invalid level", level: "loud", env: "development", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.level, tt.env)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for level %q", tt.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if !l.Core().Enabled(tt.enabled) {
				t.Errorf("expected level %s to be enabled", tt.enabled)
			}
			if tt.enabled > zapcore.DebugLevel && l.Core().Enabled(tt.enabled-1) {
				t.Errorf("expected level %s to be disabled", tt.enabled-1)
			}
		})
	}
}

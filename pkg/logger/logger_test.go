package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel logrus.Level
	}{
		{"debug", "debug", logrus.DebugLevel},
		{"warn", "WARN", logrus.WarnLevel},
		{"empty falls back to info", "", logrus.InfoLevel},
		{"garbage falls back to info", "loud", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Setup(tt.level, "text", &bytes.Buffer{})
			if Log.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", Log.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", "json", &buf)

	Log.WithField("component", "test").Info("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if line["msg"] != "hello" || line["component"] != "test" {
		t.Errorf("unexpected entry: %v", line)
	}
}

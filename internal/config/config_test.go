package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	want := &Config{
		Render: RenderConfig{
			Width:   750,
			Ratio:   1,
			Format:  "png",
			Dir:     ".",
			Workers: 2,
		},
		Server: ServerConfig{
			Host:        "127.0.0.1",
			Port:        8080,
			CORSOrigins: []string{"*"},
			MaxWidth:    4096,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
	if diff := cmp.Diff(want, Default()); diff != "" {
		t.Errorf("Default() mismatched (-want +got):\n%s", diff)
	}
}

func TestLoadFromFile(t *testing.T) {
	const doc = `
render:
  width: 1200
  format: svg
server:
  port: 9000
logging:
  level: debug
`
	file := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(file, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PITCHCHARTS_SERVER_HOST", "0.0.0.0")

	cfg, err := LoadFromFile(file)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %s", err)
	}
	if cfg.Render.Width != 1200 || cfg.Render.Format != "svg" || cfg.Render.Ratio != 1 {
		t.Errorf("unexpected render config %+v", cfg.Render)
	}
	if got := cfg.Server.Addr(); got != "0.0.0.0:9000" {
		t.Errorf("Addr() = %s, want 0.0.0.0:9000", got)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %s, want debug", cfg.Logging.Level)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("LoadFromFile() succeeded with a missing file")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LoggingConfig{Level: "warn", Format: "json"}.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "chart", "market")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level")
	}
	if !strings.Contains(out, `"chart":"market"`) {
		t.Errorf("json output missing attribute: %s", out)
	}
}

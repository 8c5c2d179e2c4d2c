package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "link.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadLinkConfigAppliesDefaults(t *testing.T) {
	cfg, err := LoadLinkConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := DefaultLinkConfig()
	if cfg != want {
		t.Fatalf("defaults not applied: got %+v want %+v", cfg, want)
	}
}

func TestLoadLinkConfigOverrides(t *testing.T) {
	cfg, err := LoadLinkConfig(writeConfig(t, `
max_frame_bytes = 4096
message_id = 66
log_level = "debug"
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxFrameBytes != 4096 || cfg.MessageID != 66 || cfg.LogLevel != "debug" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadLinkConfigRejectsInvalidValues(t *testing.T) {
	cases := []string{
		"max_frame_bytes = 3",
		"max_frame_bytes = 2097152",
		"message_id = 300",
		"message_id = -1",
		`log_level = "loud"`,
	}
	for _, body := range cases {
		if _, err := LoadLinkConfig(writeConfig(t, body)); err == nil {
			t.Fatalf("config %q accepted", body)
		}
	}
}

func TestLoadLinkConfigMissingFile(t *testing.T) {
	if _, err := LoadLinkConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("missing file accepted")
	}
}

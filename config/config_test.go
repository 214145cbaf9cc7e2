package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.SampleSize != 1000 || cfg.MaxAttempts != 10000 {
		t.Errorf("got sample_size %d max_attempts %d", cfg.SampleSize, cfg.MaxAttempts)
	}
	if cfg.GenerateTimeout.Std() != time.Second {
		t.Errorf("generate_timeout = %s, want 1s", cfg.GenerateTimeout)
	}
	if cfg.DatabasePath != "" {
		t.Errorf("database_path = %q, want empty (persistence off)", cfg.DatabasePath)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
sample_size: 500
generate_timeout: 250ms
database_path: /tmp/regexsoup.db
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SampleSize != 500 {
		t.Errorf("sample_size = %d, want 500", cfg.SampleSize)
	}
	if cfg.MaxAttempts != 10000 {
		t.Errorf("max_attempts = %d, want the default 10000", cfg.MaxAttempts)
	}
	if cfg.GenerateTimeout.Std() != 250*time.Millisecond {
		t.Errorf("generate_timeout = %s, want 250ms", cfg.GenerateTimeout)
	}
	if cfg.DatabasePath != "/tmp/regexsoup.db" || cfg.LogLevel != "debug" {
		t.Errorf("got database_path %q log_level %q", cfg.DatabasePath, cfg.LogLevel)
	}
}

func TestLoadValidates(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"zero samples", "sample_size: 0", "sample_size"},
		{"negative attempts", "max_attempts: -1", "max_attempts"},
		{"bad duration", `generate_timeout: soon`, "invalid duration"},
		{"bad level", "log_level: loud", "log_level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestDurationRoundTrip(t *testing.T) {
	var d Duration
	if err := d.UnmarshalJSON([]byte(`"1m30s"`)); err != nil {
		t.Fatal(err)
	}
	if d.Std() != 90*time.Second {
		t.Errorf("got %s, want 1m30s", d)
	}

	out, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"1m30s"` {
		t.Errorf("MarshalJSON = %s, want \"1m30s\"", out)
	}

	if err := d.UnmarshalJSON([]byte("1000000000")); err != nil {
		t.Fatal(err)
	}
	if d.Std() != time.Second {
		t.Errorf("nanosecond form: got %s, want 1s", d)
	}
}

package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chris/mainsbot/config"
)

func TestAgent_Render(t *testing.T) {
	a := NewAgent("/Users/ravi", "/srv/mainsbot")

	got, err := a.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{
		"<string>" + label + "</string>",
		"<string>/usr/local/bin/mainsbot</string>\n\t\t<string>serve</string>",
		"<key>WorkingDirectory</key>\n\t<string>/srv/mainsbot</string>",
		"<string>/Users/ravi/Library/Logs/mainsbot-stdout.log</string>",
		"<key>ThrottleInterval</key>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("plist missing %q", want)
		}
	}
	if a.PlistPath != "/Users/ravi/Library/LaunchAgents/com.mainsbot.daemon.plist" {
		t.Errorf("PlistPath = %q", a.PlistPath)
	}
}

func TestWorkDirFor(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	configDir := filepath.Join(home, ".mainsbot")

	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{"relative file marker", config.Config{MarkerStore: "file", MarkerPath: ".welcome_sent", DatabasePath: "/var/db/x.db"}, "/work"},
		{"absolute file marker", config.Config{MarkerStore: "file", MarkerPath: "/var/mainsbot/marker", DatabasePath: "./data.db"}, configDir},
		{"relative sqlite", config.Config{MarkerStore: "sqlite", MarkerPath: "/abs/marker", DatabasePath: "./data.db"}, "/work"},
		{"absolute sqlite", config.Config{MarkerStore: "sqlite", MarkerPath: ".welcome_sent", DatabasePath: "/var/db/x.db"}, configDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := workDirFor(&tt.cfg, "/work"); got != tt.want {
				t.Errorf("workDirFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeedConfig(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, ".env")
	dst := filepath.Join(dir, "home", ".mainsbot", "config")
	if err := os.WriteFile(src, []byte("CHAT_ID=-100\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := seedConfig(src, dst); err != nil {
		t.Fatalf("seedConfig: %v", err)
	}
	if data, _ := os.ReadFile(dst); string(data) != "CHAT_ID=-100\n" {
		t.Errorf("seeded config = %q", data)
	}

	// An existing config is never overwritten.
	if err := os.WriteFile(src, []byte("CHAT_ID=-200\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := seedConfig(src, dst); err != nil {
		t.Fatalf("second seedConfig: %v", err)
	}
	if data, _ := os.ReadFile(dst); string(data) != "CHAT_ID=-100\n" {
		t.Errorf("config overwritten: %q", data)
	}
}

func TestSeedConfig_MissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "config")

	if err := seedConfig(filepath.Join(dir, "nope"), dst); err != nil {
		t.Fatalf("seedConfig: %v", err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Error("config created without a source")
	}
}

func validConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LLMProvider:  "openai",
		ChatPlatform: "telegram",
		HeadlineURL:  "https://example.com/%s",
		MarkerStore:  "file",
		MarkerPath:   filepath.Join(t.TempDir(), ".welcome_sent"),
		Timezone:     "Asia/Kolkata",
		PostCron:     "0 9 * * 1-4",
	}
}

func TestPreflight(t *testing.T) {
	if err := preflight(validConfig(t)); err != nil {
		t.Fatalf("preflight on a valid config: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad timezone", func(c *config.Config) { c.Timezone = "Mars/Olympus" }},
		{"bad cron", func(c *config.Config) { c.PostCron = "daily" }},
		{"bad provider", func(c *config.Config) { c.LLMProvider = "nope" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			if err := preflight(cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNextPost(t *testing.T) {
	next, err := nextPost(validConfig(t))
	if err != nil {
		t.Fatalf("nextPost: %v", err)
	}
	if next.Hour() != 9 || next.Minute() != 0 {
		t.Errorf("next post at %s, want 09:00", next)
	}
	if wd := next.Weekday(); wd < time.Monday || wd > time.Thursday {
		t.Errorf("next post on %s, want Monday to Thursday", wd)
	}
	if next.Location().String() != "Asia/Kolkata" {
		t.Errorf("location = %s", next.Location())
	}
}

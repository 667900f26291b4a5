// Package service runs mainsbot serve as a per-user launchd agent.
package service

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/chris/mainsbot/config"
	"github.com/chris/mainsbot/internal/bot"
	"github.com/chris/mainsbot/internal/scheduler"
)

const label = "com.mainsbot.daemon"

// Agent is one installed launchd agent and the files it owns.
type Agent struct {
	Label     string
	BinPath   string
	PlistPath string
	WorkDir   string
	StdoutLog string
	StderrLog string
}

// NewAgent lays the agent out under home. workDir is where relative marker
// and database paths resolve for the daemon.
func NewAgent(home, workDir string) *Agent {
	logs := filepath.Join(home, "Library", "Logs")
	return &Agent{
		Label:     label,
		BinPath:   "/usr/local/bin/mainsbot",
		PlistPath: filepath.Join(home, "Library", "LaunchAgents", label+".plist"),
		WorkDir:   workDir,
		StdoutLog: filepath.Join(logs, "mainsbot-stdout.log"),
		StderrLog: filepath.Join(logs, "mainsbot-stderr.log"),
	}
}

// workDirFor keeps a relative welcome marker where it already is: the
// directory install runs from. Only the active store's path counts.
func workDirFor(cfg *config.Config, cwd string) string {
	path := cfg.MarkerPath
	if cfg.MarkerStore == "sqlite" {
		path = cfg.DatabasePath
	}
	if !filepath.IsAbs(path) && cwd != "" {
		return cwd
	}
	return config.ConfigDir()
}

func defaultAgent(cfg *config.Config) *Agent {
	home, _ := os.UserHomeDir()
	cwd, _ := os.Getwd()
	return NewAgent(home, workDirFor(cfg, cwd))
}

// preflight fails for configs the daemon could never run, so launchd does
// not restart a broken binary forever.
func preflight(cfg *config.Config) error {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}
	if _, err := scheduler.New(cfg.PostCron, loc, nil); err != nil {
		return err
	}
	_, closeFn, err := bot.Build(cfg)
	if err != nil {
		return err
	}
	return closeFn()
}

// Install seeds ~/.mainsbot/config from ./.env when absent, checks the
// resulting config, copies the running binary and loads the agent.
func Install() error {
	if err := seedConfig(".env", config.ConfigFile()); err != nil {
		return err
	}
	cfg := config.Load()
	if err := preflight(cfg); err != nil {
		return fmt.Errorf("config check: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}
	if exe, err = filepath.EvalSymlinks(exe); err != nil {
		return fmt.Errorf("resolving symlinks: %w", err)
	}
	return defaultAgent(cfg).Install(exe)
}

func (a *Agent) Install(exe string) error {
	if err := copyFile(exe, a.BinPath, 0o755); err != nil {
		return err
	}
	fmt.Printf("installed binary to %s\n", a.BinPath)

	plist, err := a.Render()
	if err != nil {
		return fmt.Errorf("generating plist: %w", err)
	}
	if _, err := os.Stat(a.PlistPath); err == nil {
		_ = launchctl("unload", a.PlistPath)
	}
	if err := os.MkdirAll(filepath.Dir(a.PlistPath), 0o755); err != nil {
		return fmt.Errorf("creating LaunchAgents dir: %w", err)
	}
	if err := os.WriteFile(a.PlistPath, []byte(plist), 0o644); err != nil {
		return fmt.Errorf("writing plist: %w", err)
	}
	if err := launchctl("load", a.PlistPath); err != nil {
		return fmt.Errorf("loading plist: %w", err)
	}
	fmt.Printf("loaded %s, working in %s\n", a.Label, a.WorkDir)
	return nil
}

// seedConfig copies src to dst unless dst exists. A missing src is fine.
func seedConfig(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Printf("seeded %s from %s\n", dst, src)
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, data, mode); err != nil {
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return nil
}

// Uninstall unloads the agent and removes its plist and binary. The welcome
// marker is left alone so a reinstall does not greet the channel again.
func Uninstall() error { return defaultAgent(config.Load()).Uninstall() }

func (a *Agent) Uninstall() error {
	if _, err := os.Stat(a.PlistPath); err == nil {
		if err := launchctl("unload", a.PlistPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: unload failed: %v\n", err)
		}
		if err := os.Remove(a.PlistPath); err != nil {
			return fmt.Errorf("removing plist: %w", err)
		}
	}
	if err := os.Remove(a.BinPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing binary: %w", err)
	}
	fmt.Printf("uninstalled %s\n", a.Label)
	return nil
}

func Start() error { return launchctl("start", label) }
func Stop() error  { return launchctl("stop", label) }

func Restart() error {
	_ = Stop()
	return Start()
}

// Status prints launchd's view of the agent and when the next post is due.
func Status() error {
	cmd := exec.Command("launchctl", "list", label)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Println("service is not loaded")
	}

	cfg := config.Load()
	next, err := nextPost(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("next post: %s (%s, %s)\n", next.Format("Mon 02 Jan 2006 15:04 MST"), cfg.PostCron, cfg.Timezone)
	return nil
}

func nextPost(cfg *config.Config) (time.Time, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}
	s, err := scheduler.New(cfg.PostCron, loc, nil)
	if err != nil {
		return time.Time{}, err
	}
	return s.Next().In(loc), nil
}

// Logs tails both log files.
func Logs() error {
	a := defaultAgent(config.Load())
	cmd := exec.Command("tail", "-f", a.StdoutLog, a.StderrLog)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func launchctl(args ...string) error {
	cmd := exec.Command("launchctl", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("launchctl %s: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}
	return nil
}

// KeepAlive restarts serve if it exits; ThrottleInterval spaces the restarts.
var plistTemplate = template.Must(template.New("plist").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>{{.Label}}</string>
	<key>ProgramArguments</key>
	<array>
		<string>{{.BinPath}}</string>
		<string>serve</string>
	</array>
	<key>WorkingDirectory</key>
	<string>{{.WorkDir}}</string>
	<key>RunAtLoad</key>
	<true/>
	<key>KeepAlive</key>
	<true/>
	<key>ThrottleInterval</key>
	<integer>60</integer>
	<key>StandardOutPath</key>
	<string>{{.StdoutLog}}</string>
	<key>StandardErrorPath</key>
	<string>{{.StderrLog}}</string>
</dict>
</plist>
`))

func (a *Agent) Render() (string, error) {
	var buf bytes.Buffer
	if err := plistTemplate.Execute(&buf, a); err != nil {
		return "", err
	}
	return buf.String(), nil
}

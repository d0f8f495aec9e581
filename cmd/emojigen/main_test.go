package main

import (
	"bytes"
	"context"
	"image/png"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/emojigen"
	"github.com/gogpu/emojigen/internal/config"
)

var testNow = time.Unix(1700000000, 0)

// testApp returns an app with a fixed clock and random source, and a
// clipboard that records what was written.
func testApp(t *testing.T) (*app, *[]string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var clip []string
	a := newApp()
	a.now = func() time.Time { return testNow }
	a.rng = rand.New(rand.NewPCG(1, 2))
	a.writeClip = func(s string) error {
		clip = append(clip, s)
		return nil
	}
	return a, &clip
}

func execute(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := a.rootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := a.run(root)
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const testTable = `
fallback: ["🌀"]
keywords:
  rain: ["🌧️"]
  tea: ["🍵"]
`

func TestTitleCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"title", "sunny", "beach"}, "Sunny Beach\n"},
		{[]string{"title"}, "Generated Emoji Vibes\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			a, _ := testApp(t)
			out, _, err := execute(t, a, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestEmojisCommandCustomTable(t *testing.T) {
	a, clip := testApp(t)
	table := writeFile(t, "table.yaml", []byte(testTable))

	out, _, err := execute(t, a, "--keywords", table, "emojis", "rain", "--copy")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "🌧️\n" {
		t.Errorf("output = %q, want rain emoji", out)
	}
	if len(*clip) != 1 || (*clip)[0] != "🌧️" {
		t.Errorf("clipboard = %q", *clip)
	}
}

func TestEmojisCommandFallback(t *testing.T) {
	a, clip := testApp(t)
	table := writeFile(t, "table.yaml", []byte(testTable))

	out, _, err := execute(t, a, "--keywords", table, "emojis", "nothing", "here")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "🌀\n" {
		t.Errorf("output = %q, want fallback", out)
	}
	if len(*clip) != 0 {
		t.Errorf("clipboard written without --copy: %q", *clip)
	}
}

func TestKeywordsCommand(t *testing.T) {
	a, _ := testApp(t)
	out, _, err := execute(t, a, "keywords")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"coffee", "☕", "sparkles", "fallback"} {
		if !strings.Contains(out, want) {
			t.Errorf("keywords output missing %q:\n%s", want, out)
		}
	}
	if i, j := strings.Index(out, "beach"), strings.Index(out, "sun"); i < 0 || j < 0 || i > j {
		t.Error("keywords are not listed in sorted order")
	}
}

func TestKeywordsCommandBadTable(t *testing.T) {
	a, _ := testApp(t)
	table := writeFile(t, "table.yaml", []byte("fallback: []\n"))
	if _, _, err := execute(t, a, "--keywords", table, "keywords"); err == nil {
		t.Error("empty fallback accepted")
	}
}

func TestVersionCommand(t *testing.T) {
	a, _ := testApp(t)
	out, _, err := execute(t, a, "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "emojigen v") {
		t.Errorf("output = %q", out)
	}
}

func TestRenderCommand(t *testing.T) {
	a, clip := testApp(t)
	font := writeFile(t, "goregular.ttf", goregular.TTF)
	out := filepath.Join(t.TempDir(), "card.png")

	stdout, _, err := execute(t, a, "render", "happy", "sun",
		"--seed", "42", "--size", "128", "--emoji-font", font,
		"--out", out, "--copy")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != 128 {
		t.Errorf("width = %d, want 128", img.Bounds().Dx())
	}

	for _, want := range []string{"Happy Sun", "42", out} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
	if len(*clip) != 1 || (*clip)[0] == "" {
		t.Errorf("clipboard = %q", *clip)
	}
}

func TestRenderDefaultOutput(t *testing.T) {
	a, _ := testApp(t)
	font := writeFile(t, "goregular.ttf", goregular.TTF)
	t.Chdir(t.TempDir())

	_, _, err := execute(t, a, "render", "--size", "64", "--emoji-font", font, "--next")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	// The seed starts at the clock and --next advances it by one.
	if _, err := os.Stat("emoji-1700000001.png"); err != nil {
		t.Errorf("default output missing: %v", err)
	}
}

func TestRenderBadExtension(t *testing.T) {
	a, _ := testApp(t)
	font := writeFile(t, "goregular.ttf", goregular.TTF)
	out := filepath.Join(t.TempDir(), "card.gif")
	if _, _, err := execute(t, a, "render", "--size", "64", "--emoji-font", font, "--out", out); err == nil {
		t.Error("render to .gif succeeded")
	}
}

func TestState(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantSeed   uint64
		wantPrompt string
	}{
		{"clock", nil, 1700000000, ""},
		{"explicit seed", []string{"--seed", "9"}, 9, ""},
		{"next", []string{"--seed", "9", "--next"}, 10, ""},
		{"max wraps", []string{"--seed", "18446744073709551615", "--next"}, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := testApp(t)
			cmd := a.renderCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			var rf renderFlags
			rf.seed, _ = cmd.Flags().GetUint64("seed")
			rf.next, _ = cmd.Flags().GetBool("next")

			st := a.state(cmd, nil, rf)
			if st.Seed != tt.wantSeed {
				t.Errorf("Seed = %d, want %d", st.Seed, tt.wantSeed)
			}
			if st.Prompt != tt.wantPrompt {
				t.Errorf("Prompt = %q, want %q", st.Prompt, tt.wantPrompt)
			}
		})
	}
}

func TestStateRandomize(t *testing.T) {
	a, _ := testApp(t)
	cmd := a.renderCmd()
	st := a.state(cmd, nil, renderFlags{randomize: true})
	if st.Prompt == "" {
		t.Error("randomize left the prompt empty")
	}
	if st.Hue < 0 || st.Hue >= 1 {
		t.Errorf("Hue = %v, want [0, 1)", st.Hue)
	}

	st = a.state(cmd, []string{"keep", "me"}, renderFlags{randomize: true})
	if st.Prompt != "keep me" {
		t.Errorf("Prompt = %q, want the given prompt", st.Prompt)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelWarn,
		"loud":  slog.LevelWarn,
	}
	for name, want := range tests {
		if got := parseLevel(name); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "emojigen.log")
	logger, closer, err := newLogger(config.LogConfig{Level: "info", File: path}, nil)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hello", "seed", 42)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=hello") || !strings.Contains(string(data), "seed=42") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLoggerStderr(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := newLogger(config.LogConfig{Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if closer != nil {
		t.Error("stderr logger returned a closer")
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogLevelFlag(t *testing.T) {
	a, _ := testApp(t)
	table := writeFile(t, "table.yaml", []byte(testTable))
	_, stderr, err := execute(t, a, "--log-level", "info", "--keywords", table, "title", "x")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stderr, "keyword table loaded") {
		t.Errorf("stderr = %q, want info record", stderr)
	}
}

func TestFailedCommandReleasesLogger(t *testing.T) {
	a, _ := testApp(t)
	font := writeFile(t, "goregular.ttf", goregular.TTF)
	logFile := filepath.Join(t.TempDir(), "emojigen.log")
	out := filepath.Join(t.TempDir(), "card.gif")

	_, _, err := execute(t, a, "--log-file", logFile, "--log-level", "debug",
		"render", "--size", "64", "--emoji-font", font, "--out", out)
	if err == nil {
		t.Fatal("render to .gif succeeded")
	}
	if a.logClose != nil {
		t.Error("log file left open after a failed command")
	}
	if emojigen.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("global logger not reset after a failed command")
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("debug records were not written to the log file: %v", err)
	}
}

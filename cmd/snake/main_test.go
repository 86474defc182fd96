package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

func TestPrintAndResetScore(t *testing.T) {
	ctx := context.Background()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printScore(ctx, &buf, store); err != nil {
		t.Fatalf("printScore() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No high score recorded yet.") {
		t.Errorf("Empty store output:\n%s", buf.String())
	}

	if err := store.SaveHighScore(ctx, 11); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	buf.Reset()
	if err := printScore(ctx, &buf, store); err != nil {
		t.Fatalf("printScore() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Best: 11") {
		t.Errorf("Missing best score:\n%s", buf.String())
	}

	buf.Reset()
	if err := resetScore(ctx, &buf, store); err != nil {
		t.Fatalf("resetScore() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "was 11") {
		t.Errorf("Reset should report the old value:\n%s", buf.String())
	}
	if best, _ := store.HighScore(ctx); best != 0 {
		t.Errorf("Expected 0 after reset, got %d", best)
	}
}

func TestLoadSpeedPresets(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	speed, err := loadSpeed(config.DifficultyHard)
	if err != nil {
		t.Fatalf("loadSpeed() failed: %v", err)
	}
	if speed.Base.Milliseconds() != 80 || speed.Every != 5 {
		t.Errorf("Hard preset = %+v", speed)
	}

	speed, err = loadSpeed(config.DifficultyFixed)
	if err != nil {
		t.Fatalf("loadSpeed() failed: %v", err)
	}
	if speed.Every != 0 {
		t.Errorf("Fixed preset should disable speed-ups, got %+v", speed)
	}
}

func TestDifficultyChoices(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	choices, initial, err := difficultyChoices()
	if err != nil {
		t.Fatalf("difficultyChoices() failed: %v", err)
	}
	if len(choices) != len(config.Presets()) {
		t.Fatalf("Expected one choice per preset, got %d", len(choices))
	}
	if choices[initial].Name != string(config.DifficultyNormal) {
		t.Errorf("Picker should start on normal, got %q", choices[initial].Name)
	}

	for _, c := range choices {
		switch config.DifficultyPreset(c.Name) {
		case config.DifficultyEasy:
			if c.Start.Milliseconds() != 150 || !c.SpeedsUp {
				t.Errorf("easy = %+v", c)
			}
		case config.DifficultyFixed:
			if c.SpeedsUp {
				t.Errorf("fixed should not speed up: %+v", c)
			}
		}
	}
}

// openHandles counts this process's file descriptors that point at path.
func openHandles(t *testing.T, path string) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("no /proc/self/fd on this platform")
	}
	n := 0
	for _, e := range entries {
		if target, err := os.Readlink(filepath.Join("/proc/self/fd", e.Name())); err == nil && target == path {
			n++
		}
	}
	return n
}

func TestCommandErrorsCloseLogFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	logPath := filepath.Join(t.TempDir(), "snake.log")
	oldLogFile, oldLevel, oldDifficulty := flagLogFile, flagLogLevel, flagDifficulty
	t.Cleanup(func() {
		flagLogFile, flagLogLevel, flagDifficulty = oldLogFile, oldLevel, oldDifficulty
	})
	flagLogFile = logPath
	flagLogLevel = "info"
	flagDifficulty = "insane"

	if err := playGame(); err == nil || !strings.Contains(err.Error(), "insane") {
		t.Errorf("playGame() = %v, expected unknown difficulty error", err)
	}
	if n := openHandles(t, logPath); n != 0 {
		t.Errorf("Log file left open by play: %d handles", n)
	}

	if err := serve(context.Background()); err == nil {
		t.Error("serve() should fail on an unknown difficulty")
	}
	if n := openHandles(t, logPath); n != 0 {
		t.Errorf("Log file left open by serve: %d handles", n)
	}

	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("Log file should have been created: %v", err)
	}
}

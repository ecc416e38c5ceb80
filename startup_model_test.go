package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/randlet/internal/haptic"
	"github.com/olivier-w/randlet/internal/logger"
	"github.com/olivier-w/randlet/internal/random"
	"github.com/olivier-w/randlet/internal/ui"
	"github.com/op/go-logging"
)

func testLog() *logging.Logger {
	return logger.DefaultLogger(io.Discard, logging.ERROR, "startup_test")
}

func TestStartupModelHandsOverToWatchFace(t *testing.T) {
	m := newStartupModel(options{seed: 3, mute: true}, nil, testLog())

	model, cmd := m.Update(startupHapticsMsg{sink: haptic.Silent{}})
	if cmd == nil {
		t.Fatal("expected watch face init command")
	}
	if _, ok := model.(ui.Model); !ok {
		t.Fatalf("expected ui.Model, got %T", model)
	}
}

func TestStartupModelFallsBackToSilentOnError(t *testing.T) {
	m := newStartupModel(options{seed: 3}, nil, testLog())

	model, _ := m.Update(startupHapticsMsg{err: errBoom{}})
	face, ok := model.(ui.Model)
	if !ok {
		t.Fatalf("expected ui.Model, got %T", model)
	}
	if view := face.View(); !containsAll(view, "haptics unavailable", "boom") {
		t.Fatalf("expected fallback notice in view, got %q", view)
	}
}

func TestStartupModelForwardsWindowSize(t *testing.T) {
	m := newStartupModel(options{mute: true}, nil, testLog())
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = model.(startupModel)
	if m.width != 80 || m.height != 24 {
		t.Fatalf("expected size 80x24, got %dx%d", m.width, m.height)
	}
}

func TestStartupModelQuit(t *testing.T) {
	m := newStartupModel(options{mute: true}, nil, testLog())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestOpenHapticsMuted(t *testing.T) {
	sink, err := openHaptics(options{mute: true}, nil, testLog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sink.(haptic.Silent); !ok {
		t.Fatalf("expected silent sink, got %T", sink)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-seed", "42", "-mute", "-cue-reset", "bell.wav"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.seed != 42 || !opts.mute || opts.cueReset != "bell.wav" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if _, ok := opts.source().(*random.Seeded); !ok {
		t.Fatalf("expected seeded source, got %T", opts.source())
	}
	if _, err := parseFlags([]string{"extra"}, io.Discard); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestParseFlagsHelp(t *testing.T) {
	_, err := parseFlags([]string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}

func TestRunHelpExitsCleanly(t *testing.T) {
	var stderr bytes.Buffer
	if code := run([]string{"-help"}, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stderr.String(), "-cue-mode") {
		t.Fatalf("expected usage on stderr, got %q", stderr.String())
	}
}

func TestRunReportsBadCue(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "debug.log")
	var stderr bytes.Buffer
	code := run([]string{"-debug-log", logPath, "-cue-reset", filepath.Join(dir, "beep.m4a")}, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), "Error: ") {
		t.Fatalf("expected error on stderr, got %q", stderr.String())
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading debug log: %v", err)
	}
	if !strings.Contains(string(data), "loading cues") {
		t.Fatalf("expected cue failure in debug log, got %q", data)
	}
}

func TestLoadCuesRejectsUnsupportedExtension(t *testing.T) {
	_, err := loadCues(options{cueMode: filepath.Join(t.TempDir(), "beep.m4a")})
	if err == nil {
		t.Fatal("expected error for unsupported cue format")
	}
}

func TestLoadCuesWithoutFiles(t *testing.T) {
	cues, err := loadCues(options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cues) != 0 {
		t.Fatalf("expected no cues, got %d", len(cues))
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

package watch

import (
	"fmt"
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/olivier-w/randlet/internal/haptic"
	"github.com/olivier-w/randlet/internal/random"
	"github.com/olivier-w/randlet/internal/sequencer"
)

func letterCaption(n int) string {
	return fmt.Sprintf("Random Letter\n(%d left)", n)
}

func vibrations(effects []Effect) []haptic.Pattern {
	var out []haptic.Pattern
	for _, e := range effects {
		if v, ok := e.(Vibrate); ok {
			out = append(out, v.Pattern)
		}
	}
	return out
}

func TestStartDealsFirstLetter(t *testing.T) {
	s, effects := Start(random.NewSeeded(1))
	if s.Mode() != LetterMode {
		t.Fatalf("expected letter mode, got %v", s.Mode())
	}
	order := s.Order()
	if s.Display() != string(order[0]) {
		t.Fatalf("expected first letter %q, got %q", order[0], s.Display())
	}
	if s.Remaining() != 25 {
		t.Fatalf("expected 25 remaining, got %d", s.Remaining())
	}
	if len(effects) != 2 {
		t.Fatalf("expected 2 render effects, got %d", len(effects))
	}
	if st, ok := effects[1].(DisplayStatus); !ok || st.Caption != letterCaption(25) {
		t.Fatalf("unexpected status effect %#v", effects[1])
	}
}

func TestPrimaryActionWalksPassThenReshuffles(t *testing.T) {
	s, _ := Start(random.NewSeeded(2))
	s, _ = Apply(s, ForceReset)
	first := s.Order()

	seen := make(map[string]bool)
	for k := 1; k <= sequencer.Size; k++ {
		var effects []Effect
		s, effects = Apply(s, PrimaryAction)
		if s.Display() != string(first[k-1]) {
			t.Fatalf("draw %d: expected %q, got %q", k, first[k-1], s.Display())
		}
		if seen[s.Display()] {
			t.Fatalf("draw %d: letter %q repeated within pass", k, s.Display())
		}
		seen[s.Display()] = true
		if s.Status() != letterCaption(sequencer.Size-k) {
			t.Fatalf("draw %d: expected caption %q, got %q", k, letterCaption(sequencer.Size-k), s.Status())
		}
		if len(vibrations(effects)) != 0 {
			t.Fatalf("draw %d: unexpected vibration", k)
		}
	}

	s, effects := Apply(s, PrimaryAction)
	second := s.Order()
	if s.Display() != string(second[0]) {
		t.Fatalf("expected first letter of new pass %q, got %q", second[0], s.Display())
	}
	if s.Remaining() != 25 {
		t.Fatalf("expected 25 remaining after auto reshuffle, got %d", s.Remaining())
	}
	if got := vibrations(effects); len(got) != 1 || got[0] != haptic.ResetPulses {
		t.Fatalf("expected reset vibration on auto reshuffle, got %v", got)
	}
}

func TestToggleTwiceRestoresModeAndSequencer(t *testing.T) {
	s, _ := Start(random.NewSeeded(3))
	s, _ = Apply(s, PrimaryAction)
	before := s

	once, effects := Apply(s, ToggleMode)
	if once.Mode() != NumberMode {
		t.Fatalf("expected number mode, got %v", once.Mode())
	}
	if once.Status() != numberCaption {
		t.Fatalf("expected number caption, got %q", once.Status())
	}
	if got := vibrations(effects); len(got) != 1 || got[0] != haptic.ModePulse {
		t.Fatalf("expected mode pulse, got %v", got)
	}

	twice, _ := Apply(once, ToggleMode)
	if twice.Mode() != before.Mode() {
		t.Fatalf("expected mode %v, got %v", before.Mode(), twice.Mode())
	}
	if twice.Order() != before.Order() || twice.Remaining() != before.Remaining() {
		t.Fatal("expected sequencer untouched by toggling")
	}
	if twice.Status() != before.Status() {
		t.Fatalf("expected caption %q, got %q", before.Status(), twice.Status())
	}
}

func TestForceResetYieldsFullPass(t *testing.T) {
	s, _ := Start(random.NewSeeded(4))
	for i := 0; i < 7; i++ {
		s, _ = Apply(s, PrimaryAction)
	}

	s, effects := Apply(s, ForceReset)
	if s.Remaining() != sequencer.Size {
		t.Fatalf("expected %d remaining, got %d", sequencer.Size, s.Remaining())
	}
	if s.Display() != "" {
		t.Fatalf("expected cleared display, got %q", s.Display())
	}
	if s.Status() != letterCaption(26) {
		t.Fatalf("expected caption %q, got %q", letterCaption(26), s.Status())
	}
	if got := vibrations(effects); len(got) != 1 || got[0] != haptic.ResetPulses {
		t.Fatalf("expected reset pulses, got %v", got)
	}

	seen := make(map[string]bool)
	for i := 0; i < sequencer.Size; i++ {
		s, _ = Apply(s, PrimaryAction)
		seen[s.Display()] = true
	}
	if len(seen) != sequencer.Size {
		t.Fatalf("expected %d distinct letters, got %d", sequencer.Size, len(seen))
	}
}

func TestForceResetInNumberModeOnlyAffectsSequencer(t *testing.T) {
	s, _ := Start(random.NewSeeded(5))
	s, _ = Apply(s, ToggleMode)
	s, _ = Apply(s, ForceReset)
	if s.Mode() != NumberMode {
		t.Fatalf("expected number mode, got %v", s.Mode())
	}
	if s.Status() != numberCaption {
		t.Fatalf("expected number caption, got %q", s.Status())
	}
	s, _ = Apply(s, ToggleMode)
	if s.Status() != letterCaption(26) {
		t.Fatalf("expected caption %q, got %q", letterCaption(26), s.Status())
	}
}

func TestNumberDrawsStayInRange(t *testing.T) {
	s, _ := Start(random.NewSeeded(6))
	s, _ = Apply(s, ToggleMode)
	remaining := s.Remaining()
	order := s.Order()
	seen := make(map[string]bool)
	for i := 0; i < 600; i++ {
		var effects []Effect
		s, effects = Apply(s, PrimaryAction)
		d := s.Display()
		if len(d) != 1 || d[0] < '1' || d[0] > '6' {
			t.Fatalf("expected digit 1-6, got %q", d)
		}
		if len(effects) != 1 {
			t.Fatalf("expected a single display effect, got %d", len(effects))
		}
		seen[d] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected all six digits over 600 draws, got %d", len(seen))
	}
	if s.Remaining() != remaining || s.Order() != order {
		t.Fatal("expected number draws to leave the sequencer alone")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s, _ := Start(random.NewSeeded(7))
	before := s.Remaining()
	_, _ = Apply(s, PrimaryAction)
	_, _ = Apply(s, ForceReset)
	if s.Remaining() != before {
		t.Fatalf("expected original state to keep %d remaining, got %d", before, s.Remaining())
	}
}

func TestDispatchMapsButtons(t *testing.T) {
	cases := map[Button]Event{
		ButtonUp:     ToggleMode,
		ButtonSelect: PrimaryAction,
		ButtonDown:   ForceReset,
	}
	for b, want := range cases {
		if got := EventFor(b); got != want {
			t.Fatalf("button %d: expected %v, got %v", b, want, got)
		}
	}

	s, _ := Start(random.NewSeeded(8))
	s, _ = Dispatch(s, ButtonUp)
	if s.Mode() != NumberMode {
		t.Fatalf("expected up button to toggle mode, got %v", s.Mode())
	}
}

func TestStateApplyWithoutStart(t *testing.T) {
	for _, ev := range []Event{PrimaryAction, ToggleMode, ForceReset} {
		s, effects := Apply(State{}, ev)
		if len(effects) != 0 {
			t.Fatalf("%s: expected no effects before Start, got %v", ev, effects)
		}
		if s.Display() != "" || s.Status() != "" {
			t.Fatalf("%s: expected empty state before Start, got %q/%q", ev, s.Display(), s.Status())
		}
	}

	var s State
	s.mode = NumberMode
	if _, effects := Apply(s, PrimaryAction); len(effects) != 0 {
		t.Fatalf("expected no number draw without a source, got %v", effects)
	}
}

func TestPackageStaysOffTheAudioStack(t *testing.T) {
	const internal = "github.com/olivier-w/randlet/internal/"
	allowed := map[string]bool{
		internal + "haptic":    true,
		internal + "random":    true,
		internal + "sequencer": true,
	}

	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatalf("listing sources: %v", err)
	}
	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parsing %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			if strings.Contains(strings.Split(path, "/")[0], ".") && !allowed[path] {
				t.Fatalf("expected %s to import only stdlib and core packages, got %s", name, path)
			}
		}
	}
}

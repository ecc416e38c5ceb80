package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/randlet/internal/logger"
	"github.com/olivier-w/randlet/internal/random"
)

type options struct {
	seed     uint64
	mute     bool
	cueMode  string
	cueReset string
	debugLog string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("randlet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Uint64Var(&opts.seed, "seed", 0, "seed for a repeatable shuffle (0 picks a random one)")
	fs.BoolVar(&opts.mute, "mute", false, "do not open the audio device for haptic buzzes")
	fs.StringVar(&opts.cueMode, "cue-mode", "", "audio file played on a mode change")
	fs.StringVar(&opts.cueReset, "cue-reset", "", "audio file played on a reshuffle")
	fs.StringVar(&opts.debugLog, "debug-log", "", "append debug logging to this file")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return opts, nil
}

func (o options) source() random.Source {
	if o.seed == 0 {
		return random.New()
	}
	return random.NewSeeded(o.seed)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run starts the watch face and returns the process exit code.
func run(args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	log, closeLog, err := logger.Open(opts.debugLog, "randlet")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	cues, err := loadCues(opts)
	if err != nil {
		log.Errorf("loading cues: %v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	program := tea.NewProgram(newStartupModel(opts, cues, log), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Errorf("program exited: %v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

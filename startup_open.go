package main

import (
	"fmt"
	"path/filepath"

	"github.com/olivier-w/randlet/internal/haptic"
	"github.com/olivier-w/randlet/internal/haptic/buzz"
	"github.com/op/go-logging"
)

// loadCues decodes the cue files named on the command line.
func loadCues(opts options) (map[haptic.Pattern][]byte, error) {
	cues := make(map[haptic.Pattern][]byte)
	for p, path := range map[haptic.Pattern]string{
		haptic.ModePulse:   opts.cueMode,
		haptic.ResetPulses: opts.cueReset,
	} {
		if path == "" {
			continue
		}
		if !buzz.IsCueExt(filepath.Ext(path)) {
			return nil, fmt.Errorf("unsupported cue format %s (supported: .wav, .mp3, .ogg, .flac)", filepath.Ext(path))
		}
		pcm, err := buzz.LoadCue(path)
		if err != nil {
			return nil, fmt.Errorf("%s cue: %w", p, err)
		}
		cues[p] = pcm
	}
	return cues, nil
}

// openHaptics returns the sink the watch face vibrates through. Opening the
// audio device can block until the device is ready.
func openHaptics(opts options, cues map[haptic.Pattern][]byte, log *logging.Logger) (haptic.Sink, error) {
	if opts.mute {
		log.Info("haptics muted")
		return haptic.Silent{}, nil
	}
	b, err := buzz.NewBuzzer(log, cues)
	if err != nil {
		return nil, err
	}
	log.Info("audio haptics ready")
	return b, nil
}

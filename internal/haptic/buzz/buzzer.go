// Package buzz plays haptic patterns through the audio device. A terminal
// has no vibration motor, so patterns are rendered as short buzzes or as
// user supplied cue files.
package buzz

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/olivier-w/randlet/internal/haptic"
	"github.com/op/go-logging"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 2 // 16-bit = 2 bytes
	bytesPerSec  = sampleRate * channelCount * bitDepth
)

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// player is the part of *oto.Player the buzzer manages after Play.
type player interface {
	IsPlaying() bool
	Pause()
	Close() error
}

// Buzzer is a haptic.Sink that plays patterns through the audio device.
// Play is called from the UI loop while oto finishes players on its own
// goroutine, so live players are guarded by mu.
type Buzzer struct {
	ctx    *oto.Context
	log    *logging.Logger
	pcm    map[haptic.Pattern][]byte
	volume float64

	mu   sync.Mutex
	live []player
}

// NewBuzzer opens the audio device. cues overrides the synthesized buzz
// for the patterns it contains.
func NewBuzzer(log *logging.Logger, cues map[haptic.Pattern][]byte) (*Buzzer, error) {
	ctx, err := initOto()
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	b := &Buzzer{
		ctx:    ctx,
		log:    log,
		pcm:    make(map[haptic.Pattern][]byte),
		volume: 0.8,
	}
	for _, p := range []haptic.Pattern{haptic.ModePulse, haptic.ResetPulses} {
		if cue, ok := cues[p]; ok && len(cue) > 0 {
			b.pcm[p] = cue
			continue
		}
		b.pcm[p] = Synthesize(p)
	}
	return b, nil
}

// Play starts p and returns immediately.
func (b *Buzzer) Play(p haptic.Pattern) {
	pcm, ok := b.pcm[p]
	if !ok {
		b.log.Warningf("no cue for pattern %s", p)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.prune()

	pl := b.ctx.NewPlayer(bytes.NewReader(pcm))
	pl.SetVolume(b.volume)
	pl.Play()
	b.live = append(b.live, pl)
	b.log.Debugf("playing %s pattern (%d live)", p, len(b.live))
}

// prune drops players that finished. Callers hold mu.
func (b *Buzzer) prune() {
	live := b.live[:0]
	for _, p := range b.live {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			b.log.Debugf("closing finished player: %v", err)
		}
	}
	b.live = live
}

// Close stops every pattern still playing.
func (b *Buzzer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.live {
		p.Pause()
		if err := p.Close(); err != nil {
			b.log.Debugf("closing player: %v", err)
		}
	}
	b.live = nil
}

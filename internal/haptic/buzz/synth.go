package buzz

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/olivier-w/randlet/internal/haptic"
)

const (
	buzzFreq      = 150.0
	buzzAmplitude = 0.35
	// Ramp at each pulse edge to avoid clicks.
	buzzRamp = 3 * time.Millisecond
)

// Synthesize renders p as PCM: a low buzz for every "on" segment and
// silence for every "off" segment.
func Synthesize(p haptic.Pattern) []byte {
	segs := p.Segments()
	out := make([]byte, 0, frames(p.Duration())*channelCount*2)
	for i, seg := range segs {
		n := frames(seg)
		on := i%2 == 0
		ramp := frames(buzzRamp)
		for f := 0; f < n; f++ {
			var v float64
			if on {
				t := float64(f) / sampleRate
				v = buzzAmplitude * math.Copysign(1, math.Sin(2*math.Pi*buzzFreq*t))
				switch {
				case f < ramp:
					v *= float64(f) / float64(ramp)
				case n-f < ramp:
					v *= float64(n-f) / float64(ramp)
				}
			}
			s := uint16(int16(v * 32767))
			for ch := 0; ch < channelCount; ch++ {
				out = binary.LittleEndian.AppendUint16(out, s)
			}
		}
	}
	return out
}

func frames(d time.Duration) int {
	return int(d.Seconds() * sampleRate)
}

package buzz

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// A cue longer than this is truncated so it cannot drown out the next
// pattern.
const (
	maxCueSeconds = 2
	maxCue        = maxCueSeconds * bytesPerSec
)

// pcmDecoder yields interleaved 16-bit LE samples.
type pcmDecoder interface {
	io.Reader
	SampleRate() int
	ChannelCount() int
}

// LoadCue decodes an audio file into PCM in the buzzer's output format.
func LoadCue(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cue: %w", err)
	}
	defer f.Close()

	dec, err := newDecoder(f)
	if err != nil {
		return nil, err
	}
	limit := maxCueSeconds * dec.SampleRate() * dec.ChannelCount() * 2
	raw, err := readPCM(dec, limit)
	if err != nil {
		return nil, fmt.Errorf("decoding cue %s: %w", filepath.Base(path), err)
	}
	pcm := convert(raw, dec.SampleRate(), dec.ChannelCount())
	if len(pcm) > maxCue {
		pcm = pcm[:maxCue]
	}
	return pcm, nil
}

func readPCM(r io.Reader, limit int) ([]byte, error) {
	var out []byte
	buf := make([]byte, 32*1024)
	for len(out) < limit {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// IsCueExt returns true if the extension names a decodable cue format.
func IsCueExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".mp3", ".wav", ".flac", ".ogg":
		return true
	}
	return false
}

func newDecoder(f *os.File) (pcmDecoder, error) {
	ext := strings.ToLower(filepath.Ext(f.Name()))
	switch ext {
	case ".mp3":
		return newMP3Decoder(f)
	case ".wav":
		return newWAVDecoder(f)
	case ".flac":
		return newFLACDecoder(f)
	case ".ogg":
		return newOGGDecoder(f)
	default:
		return nil, fmt.Errorf("unsupported cue format: %s", ext)
	}
}

// convert resamples 16-bit PCM to the output rate and channel layout.
// Mono is duplicated; channels past the second are dropped.
func convert(raw []byte, rate, channels int) []byte {
	if channels <= 0 || rate <= 0 {
		return nil
	}
	frameSize := channels * 2
	frames := len(raw) / frameSize
	if frames == 0 {
		return nil
	}

	sample := func(frame, ch int) float64 {
		if ch >= channels {
			ch = channels - 1
		}
		off := frame*frameSize + ch*2
		return float64(int16(binary.LittleEndian.Uint16(raw[off:])))
	}

	outFrames := int(int64(frames) * sampleRate / int64(rate))
	out := make([]byte, outFrames*channelCount*2)
	step := float64(rate) / sampleRate
	for i := 0; i < outFrames; i++ {
		pos := float64(i) * step
		j := int(pos)
		frac := pos - float64(j)
		k := j + 1
		if k >= frames {
			k = frames - 1
		}
		for ch := 0; ch < channelCount; ch++ {
			v := sample(j, ch)*(1-frac) + sample(k, ch)*frac
			binary.LittleEndian.PutUint16(out[(i*channelCount+ch)*2:], uint16(int16(v)))
		}
	}
	return out
}

// --- MP3 decoder ---

type mp3Decoder struct {
	dec *mp3.Decoder
}

func newMP3Decoder(f *os.File) (*mp3Decoder, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decoding MP3: %w", err)
	}
	return &mp3Decoder{dec: dec}, nil
}

func (d *mp3Decoder) Read(p []byte) (int, error) { return d.dec.Read(p) }
func (d *mp3Decoder) SampleRate() int            { return d.dec.SampleRate() }
func (d *mp3Decoder) ChannelCount() int          { return 2 }

// --- WAV decoder ---

type wavDecoder struct {
	file        io.Reader
	remaining   int64
	sampleRate  int
	channels    int
	srcBitDepth int
}

func newWAVDecoder(f *os.File) (*wavDecoder, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("unsupported WAV bit depth: %d", bitDepth)
	}

	return &wavDecoder{
		file:        f,
		remaining:   dec.PCMLen(),
		sampleRate:  int(dec.SampleRate),
		channels:    int(dec.NumChans),
		srcBitDepth: bitDepth,
	}, nil
}

func (d *wavDecoder) Read(p []byte) (int, error) {
	if d.remaining <= 0 {
		return 0, io.EOF
	}
	srcBytesPerSample := d.srcBitDepth / 8
	numOutputSamples := len(p) / 2
	if numOutputSamples == 0 {
		return 0, nil
	}
	want := int64(numOutputSamples * srcBytesPerSample)
	if want > d.remaining {
		want = d.remaining
	}
	srcBytes := make([]byte, want)
	n, err := io.ReadFull(d.file, srcBytes)
	d.remaining -= int64(n)

	samplesRead := n / srcBytesPerSample
	if samplesRead == 0 {
		return 0, io.EOF
	}

	for i := 0; i < samplesRead; i++ {
		var sample int
		off := i * srcBytesPerSample
		switch d.srcBitDepth {
		case 8:
			// 8-bit WAV is unsigned
			sample = (int(srcBytes[off]) - 128) << 8
		case 16:
			sample = int(int16(binary.LittleEndian.Uint16(srcBytes[off:])))
		case 24:
			s := int32(srcBytes[off]) | int32(srcBytes[off+1])<<8 | int32(srcBytes[off+2])<<16
			if s&0x800000 != 0 {
				s |= ^0xFFFFFF
			}
			sample = int(s >> 8)
		case 32:
			sample = int(int32(binary.LittleEndian.Uint32(srcBytes[off:])) >> 16)
		}
		binary.LittleEndian.PutUint16(p[i*2:], uint16(int16(clamp16(sample))))
	}

	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return samplesRead * 2, err
}

func (d *wavDecoder) SampleRate() int   { return d.sampleRate }
func (d *wavDecoder) ChannelCount() int { return d.channels }

// --- FLAC decoder ---

type flacDecoder struct {
	stream     *flac.Stream
	buf        []byte
	sampleRate int
	channels   int
	bps        int
}

func newFLACDecoder(f *os.File) (*flacDecoder, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("decoding FLAC: %w", err)
	}
	info := stream.Info
	return &flacDecoder{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bps:        int(info.BitsPerSample),
	}, nil
}

func (d *flacDecoder) Read(p []byte) (int, error) {
	if len(d.buf) > 0 {
		n := copy(p, d.buf)
		d.buf = d.buf[n:]
		return n, nil
	}

	frame, err := d.stream.ParseNext()
	if err != nil {
		return 0, err
	}

	nSamples := int(frame.Subframes[0].NSamples)
	raw := make([]byte, nSamples*d.channels*2)
	for i := 0; i < nSamples; i++ {
		for ch := 0; ch < d.channels; ch++ {
			sample := int(frame.Subframes[ch].Samples[i])
			switch {
			case d.bps > 16:
				sample >>= (d.bps - 16)
			case d.bps < 16:
				sample <<= (16 - d.bps)
			}
			offset := (i*d.channels + ch) * 2
			binary.LittleEndian.PutUint16(raw[offset:], uint16(int16(clamp16(sample))))
		}
	}

	written := copy(p, raw)
	if written < len(raw) {
		d.buf = raw[written:]
	}
	return written, nil
}

func (d *flacDecoder) SampleRate() int   { return d.sampleRate }
func (d *flacDecoder) ChannelCount() int { return d.channels }

// --- OGG Vorbis decoder ---

type oggDecoder struct {
	reader *oggvorbis.Reader
	buf    []byte
}

func newOGGDecoder(f *os.File) (*oggDecoder, error) {
	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decoding OGG: %w", err)
	}
	return &oggDecoder{reader: reader}, nil
}

func (d *oggDecoder) Read(p []byte) (int, error) {
	if len(d.buf) > 0 {
		n := copy(p, d.buf)
		d.buf = d.buf[n:]
		return n, nil
	}

	samples := make([]float32, len(p)/2)
	n, err := d.reader.Read(samples)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	raw := make([]byte, n*2)
	for i := 0; i < n; i++ {
		s := samples[i]
		if s > 1.0 {
			s = 1.0
		} else if s < -1.0 {
			s = -1.0
		}
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(int16(s*32767)))
	}

	written := copy(p, raw)
	if written < len(raw) {
		d.buf = raw[written:]
	}
	return written, err
}

func (d *oggDecoder) SampleRate() int   { return d.reader.SampleRate() }
func (d *oggDecoder) ChannelCount() int { return d.reader.Channels() }

func clamp16(v int) int {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}

package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/sirupsen/logrus"

	"ebiten-scavenger/systems"
)

// SampleRate is shared by the effect tones and decoded music
const SampleRate = 44100

// Tone is a short synthesized sound: a sweep from one frequency to another
type Tone struct {
	From, To float64 // Hz
	Seconds  float64
}

// Effects without an entry are silent
var tones = map[systems.EffectKind][]Tone{
	systems.EffectMove:        {{From: 180, To: 140, Seconds: 0.04}},
	systems.EffectChop:        {{From: 320, To: 90, Seconds: 0.08}},
	systems.EffectEat:         {{From: 520, To: 780, Seconds: 0.10}},
	systems.EffectDrink:       {{From: 660, To: 990, Seconds: 0.06}, {From: 990, To: 1320, Seconds: 0.06}},
	systems.EffectEnemyAttack: {{From: 140, To: 70, Seconds: 0.12}},
	systems.EffectGameOver:    {{From: 440, To: 330, Seconds: 0.25}, {From: 330, To: 220, Seconds: 0.4}},
}

// EffectPlayer plays effect tones and optional background music. It implements
// systems.EffectHook.
type EffectPlayer struct {
	audioContext *audio.Context
	samples      map[systems.EffectKind][]byte
	bgmPlayer    *audio.Player
	bgmStream    io.ReadSeeker
	bgmFile      io.Closer
	volume       float64
	log          logrus.FieldLogger
}

// NewEffectPlayer creates the audio context and renders every effect tone up front
func NewEffectPlayer(volume float64, log logrus.FieldLogger) *EffectPlayer {
	p := &EffectPlayer{
		audioContext: audio.NewContext(SampleRate),
		samples:      make(map[systems.EffectKind][]byte, len(tones)),
		volume:       volume,
		log:          log,
	}
	for kind, parts := range tones {
		p.samples[kind] = Synthesize(parts...)
	}
	return p
}

// PlayEffect implements systems.EffectHook
func (p *EffectPlayer) PlayEffect(kind systems.EffectKind) {
	pcm, ok := p.samples[kind]
	if !ok {
		return
	}
	player := p.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(p.volume)
	player.Play()
}

// PlayBGM loops an .mp3 or .ogg file as background music
func (p *EffectPlayer) PlayBGM(path string) error {
	p.StopBGM()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}

	stream, length, err := decode(path, file)
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to decode audio file: %w", err)
	}

	p.bgmStream = audio.NewInfiniteLoop(stream, length)
	player, err := p.audioContext.NewPlayer(p.bgmStream)
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to create audio player: %w", err)
	}
	p.bgmFile = file

	p.bgmPlayer = player
	p.bgmPlayer.SetVolume(p.volume)
	p.bgmPlayer.Play()
	p.log.WithField("path", path).Info("background music started")
	return nil
}

// decode picks a decoder by file extension
func decode(path string, r io.Reader) (io.ReadSeeker, int64, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	}
	return nil, 0, fmt.Errorf("unsupported audio format: %s", path)
}

// StopBGM stops the background music
func (p *EffectPlayer) StopBGM() {
	if p.bgmPlayer != nil {
		p.bgmPlayer.Close()
		p.bgmPlayer = nil
	}
	if p.bgmFile != nil {
		p.bgmFile.Close()
		p.bgmFile = nil
	}
	p.bgmStream = nil
}

// SetVolume sets the volume for music and later effects (0.0 to 1.0)
func (p *EffectPlayer) SetVolume(volume float64) {
	p.volume = volume
	if p.bgmPlayer != nil {
		p.bgmPlayer.SetVolume(volume)
	}
}

// Synthesize renders tones back to back as 16-bit little endian stereo PCM
func Synthesize(parts ...Tone) []byte {
	frames := 0
	for _, t := range parts {
		frames += int(t.Seconds * SampleRate)
	}
	buf := make([]byte, 0, frames*4)
	phase := 0.0
	for _, t := range parts {
		n := int(t.Seconds * SampleRate)
		for i := 0; i < n; i++ {
			progress := float64(i) / float64(n)
			freq := t.From + (t.To-t.From)*progress
			phase += 2 * math.Pi * freq / SampleRate
			// fade out so consecutive effects do not click
			envelope := 1 - progress
			sample := int16(math.Sin(phase) * envelope * 0.3 * math.MaxInt16)
			// left, right
			buf = binary.LittleEndian.AppendUint16(buf, uint16(sample))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(sample))
		}
	}
	return buf
}

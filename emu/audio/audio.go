// Package audio plays the buzzer tone while the sound timer is running.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate    = beep.SampleRate(44100)
	DefaultFreq   = 440
	DefaultVolume = 0.2
	resampleQual  = 4
)

type Config struct {
	Clip   string // optional mp3 file looped while beeping
	Freq   float64
	Volume float64
}

// Tone is an endless square wave.
type Tone struct {
	sampleRate beep.SampleRate
	freq       float64
	volume     float64
	phase      float64
}

func NewTone(sampleRate beep.SampleRate, freq, volume float64) *Tone {
	return &Tone{
		sampleRate: sampleRate,
		freq:       freq,
		volume:     volume,
	}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	step := t.freq / float64(t.sampleRate)
	for i := range samples {
		v := t.volume
		if t.phase >= 0.5 {
			v = -v
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += step
		if t.phase >= 1 {
			t.phase -= 1
		}
	}
	return len(samples), true
}

func (t *Tone) Err() error {
	return nil
}

// Speaker gates a streamer on the system speaker. It implements the
// driver's Beeper.
type Speaker struct {
	ctrl *beep.Ctrl
	clip beep.StreamSeekCloser
}

func NewSpeaker(cfg Config) (*Speaker, error) {
	if cfg.Freq <= 0 {
		cfg.Freq = DefaultFreq
	}
	if cfg.Volume <= 0 {
		cfg.Volume = DefaultVolume
	}

	s := &Speaker{}
	var source beep.Streamer = NewTone(SampleRate, cfg.Freq, cfg.Volume)
	if cfg.Clip != "" {
		clip, err := openClip(cfg.Clip)
		if err != nil {
			return nil, err
		}
		s.clip = clip
		source = clip.looped
	}

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		s.Close()
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	s.ctrl = &beep.Ctrl{Streamer: source, Paused: true}
	speaker.Play(s.ctrl)
	return s, nil
}

type clipStream struct {
	beep.StreamSeekCloser
	looped beep.Streamer
}

func openClip(path string) (*clipStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening beep clip: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decoding beep clip '%s': %w", path, err)
	}

	var looped beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != SampleRate {
		looped = beep.Resample(resampleQual, format.SampleRate, SampleRate, looped)
	}
	return &clipStream{StreamSeekCloser: streamer, looped: looped}, nil
}

func (s *Speaker) Start() {
	s.setPaused(false)
}

func (s *Speaker) Stop() {
	s.setPaused(true)
}

func (s *Speaker) setPaused(paused bool) {
	speaker.Lock()
	s.ctrl.Paused = paused
	if paused && s.clip != nil {
		_ = s.clip.Seek(0)
	}
	speaker.Unlock()
}

// Close releases the decoded clip, if any.
func (s *Speaker) Close() error {
	if s.clip == nil {
		return nil
	}
	return s.clip.Close()
}

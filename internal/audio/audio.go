// Package audio plays the procedural sounds through oto. Every method is
// safe on a nil *System so the game keeps running without a sound device.
package audio

import (
	"bytes"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/oto/v2"

	"mazerunner/internal/audio/synth"
)

const (
	SampleRate   = int(synth.DefaultRate)
	ChannelCount = 2
	BitDepth     = oto.FormatFloat32LE
)

// VolumeStep is the increment applied by the volume keys.
const VolumeStep = 0.1

// maxVoices caps concurrent one-shot players; footsteps at a run would
// otherwise pile up on slow devices.
const maxVoices = 12

// Kind identifies a one-shot sound.
type Kind int

const (
	SoundFootstep Kind = iota
	SoundBump
	SoundMenuSelect
	SoundVictory
)

func (k Kind) String() string {
	switch k {
	case SoundFootstep:
		return "footstep"
	case SoundBump:
		return "bump"
	case SoundMenuSelect:
		return "menu"
	case SoundVictory:
		return "victory"
	}
	return "unknown"
}

// System owns the oto context and the looping ambience player.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	logger *log.Logger

	mu          sync.Mutex
	ambience    oto.Player
	sfxVolume   float64
	musicVolume float64

	voices   int32
	stepSeed uint64
}

// Init opens the output device. The context becomes usable once ready is
// closed; sounds requested before that are dropped.
func Init(sfxVolume, musicVolume float64, logger *log.Logger) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &System{
		ctx:         ctx,
		ready:       ready,
		logger:      logger,
		sfxVolume:   clampF(sfxVolume, 0, 1),
		musicVolume: clampF(musicVolume, 0, 1),
		stepSeed:    uint64(time.Now().UnixNano()),
	}, nil
}

func (s *System) isReady() bool {
	if s == nil {
		return false
	}
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// WaitReady blocks until the device is usable or timeout elapses and
// reports whether it became ready.
func (s *System) WaitReady(timeout time.Duration) bool {
	if s == nil {
		return false
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-s.ready:
		return true
	case <-t.C:
		return false
	}
}

// Play starts a one-shot sound. pan is -1 (left) .. 1 (right) and only
// affects footsteps.
func (s *System) Play(kind Kind, pan float64) {
	if !s.isReady() {
		return
	}
	if atomic.LoadInt32(&s.voices) >= maxVoices {
		return
	}

	var st beep.Streamer
	switch kind {
	case SoundFootstep:
		st = synth.Footstep(synth.DefaultRate, atomic.AddUint64(&s.stepSeed, 0x9E3779B97F4A7C15), pan)
	case SoundBump:
		st = synth.Bump(synth.DefaultRate)
	case SoundMenuSelect:
		st = synth.MenuSelect(synth.DefaultRate)
	case SoundVictory:
		st = synth.Victory(synth.DefaultRate)
	default:
		return
	}
	samples := synth.EncodeF32(synth.Render(st, 4*SampleRate))
	if len(samples) == 0 {
		return
	}

	s.mu.Lock()
	vol := s.sfxVolume
	s.mu.Unlock()
	if vol <= 0 {
		return
	}

	atomic.AddInt32(&s.voices, 1)
	go func() {
		defer atomic.AddInt32(&s.voices, -1)
		player := s.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(vol)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil && s.logger != nil {
			s.logger.Printf("[WARN] closing %s player: %v", kind, err)
		}
	}()
}

// StartAmbience (re)starts the endless background drone.
func (s *System) StartAmbience(seed uint64) {
	if !s.isReady() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ambience != nil {
		s.ambience.Close()
	}
	player := s.ctx.NewPlayer(synth.NewStreamReader(synth.Ambience(synth.DefaultRate, seed)))
	player.SetVolume(s.musicVolume)
	player.Play()
	s.ambience = player
}

// StopAmbience silences the drone.
func (s *System) StopAmbience() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ambience != nil {
		s.ambience.Close()
		s.ambience = nil
	}
}

func (s *System) SetSFXVolume(vol float64) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.sfxVolume = clampF(vol, 0, 1)
	s.mu.Unlock()
}

func (s *System) SFXVolume() float64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sfxVolume
}

func (s *System) MusicVolume() float64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.musicVolume
}

func (s *System) SetMusicVolume(vol float64) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.musicVolume = clampF(vol, 0, 1)
	if s.ambience != nil {
		s.ambience.SetVolume(s.musicVolume)
	}
}

// Close stops the ambience. One-shot players finish on their own.
func (s *System) Close() {
	s.StopAmbience()
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

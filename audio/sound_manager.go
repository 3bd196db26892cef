package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/glowchase/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays short cues for spider state changes
// All methods are safe to call before Initialize or after a failed Initialize: they do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	lastPounce time.Time
	lastChase  time.Time
	now        func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(&effects.Volume{
		Streamer: sm.mixer,
		Base:     2,
		Volume:   parameter.AudioVolume,
	})
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayPounce plays the rising chirp, pitch scaled by spider base speed ratio
func (sm *SoundManager) PlayPounce(pitch float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.gapElapsed(&sm.lastPounce) {
		return
	}

	if pitch <= 0 {
		pitch = 1
	}
	chirp := NewChirpGenerator(sampleRate,
		parameter.PounceSoundFreqLow*pitch,
		parameter.PounceSoundFreqHigh*pitch,
		parameter.PounceSoundDuration,
	)
	sm.add(chirp)
}

// PlayChase plays a short sine blip
func (sm *SoundManager) PlayChase() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.gapElapsed(&sm.lastChase) {
		return
	}

	sine, err := generators.SineTone(sampleRate, parameter.ChaseSoundFreq)
	if err != nil {
		return
	}
	sm.add(beep.Take(sampleRate.N(parameter.ChaseSoundDuration), sine))
}

// gapElapsed rate-limits a cue kind, caller holds sm.mu
func (sm *SoundManager) gapElapsed(last *time.Time) bool {
	now := sm.now()
	if now.Sub(*last) < parameter.MinSoundGap {
		return false
	}
	*last = now
	return true
}

// add hands a streamer to the mixer under the speaker lock, caller holds sm.mu
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

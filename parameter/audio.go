package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive cues of the same kind
	MinSoundGap = 80 * time.Millisecond
)

// Pounce cue: short rising chirp
const (
	PounceSoundDuration = 90 * time.Millisecond
	PounceSoundFreqLow  = 440.0
	PounceSoundFreqHigh = 1320.0
	PounceSoundAttack   = 5 * time.Millisecond
)

// Chase cue: soft blip when a spider first locks onto the glow
const (
	ChaseSoundDuration = 40 * time.Millisecond
	ChaseSoundFreq     = 220.0
)

// AudioVolume is the master gain in beep effects.Volume units (base 2, 0 = unity)
const AudioVolume = -2.0

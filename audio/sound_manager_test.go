package audio

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/glowchase/parameter"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayPounce(1)
	sm.PlayChase()
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayPounce(1.2)
	sm.PlayChase()
	sm.Cleanup()
}

func TestGapElapsed(t *testing.T) {
	sm := NewSoundManager()
	clock := time.Unix(1000, 0)
	sm.now = func() time.Time { return clock }

	var last time.Time
	if !sm.gapElapsed(&last) {
		t.Fatal("First cue should pass")
	}
	if sm.gapElapsed(&last) {
		t.Error("Immediate repeat should be suppressed")
	}

	clock = clock.Add(parameter.MinSoundGap)
	if !sm.gapElapsed(&last) {
		t.Error("Cue after MinSoundGap should pass")
	}
}

func TestChirpGenerator(t *testing.T) {
	g := NewChirpGenerator(sampleRate, 400, 800, 10*time.Millisecond)
	want := sampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := g.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("Sample %d out of range or not mono: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
		if total > want+len(buf) {
			t.Fatal("Chirp did not terminate")
		}
	}

	if total != want {
		t.Errorf("Streamed %d samples, want %d", total, want)
	}
	if g.Err() != nil {
		t.Errorf("Unexpected error: %v", g.Err())
	}
}

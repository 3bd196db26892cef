package render

import (
	"testing"

	"github.com/lixenwraith/glowchase/core"
)

func TestBlendGlow_Endpoints(t *testing.T) {
	base := core.RGBBlack
	glow := core.RGBYellow

	if got := BlendGlow(base, glow, 0); got != base {
		t.Errorf("t=0: got %v, want base", got)
	}
	if got := BlendGlow(base, glow, 1); got != glow {
		t.Errorf("t=1: got %v, want glow", got)
	}

	mid := BlendGlow(base, glow, 0.35)
	if mid.R == 0 || mid.R != mid.G || mid.B != 0 {
		t.Errorf("t=0.35: got %v, want a dim yellow", mid)
	}
}

func TestHighlight(t *testing.T) {
	got := Highlight(core.RGBBlue, PounceHighlight)
	if got == core.RGBBlue {
		t.Fatal("highlight left color unchanged")
	}
	if got.R == 0 && got.G == 0 {
		t.Errorf("highlight did not move toward white: %v", got)
	}
}

func TestToTcell(t *testing.T) {
	r, g, b := ToTcell(core.RGB{R: 12, G: 34, B: 56}).RGB()
	if r != 12 || g != 34 || b != 56 {
		t.Errorf("ToTcell round trip = (%d, %d, %d)", r, g, b)
	}
}

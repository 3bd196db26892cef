package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/glowchase/core"
	"github.com/lixenwraith/glowchase/vmath"
)

var testSteering = SteeringProfile{Speed: 2, Friction: 0.85}

func TestSteer_ImpulseDampIntegrate(t *testing.T) {
	k := &core.Kinetic{X: 0, Y: 0, VX: 1, VY: 0}

	Steer(k, 10, 0, &testSteering, 1)

	// v = (1 + 2) * 0.85, pos = v
	wantV := 3 * 0.85
	if math.Abs(k.VX-wantV) > 1e-12 || k.VY != 0 {
		t.Errorf("velocity = (%v, %v), want (%v, 0)", k.VX, k.VY, wantV)
	}
	if math.Abs(k.X-wantV) > 1e-12 || k.Y != 0 {
		t.Errorf("position = (%v, %v), want (%v, 0)", k.X, k.Y, wantV)
	}
}

func TestSteer_Multiplier(t *testing.T) {
	k := &core.Kinetic{}
	Steer(k, 0, -5, &testSteering, 2.5)

	want := -2 * 2.5 * 0.85
	if math.Abs(k.VY-want) > 1e-12 {
		t.Errorf("VY = %v, want %v", k.VY, want)
	}
}

func TestSteer_AtTargetCoasts(t *testing.T) {
	k := &core.Kinetic{X: 5, Y: 5}
	Steer(k, 5, 5, &testSteering, 1)
	if k.X != 5 || k.Y != 5 || k.VX != 0 || k.VY != 0 {
		t.Errorf("stationary body at target moved: %+v", *k)
	}

	k = &core.Kinetic{X: 5, Y: 5, VX: 2}
	Steer(k, 5, 5, &testSteering, 1)
	if math.Abs(k.VX-1.7) > 1e-12 || math.Abs(k.X-6.7) > 1e-12 {
		t.Errorf("coasting body = %+v, want VX 1.7 X 6.7", *k)
	}
}

func TestSteer_Overshoots(t *testing.T) {
	// Momentum carries the body past a near target rather than snapping to it
	k := &core.Kinetic{X: 0, Y: 0, VX: 10}
	Steer(k, 3, 0, &testSteering, 1)
	if k.X <= 3 {
		t.Errorf("expected overshoot past 3, got X = %v", k.X)
	}
}

func TestSteer_VelocityBounded(t *testing.T) {
	// With constant impulse s and friction f, velocity converges to s*f/(1-f)
	k := &core.Kinetic{}
	for i := 0; i < 500; i++ {
		Steer(k, 1e9, 0, &testSteering, 1)
	}
	limit := testSteering.Speed * testSteering.Friction / (1 - testSteering.Friction)
	if math.Abs(k.VX-limit) > 1e-6 {
		t.Errorf("terminal velocity = %v, want %v", k.VX, limit)
	}
}

var testSeparation = SeparationProfile{MinDistance: 30, PushStep: 2}

func TestSeparate_PushesApart(t *testing.T) {
	k := &core.Kinetic{X: 100, Y: 100, VX: 1.5, VY: -0.5}
	ox, oy := 106.0, 108.0 // distance 10

	before := vmath.Distance(k.X, k.Y, ox, oy)
	if !Separate(k, ox, oy, &testSeparation) {
		t.Fatal("expected neighbor in range")
	}
	after := vmath.Distance(k.X, k.Y, ox, oy)

	if math.Abs(after-(before+2)) > 1e-9 {
		t.Errorf("distance %v -> %v, want +2", before, after)
	}
	if k.VX != 1.5 || k.VY != -0.5 {
		t.Errorf("velocity changed: (%v, %v)", k.VX, k.VY)
	}
}

func TestSeparate_OutOfRange(t *testing.T) {
	k := &core.Kinetic{X: 0, Y: 0}
	if Separate(k, 30, 0, &testSeparation) {
		t.Error("distance exactly MinDistance should not push")
	}
	if k.X != 0 || k.Y != 0 {
		t.Errorf("position changed: %+v", *k)
	}
}

func TestSeparate_JustInside(t *testing.T) {
	k := &core.Kinetic{X: 0, Y: 0}
	if !Separate(k, 29.999, 0, &testSeparation) {
		t.Fatal("neighbor just inside MinDistance should push")
	}
	if k.X != -2 || k.Y != 0 {
		t.Errorf("position = (%v, %v), want (-2, 0)", k.X, k.Y)
	}
}

func TestSeparate_Coincident(t *testing.T) {
	k := &core.Kinetic{X: 7, Y: 7}
	if !Separate(k, 7, 7, &testSeparation) {
		t.Error("coincident neighbor is in range")
	}
	if k.X != 7 || k.Y != 7 {
		t.Errorf("coincident push should be zero, got %+v", *k)
	}
}

package game

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEatPulseScaleBounds(t *testing.T) {
	for i := 0; i <= 500; i++ {
		e := float64(i) / 1000
		s := EatPulseScale(e)
		if s < EatPulseMinScale-1e-9 || s > EatPulseMaxScale+1e-9 {
			t.Fatalf("scale(%.3f) = %f out of [0.8,1.2]", e, s)
		}
	}
	if !approx(EatPulseScale(0), 1.2) || !approx(EatPulseScale(0.25), 1.0) || !approx(EatPulseScale(0.5), 0.8) {
		t.Errorf("scale endpoints wrong: %f %f %f", EatPulseScale(0), EatPulseScale(0.25), EatPulseScale(0.5))
	}
}

func TestEatPulseLifecycle(t *testing.T) {
	var p EatPulse
	p.Reset()
	p.Trigger(10)
	if !p.Active || p.Scale != 1.2 || p.FoodAlpha != 255 {
		t.Fatalf("after trigger: %+v", p)
	}

	p.Update(10.25)
	if !p.Active || !approx(p.Scale, 1.0) || !approx(p.FoodAlpha, 127.5) {
		t.Errorf("midway: %+v", p)
	}

	p.Update(10.5)
	if p.Active {
		t.Error("pulse must be inactive at elapsed 0.5")
	}
	if p.Scale != 1.0 || p.FoodAlpha != 255 {
		t.Errorf("pulse not restored: %+v", p)
	}
	if p.HeadScale() != 1.0 || p.FoodOpacity() != 1.0 {
		t.Errorf("inactive pulse must not scale: %f %f", p.HeadScale(), p.FoodOpacity())
	}
}

func TestDeathFadeCurves(t *testing.T) {
	if !approx(DeathAlpha(0), 1) || !approx(DeathAlpha(1), 0.5) || DeathAlpha(3) != 0 {
		t.Errorf("alpha curve: %f %f %f", DeathAlpha(0), DeathAlpha(1), DeathAlpha(3))
	}
	for i := 0; i <= 300; i++ {
		e := float64(i) / 100
		s := DeathShake(e)
		if math.Abs(s) > DeathShakeAmp {
			t.Fatalf("shake(%.2f) = %f exceeds amplitude", e, s)
		}
		if e >= DeathFadeDuration && s != 0 {
			t.Fatalf("shake(%.2f) = %f, want 0 after decay", e, s)
		}
	}
	want := 3 * math.Sin(5) * 0.75
	if !approx(DeathShake(0.5), want) {
		t.Errorf("shake(0.5) = %f, want %f", DeathShake(0.5), want)
	}
}

func TestDeathFadeState(t *testing.T) {
	var d DeathFade
	d.Reset()
	if d.Shake(5) != 0 || d.Opacity() != 1 {
		t.Errorf("idle fade leaks effect: shake=%f alpha=%f", d.Shake(5), d.Opacity())
	}
	d.Trigger(4)
	d.Update(5)
	if !approx(d.Opacity(), 0.5) {
		t.Errorf("opacity = %f, want 0.5", d.Opacity())
	}
	d.Update(7)
	if d.Opacity() != 0 {
		t.Errorf("opacity = %f, want 0", d.Opacity())
	}
}

func TestBannerWraps(t *testing.T) {
	var b Banner
	b.Reset()
	if b.X != BannerStart {
		t.Fatalf("start = %f", b.X)
	}
	b.Step()
	if b.X != BannerStart+BannerStep {
		t.Errorf("step = %f", b.X)
	}
	b.X = WindowWidth
	b.Step()
	if b.X != BannerStart {
		t.Errorf("banner did not wrap: %f", b.X)
	}
}

func TestTailWiggleBounded(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if w := TailWiggle(float64(i) * 0.013); math.Abs(w) > TailWiggleAmp {
			t.Fatalf("wiggle %f exceeds amplitude", w)
		}
	}
}

package game

import "math"

// EatPulse squashes the head and fades the fresh food after each meal.
type EatPulse struct {
	Active    bool
	Start     float64
	Scale     float64
	FoodAlpha float64 // 0..255
}

func (p *EatPulse) Reset() {
	*p = EatPulse{Scale: 1.0, FoodAlpha: 255}
}

func (p *EatPulse) Trigger(now float64) {
	p.Active = true
	p.Start = now
	p.Scale = EatPulseMaxScale
	p.FoodAlpha = 255
}

// Update samples the pulse at now and retires it once its duration is over.
func (p *EatPulse) Update(now float64) {
	if !p.Active {
		return
	}
	t := now - p.Start
	if t >= EatPulseDuration {
		p.Reset()
		return
	}
	p.Scale = EatPulseScale(t)
	p.FoodAlpha = 255 * (1 - t/EatPulseDuration)
}

// EatPulseScale is the head scale at elapsed seconds into the pulse.
func EatPulseScale(elapsed float64) float64 {
	t := clampF(elapsed/EatPulseDuration, 0, 1)
	return EatPulseMaxScale - (EatPulseMaxScale-EatPulseMinScale)*t
}

// HeadScale is the multiplier for head and eye radii this frame.
func (p *EatPulse) HeadScale() float64 {
	if p.Active {
		return p.Scale
	}
	return 1.0
}

// FoodOpacity is the food sprite alpha in [0,1].
func (p *EatPulse) FoodOpacity() float64 {
	if p.Active {
		return p.FoodAlpha / 255
	}
	return 1.0
}

// DeathFade shakes and fades the snake after a game over.
type DeathFade struct {
	Active bool
	Start  float64
	Alpha  float64
}

func (d *DeathFade) Reset() {
	*d = DeathFade{Alpha: 1.0}
}

func (d *DeathFade) Trigger(now float64) {
	d.Active = true
	d.Start = now
	d.Alpha = 1.0
}

func (d *DeathFade) Update(now float64) {
	if !d.Active {
		return
	}
	d.Alpha = DeathAlpha(now - d.Start)
}

// Shake is the horizontal jitter for every segment at now.
func (d *DeathFade) Shake(now float64) float64 {
	if !d.Active {
		return 0
	}
	return DeathShake(now - d.Start)
}

// Opacity is the global snake alpha.
func (d *DeathFade) Opacity() float64 {
	if d.Active {
		return d.Alpha
	}
	return 1.0
}

func deathDecay(elapsed float64) float64 {
	return math.Max(0, 1-elapsed/DeathFadeDuration)
}

func DeathShake(elapsed float64) float64 {
	return DeathShakeAmp * math.Sin(DeathShakeFreq*elapsed) * deathDecay(elapsed)
}

func DeathAlpha(elapsed float64) float64 {
	return deathDecay(elapsed)
}

// Banner scrolls the game over message across the screen forever.
type Banner struct {
	X float64
}

func (b *Banner) Reset() { b.X = BannerStart }

// Step advances one frame and wraps from off-screen right to off-screen left.
func (b *Banner) Step() {
	b.X += BannerStep
	if b.X > WindowWidth {
		b.X = BannerStart
	}
}

// TailWiggle is the idle sway of the tail segment while playing.
func TailWiggle(now float64) float64 {
	return TailWiggleAmp * math.Sin(TailWiggleFreq*now)
}

// Animations groups every timed effect owned by a game.
type Animations struct {
	Eat    EatPulse
	Death  DeathFade
	Banner Banner
}

func (a *Animations) Reset() {
	a.Eat.Reset()
	a.Death.Reset()
	a.Banner.Reset()
}

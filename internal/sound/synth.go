package sound

import "math"

// note is one voice of a cue, timed in seconds from the cue start.
type note struct {
	freq     float64
	onset    float64
	length   float64
	glide    float64 // relative pitch change across the note
	modRatio float64
	modIdx   float64
	gain     float64
}

// mixNotes renders notes into a mono buffer of dur seconds.
func mixNotes(dur float64, env func(p float64) float64, notes ...note) []float64 {
	out := make([]float64, int(dur*SampleRate))
	for _, nt := range notes {
		start := int(nt.onset * SampleRate)
		n := int(nt.length * SampleRate)
		for i := 0; i < n && start+i < len(out); i++ {
			t := float64(start+i) / SampleRate
			p := float64(i) / float64(n)
			e := env(p)
			freq := nt.freq * (1 + nt.glide*p)
			out[start+i] += fm(t, freq, nt.modRatio, nt.modIdx*e) * e * nt.gain
		}
	}
	for i, s := range out {
		out[i] = softSat(s)
	}
	return out
}

// genEat is a short two-step chirp, rising on the second blip.
func genEat() []float64 {
	env := func(p float64) float64 { return adsr(p, 0.02, 0.4, 0.2, 0.3) }
	return mixNotes(0.12, env,
		note{freq: 660, onset: 0, length: 0.06, glide: 0.3, modRatio: 2, modIdx: 2.5, gain: 0.45},
		note{freq: 990, onset: 0.05, length: 0.07, glide: 0.2, modRatio: 2, modIdx: 1.5, gain: 0.35},
	)
}

// genGameOver walks down a minor triad and lets the last note ring.
func genGameOver() []float64 {
	env := func(p float64) float64 { return adsr(p, 0.01, 0.3, 0.35, 0.4) }
	return mixNotes(0.9, env,
		note{freq: 392.00, onset: 0, length: 0.3, glide: -0.02, modRatio: 1, modIdx: 1.8, gain: 0.3},
		note{freq: 311.13, onset: 0.18, length: 0.3, glide: -0.02, modRatio: 1, modIdx: 1.8, gain: 0.3},
		note{freq: 261.63, onset: 0.36, length: 0.54, glide: -0.05, modRatio: 0.5, modIdx: 2.2, gain: 0.35},
	)
}

// encodeStereo packs mono samples as interleaved float32 LE stereo frames.
func encodeStereo(samples []float64) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		v := math.Float32bits(float32(s))
		for ch := 0; ch < ChannelCount; ch++ {
			o := i*8 + ch*4
			buf[o] = byte(v)
			buf[o+1] = byte(v >> 8)
			buf[o+2] = byte(v >> 16)
			buf[o+3] = byte(v >> 24)
		}
	}
	return buf
}

// softSat is a cubic soft clipper that stays inside [-1,1].
func softSat(x float64) float64 {
	if x > 1 {
		return 1 - 0.5/x
	}
	if x < -1 {
		return -1 - 0.5/x
	}
	return x - x*x*x/3
}

// adsr returns the envelope at progress p in [0,1]. attack, decay and
// release are fractions of the note.
func adsr(p, attack, decay, sustain, release float64) float64 {
	switch {
	case p < attack:
		return p / attack
	case p < attack+decay:
		return 1 - (p-attack)/decay*(1-sustain)
	case p < 1-release:
		return sustain
	default:
		return sustain * (1 - (p-(1-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

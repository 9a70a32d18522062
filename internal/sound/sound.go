// Package sound plays the game's procedural cues through oto.
package sound

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"fruitsnake/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// Player implements game.Audio. A nil *Player, or one whose device never
// became ready, plays nothing.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	cues   map[game.Cue][]byte
}

// Init opens the output device and renders every cue up front.
func Init(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	return &Player{
		ctx:    ctx,
		ready:  ready,
		volume: clamp(volume, 0, 1),
		cues:   renderCues(),
	}, nil
}

func renderCues() map[game.Cue][]byte {
	return map[game.Cue][]byte{
		game.CueEat:      encodeStereo(genEat()),
		game.CueGameOver: encodeStereo(genGameOver()),
	}
}

// Play starts c on its own oto player and returns immediately.
func (p *Player) Play(c game.Cue) {
	if p == nil || p.ctx == nil {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	data, ok := p.cues[c]
	if !ok || len(data) == 0 {
		log.Printf("sound: no samples for cue %d", c)
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&sampleReader{data: data})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Printf("sound: close player: %v", err)
		}
	}()
}

// sampleReader streams a prerendered cue. Each playback gets its own reader
// so cues can overlap.
type sampleReader struct {
	data []byte
	pos  int
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

package game

import "log"

type Phase int

const (
	PhasePlaying  Phase = iota // snake moves every tick
	PhaseGameOver              // frozen, waiting for restart or quit
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game over"
	}
	return "playing"
}

type GameOverCause int

const (
	CauseNone GameOverCause = iota
	CauseWall
	CauseSelf
	CauseCap // eaten-cap reached; reported through the same terminal phase
)

func (c GameOverCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseCap:
		return "cap"
	}
	return "none"
}

// GameState owns every piece of mutable game data. It is driven from a
// single goroutine, one Update per frame.
type GameState struct {
	Phase    Phase
	Cause    GameOverCause
	Snake    *Snake
	Dir      Direction
	Food     *Food // nil when no food is on the board
	Score    int
	Foods    *FoodManager
	Anim     Animations
	LastMove float64 // time of the last movement tick

	Events *EventBus
}

// NewGameState builds a game in the Playing phase with its first food placed.
func NewGameState(seed uint64, bus *EventBus) *GameState {
	if bus == nil {
		bus = NewEventBus()
	}
	g := &GameState{
		Snake:  NewSnake(CenterCell()),
		Foods:  NewFoodManager(NewRand(seed)),
		Events: bus,
	}
	g.reset()
	return g
}

func (g *GameState) reset() {
	g.Phase = PhasePlaying
	g.Cause = CauseNone
	g.Snake.Reset(CenterCell())
	g.Dir = DirRight
	g.Food = nil
	g.Score = 0
	g.Foods.Reset()
	g.Anim.Reset()
	g.LastMove = 0
	g.spawnFood()
}

// Restart begins a fresh round. It only acts on the game over screen.
func (g *GameState) Restart() bool {
	if g.Phase != PhaseGameOver {
		return false
	}
	g.reset()
	log.Printf("game: restart")
	g.Events.Emit(Event{Type: EventRestart, Pos: g.Snake.Head()})
	return true
}

// Steer changes heading unless d is the exact reverse of the current
// direction. Steering is ignored once the game is over.
func (g *GameState) Steer(d Direction) bool {
	if g.Phase != PhasePlaying || d == g.Dir.Opposite() {
		return false
	}
	g.Dir = d
	return true
}

// Apply feeds one input command to the state machine. It returns false when
// the command ends the session.
func (g *GameState) Apply(cmd Command) bool {
	switch cmd {
	case CmdClose:
		return false
	case CmdQuit:
		return g.Phase != PhaseGameOver
	case CmdRestart:
		g.Restart()
	default:
		if d, ok := cmd.Direction(); ok {
			g.Steer(d)
		}
	}
	return true
}

// Update advances the simulation to now. Movement is gated on elapsed time,
// animations are sampled every call.
func (g *GameState) Update(now float64) {
	switch g.Phase {
	case PhasePlaying:
		if now-g.LastMove > TickInterval {
			g.Tick(now)
			g.LastMove = now
		}
		if g.Phase != PhasePlaying {
			return
		}
		g.Anim.Eat.Update(now)
		// Retry a spawn that found no room earlier.
		if g.Food == nil && !g.Foods.CapReached() {
			g.spawnFood()
		}
	case PhaseGameOver:
		g.Anim.Banner.Step()
		g.Anim.Death.Update(now)
	}
}

// Tick moves the snake exactly one cell.
func (g *GameState) Tick(now float64) {
	if g.Phase != PhasePlaying {
		return
	}
	head := g.Snake.Advance(g.Dir)

	if !head.InBounds() {
		g.gameOver(now, CauseWall)
		return
	}
	// Collision is tested against the pre-move body, tail included, even
	// though the tail is about to vacate its cell. Moving into the tail's
	// current cell is therefore fatal. Keep this ordering: it is part of how
	// the game plays.
	if g.Snake.Contains(head) {
		g.gameOver(now, CauseSelf)
		return
	}

	g.Snake.Grow(head)
	if g.Food == nil || head != g.Food.Pos {
		g.Snake.Shrink()
		return
	}

	eaten := *g.Food
	g.Food = nil
	points := g.Foods.Consume(eaten.Kind)
	g.Score += points
	if g.Foods.CapReached() {
		g.gameOver(now, CauseCap)
		return
	}
	g.Anim.Eat.Trigger(now)
	g.Events.Emit(Event{Type: EventAte, Pos: head, Kind: eaten.Kind, Points: points})
	g.spawnFood()
}

func (g *GameState) gameOver(now float64, cause GameOverCause) {
	g.Phase = PhaseGameOver
	g.Cause = cause
	g.Food = nil
	g.Anim.Death.Trigger(now)
	log.Printf("game: over (%s) score=%d eaten=%d length=%d", cause, g.Score, g.Foods.Eaten, g.Snake.Len())
	g.Events.Emit(Event{Type: EventGameOver, Pos: g.Snake.Head(), Cause: cause})
}

func (g *GameState) spawnFood() {
	if f, ok := g.Foods.Spawn(g.Snake); ok {
		g.Food = &f
	}
}

package game

// Grid and window.
const (
	GridSize     = 20
	WindowWidth  = 800
	WindowHeight = 600
	CellSize     = WindowWidth / GridSize // 40
	FieldSize    = GridSize * CellSize    // playfield edge in field pixels
)

// Simulation timing (seconds of wall-clock time).
const (
	TickInterval = 0.15
	EatenCap     = 50
)

// Food scoring.
const (
	PaperChance = 0.2
	PaperPoints = 20
	FruitPoints = 10
)

// Animation timing.
const (
	EatPulseDuration  = 0.5
	EatPulseMaxScale  = 1.2
	EatPulseMinScale  = 0.8
	DeathFadeDuration = 2.0
	DeathShakeAmp     = 3.0
	DeathShakeFreq    = 10.0
	TailWiggleAmp     = 2.0
	TailWiggleFreq    = 5.0
)

// Game over banner (screen pixels, advanced once per frame).
const (
	BannerStep  = 5.0
	BannerStart = -800.0
	BannerText  = "Game Over! Press Enter to Restart or Q to Quit"
)

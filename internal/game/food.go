package game

import "log"

// FoodKind is the visual and scoring category of a food item.
type FoodKind uint8

const (
	FoodApple FoodKind = iota
	FoodBanana
	FoodStrawberry
	FoodMouse
	FoodPaper

	FoodKindCount = int(FoodPaper) + 1
)

// fruitKinds are drawn uniformly whenever the paper roll fails.
var fruitKinds = [...]FoodKind{FoodApple, FoodBanana, FoodStrawberry, FoodMouse}

func (k FoodKind) String() string {
	switch k {
	case FoodApple:
		return "apple"
	case FoodBanana:
		return "banana"
	case FoodStrawberry:
		return "strawberry"
	case FoodMouse:
		return "mouse"
	case FoodPaper:
		return "paper"
	}
	return "unknown"
}

// Points returns the score awarded for eating k.
func (k FoodKind) Points() int {
	if k == FoodPaper {
		return PaperPoints
	}
	return FruitPoints
}

type Food struct {
	Pos  Cell
	Kind FoodKind
}

// FoodManager places food on free cells and counts what was eaten.
type FoodManager struct {
	Eaten int

	rng  *Rand
	free []Cell // scratch buffer reused by Spawn
}

func NewFoodManager(rng *Rand) *FoodManager {
	return &FoodManager{
		rng:  rng,
		free: make([]Cell, 0, GridSize*GridSize),
	}
}

// Spawn picks a uniformly random cell not covered by the snake. It returns
// false when the snake fills the whole grid.
func (fm *FoodManager) Spawn(s *Snake) (Food, bool) {
	var occupied [GridSize][GridSize]bool
	for _, c := range s.Cells() {
		if c.InBounds() {
			occupied[c.X][c.Y] = true
		}
	}
	fm.free = fm.free[:0]
	for x := 0; x < GridSize; x++ {
		for y := 0; y < GridSize; y++ {
			if !occupied[x][y] {
				fm.free = append(fm.free, Cell{X: x, Y: y})
			}
		}
	}
	if len(fm.free) == 0 {
		log.Printf("food: no free cell left for spawn (snake length %d)", s.Len())
		return Food{}, false
	}
	pos := fm.free[fm.rng.Intn(len(fm.free))]
	return Food{Pos: pos, Kind: fm.pickKind()}, true
}

func (fm *FoodManager) pickKind() FoodKind {
	if fm.rng.Float64() < PaperChance {
		return FoodPaper
	}
	return fruitKinds[fm.rng.Intn(len(fruitKinds))]
}

// Consume records one eaten item and returns its points.
func (fm *FoodManager) Consume(kind FoodKind) int {
	fm.Eaten++
	return kind.Points()
}

// CapReached reports whether the session's eaten-cap has been hit.
func (fm *FoodManager) CapReached() bool {
	return fm.Eaten >= EatenCap
}

// Reset zeroes the eaten counter.
func (fm *FoodManager) Reset() {
	fm.Eaten = 0
}

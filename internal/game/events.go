package game

type EventType int

const (
	EventAte EventType = iota
	EventGameOver
	EventRestart
)

type Event struct {
	Type   EventType
	Pos    Cell
	Kind   FoodKind      // EventAte
	Points int           // EventAte
	Cause  GameOverCause // EventGameOver
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

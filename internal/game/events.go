package game

type EventType int

const (
	EventJump EventType = iota
	EventLand
	EventCrush
	EventBump
	EventPickup
	EventRefuel
	EventStage
	EventHiscore
	EventGameOver
	EventStart
)

type Event struct {
	Type EventType
	X, Y float64
	Data int // Generic payload (e.g. stage number or points).
}

type EventHandler func(Event)

// EventBus fans simulation events out to listeners such as the sound
// player. Handlers run synchronously on the tick goroutine.
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

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventJump; t <= EventStart; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

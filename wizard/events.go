package wizard

// The bus decouples the autosave and readiness listeners from the
// controller: both fire on the same input events, in subscription order,
// and neither may assume the other already ran.
type EventKind int

const (
	FieldChanged EventKind = iota
	ConsentChanged
	StepChanged
	SubmitRequested
)

type Event struct {
	Kind  EventKind
	Field string
	Step  Step
}

type Bus struct {
	handlers []func(Event)
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(fn func(Event)) {
	b.handlers = append(b.handlers, fn)
}

// Publish delivers synchronously on the caller's goroutine.
func (b *Bus) Publish(e Event) {
	for _, fn := range b.handlers {
		fn(e)
	}
}

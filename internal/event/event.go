// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Tick uint64 // тик симуляции, на котором событие произошло
	Data any    // payload из types.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий. Синхронный: Dispatch вызывает
// подписчиков на том же потоке, что и Update.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll — подписка на все события (лента сообщений, тесты).
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// UnsubscribeAll снимает подписку, сделанную через SubscribeAll.
func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	for i, l := range d.all {
		if l == listener {
			d.all = append(d.all[:i], d.all[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
}

// Recorder запоминает полученные события.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnEvent(e Event) {
	r.Events = append(r.Events, e)
}

// OfType — события одного типа в порядке получения.
func (r *Recorder) OfType(t EventType) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Reset очищает запись.
func (r *Recorder) Reset() {
	r.Events = nil
}

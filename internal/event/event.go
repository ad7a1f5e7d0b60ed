// internal/event/event.go
package event

// EventType — тип доменного события
type EventType string

// Event — событие с типизированной полезной нагрузкой из types.go.
// Системы обнаружения (физика, столкновения, жест) только отправляют
// события; экономику в ответ мутирует система сессии.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер: доставка происходит внутри тика,
// в порядке подписки. Подписки живут всё время жизни игры.
type Dispatcher struct {
	listeners map[EventType][]Listener
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

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

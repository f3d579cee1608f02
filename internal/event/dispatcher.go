package event

import "context"

// Event is a trigger with its positional arguments.
type Event struct {
	Trigger Trigger
	Args    []any
}

// New creates an event.
func New(t Trigger, args ...any) Event {
	return Event{Trigger: t, Args: args}
}

// Handler processes a dispatched event.
type Handler func(ctx context.Context, ev Event)

// Broadcaster receives events emitted by the match.
type Broadcaster interface {
	Broadcast(ctx context.Context, ev Event)
}

// BroadcasterFunc adapts a function to Broadcaster.
type BroadcasterFunc func(ctx context.Context, ev Event)

// Broadcast calls f.
func (f BroadcasterFunc) Broadcast(ctx context.Context, ev Event) {
	f(ctx, ev)
}

// Subscription identifies one handler registration.
type Subscription struct {
	trigger Trigger
	id      uint64
}

// Trigger returns the trigger the subscription listens to.
func (s Subscription) Trigger() Trigger {
	return s.trigger
}

type binding struct {
	id      uint64
	handler Handler
}

// Dispatcher routes events to handlers.
//
// Dispatch is synchronous and single-threaded: handlers for a trigger run in
// registration order before Dispatch returns.
type Dispatcher struct {
	handlers map[Trigger][]binding
	nextID   uint64
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Trigger][]binding)}
}

// Subscribe appends h to the handlers of t.
func (d *Dispatcher) Subscribe(t Trigger, h Handler) Subscription {
	d.nextID++
	d.handlers[t] = append(d.handlers[t], binding{id: d.nextID, handler: h})
	return Subscription{trigger: t, id: d.nextID}
}

// SubscribeAll registers every handler in bindings, trigger by trigger in
// declaration order.
func (d *Dispatcher) SubscribeAll(bindings map[Trigger][]Handler) []Subscription {
	var subs []Subscription
	for _, t := range Triggers() {
		for _, h := range bindings[t] {
			subs = append(subs, d.Subscribe(t, h))
		}
	}
	return subs
}

// Unsubscribe removes a single registration. Other handlers on the same
// trigger are kept in order. Unknown subscriptions are ignored.
func (d *Dispatcher) Unsubscribe(s Subscription) {
	bindings := d.handlers[s.trigger]
	for i, b := range bindings {
		if b.id == s.id {
			d.handlers[s.trigger] = append(bindings[:i:i], bindings[i+1:]...)
			return
		}
	}
}

// Dispatch invokes every handler registered for ev.Trigger.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	// Copy so handlers may subscribe or unsubscribe while running.
	bindings := append([]binding(nil), d.handlers[ev.Trigger]...)
	for _, b := range bindings {
		b.handler(ctx, ev)
	}
}

// Broadcast dispatches ev, letting a Dispatcher act as a match broadcaster.
func (d *Dispatcher) Broadcast(ctx context.Context, ev Event) {
	d.Dispatch(ctx, ev)
}

// HandlerCount returns the number of handlers registered for t.
func (d *Dispatcher) HandlerCount(t Trigger) int {
	return len(d.handlers[t])
}

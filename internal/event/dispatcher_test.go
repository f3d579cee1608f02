package event

import (
	"context"
	"reflect"
	"testing"
)

func TestDispatchAndUnsubscribe(t *testing.T) {
	ctx := context.Background()
	d := NewDispatcher()

	var got []any
	collect := func(_ context.Context, ev Event) {
		got = append(got, ev.Args[0])
	}
	var other []any
	keep := func(_ context.Context, ev Event) {
		other = append(other, ev.Args[0])
	}

	sub := d.Subscribe(TriggerRequestPlayerMove, collect)
	d.Subscribe(TriggerRequestPlayerMove, keep)
	if sub.Trigger() != TriggerRequestPlayerMove {
		t.Errorf("Subscription.Trigger() = %v, want %v", sub.Trigger(), TriggerRequestPlayerMove)
	}

	d.Dispatch(ctx, New(TriggerRequestPlayerMove, 1))
	d.Dispatch(ctx, New(TriggerRequestPlayerMove, 2))

	if want := []any{1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("handler received %v, want %v", got, want)
	}

	d.Unsubscribe(sub)
	d.Dispatch(ctx, New(TriggerRequestPlayerMove, 3))

	if want := []any{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("unsubscribed handler received %v, want %v", got, want)
	}
	if want := []any{1, 2, 3}; !reflect.DeepEqual(other, want) {
		t.Errorf("remaining handler received %v, want %v", other, want)
	}
	if n := d.HandlerCount(TriggerRequestPlayerMove); n != 1 {
		t.Errorf("HandlerCount() = %d, want 1", n)
	}

	// Removing twice is harmless.
	d.Unsubscribe(sub)
	if n := d.HandlerCount(TriggerRequestPlayerMove); n != 1 {
		t.Errorf("HandlerCount() after double unsubscribe = %d, want 1", n)
	}
}

func TestDispatchOrder(t *testing.T) {
	d := NewDispatcher()

	var order []string
	record := func(name string) Handler {
		return func(context.Context, Event) { order = append(order, name) }
	}

	d.SubscribeAll(map[Trigger][]Handler{
		TriggerRequestEndTurn: {record("a"), record("b")},
	})
	d.Subscribe(TriggerRequestEndTurn, record("c"))
	d.Subscribe(TriggerRequestCursorMove, record("ignored"))

	d.Broadcast(context.Background(), New(TriggerRequestEndTurn))

	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(order, want) {
		t.Errorf("dispatch order = %v, want %v", order, want)
	}
}

func TestTriggerNames(t *testing.T) {
	for _, tr := range Triggers() {
		name := tr.String()
		if name == "unknown" || name == "" {
			t.Errorf("Trigger(%d) has no name", tr)
			continue
		}
		parsed, ok := ParseTrigger(name)
		if !ok || parsed != tr {
			t.Errorf("ParseTrigger(%q) = %v, %v; want %v", name, parsed, ok, tr)
		}
	}

	if _, ok := ParseTrigger("no_such_trigger"); ok {
		t.Error("ParseTrigger() accepted an unknown name")
	}
	if got := Trigger(-1).String(); got != "unknown" {
		t.Errorf("Trigger(-1).String() = %q, want unknown", got)
	}
}

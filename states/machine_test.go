package states

import (
	"reflect"
	"testing"
)

type phase int

const (
	idle phase = iota
	loading
	loaded
	ready
)

func TestApplyWithoutPendingIsNoop(t *testing.T) {
	m := NewMachine(idle)
	if m.Apply() {
		t.Fatal("Apply changed state without a queued transition")
	}
	if m.Current() != idle {
		t.Fatalf("got %v, want idle", m.Current())
	}
}

func TestTransitionVisibleAfterApply(t *testing.T) {
	m := NewMachine(idle)
	m.Set(loading)
	if m.Current() != idle {
		t.Fatal("Set must not change the current state before Apply")
	}
	if !m.Apply() {
		t.Fatal("Apply did not report a change")
	}
	if m.Current() != loading {
		t.Fatalf("got %v, want loading", m.Current())
	}
	if _, ok := m.Pending(); ok {
		t.Fatal("transition still pending after Apply")
	}
}

func TestHooksRunExitThenEnter(t *testing.T) {
	var calls []string
	m := NewMachine(idle)
	m.OnExit(idle, func(phase) { calls = append(calls, "exit idle") })
	m.OnEnter(loading, func(phase) { calls = append(calls, "enter loading") })
	m.OnEnter(loading, func(phase) { calls = append(calls, "enter loading 2") })
	m.OnEnter(loaded, func(phase) { calls = append(calls, "enter loaded") })

	m.Set(loading)
	m.Apply()

	want := []string{"exit idle", "enter loading", "enter loading 2"}
	if !reflect.DeepEqual(calls, want) {
		t.Fatalf("got %v, want %v", calls, want)
	}
}

func TestSameStateIsNoop(t *testing.T) {
	entered := 0
	m := NewMachine(loading)
	m.OnEnter(loading, func(phase) { entered++ })
	m.OnExit(loading, func(phase) { entered-- })

	m.Set(loading)
	if m.Apply() {
		t.Fatal("re-entering the current state reported a change")
	}
	if entered != 0 {
		t.Fatalf("hooks ran %d times for a same-state transition", entered)
	}
}

func TestLastSetWins(t *testing.T) {
	m := NewMachine(idle)
	m.Set(loading)
	m.Set(ready)
	m.Apply()
	if m.Current() != ready {
		t.Fatalf("got %v, want ready", m.Current())
	}
}

func TestHookQueuesFollowUp(t *testing.T) {
	m := NewMachine(idle)
	m.OnEnter(loading, func(phase) { m.Set(loaded) })

	m.Set(loading)
	m.Apply()
	if m.Current() != loading {
		t.Fatalf("got %v, want loading", m.Current())
	}
	if next, ok := m.Pending(); !ok || next != loaded {
		t.Fatalf("pending = %v, %v; want loaded, true", next, ok)
	}
	m.Apply()
	if m.Current() != loaded {
		t.Fatalf("got %v, want loaded", m.Current())
	}
}

func TestReset(t *testing.T) {
	entered := false
	m := NewMachine(idle)
	m.OnEnter(ready, func(phase) { entered = true })
	m.Set(loading)
	m.Reset(ready)
	if m.Current() != ready || entered {
		t.Fatal("Reset must switch state without hooks")
	}
	if m.Apply() {
		t.Fatal("Reset must drop the queued transition")
	}
}

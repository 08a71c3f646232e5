package ecs

import "testing"

type recordingSystem struct {
	name  string
	order *[]string
}

func (r *recordingSystem) Update(_ *World) {
	*r.order = append(*r.order, r.name)
}

func TestSchedulerRunsInRegistrationOrder(t *testing.T) {
	var order []string
	s := NewScheduler(
		&recordingSystem{name: "a", order: &order},
		&recordingSystem{name: "b", order: &order},
	)
	s.Add(&recordingSystem{name: "c", order: &order})
	s.Add(nil)

	w := NewWorld()
	s.Update(w)
	s.Update(w)

	want := []string{"a", "b", "c", "a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("expected %d updates, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("update %d: expected %q, got %q", i, want[i], order[i])
		}
	}
}

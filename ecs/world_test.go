package ecs

import (
	"testing"

	"github.com/milk9111/soundscape/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestEntityGenerationReuse(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	if !DestroyEntity(w, first) {
		t.Fatalf("destroy should succeed")
	}
	second := CreateEntity(w)
	if first == second {
		t.Fatalf("recycled slot should carry a new generation")
	}
	if IsAlive(w, first) {
		t.Fatalf("stale handle should be dead")
	}
	if !IsAlive(w, second) {
		t.Fatalf("new handle should be alive")
	}
	if DestroyEntity(w, first) {
		t.Fatalf("destroying a stale handle should be a no-op")
	}
	if !IsAlive(w, second) {
		t.Fatalf("stale destroy must not kill the recycled entity")
	}
}

func TestComponentTable(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				v, _ := Get(w, e2, h2.Kind())
				if *v != "b" {
					t.Fatalf("expected %q, got %q", "b", *v)
				}
			},
			teardown: func() bool {
				return Remove(w, e1, h2.Kind()) && Remove(w, e2, h2.Kind())
			},
		},
		{
			name:  "overwrite_value",
			setup: func() error { _ = Add(w, e1, h1.Kind(), intPtr(1)); return Add(w, e1, h1.Kind(), intPtr(2)) },
			check: func(t *testing.T) {
				v, _ := Get(w, e1, h1.Kind())
				if *v != 2 {
					t.Fatalf("expected overwrite to 2, got %d", *v)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown remove failed")
			}
		})
	}
}

func TestAddComponentErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	dead := CreateEntity(w)
	DestroyEntity(w, dead)

	if err := Add(w, dead, h.Kind(), intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	alive := CreateEntity(w)
	if err := Add(w, alive, h.Kind(), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(7)); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, e)

	recycled := CreateEntity(w)
	if Has(w, recycled, h.Kind()) {
		t.Fatalf("recycled slot must not inherit components")
	}
}

func TestForEachAndFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	if _, ok := First(w, h.Kind()); ok {
		t.Fatalf("First on empty table should report false")
	}

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	_ = Add(w, e1, h.Kind(), intPtr(1))
	_ = Add(w, e2, h.Kind(), intPtr(2))
	_ = Add(w, e3, h.Kind(), intPtr(3))

	seen := map[Entity]int{}
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		seen[e] = *v
	})
	if len(seen) != 3 || seen[e2] != 2 {
		t.Fatalf("unexpected visit set: %v", seen)
	}

	if _, ok := First(w, h.Kind()); !ok {
		t.Fatalf("First should find an entity")
	}
}

func TestForEachAllowsMutation(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	ents := make([]Entity, 0, 4)
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, h.Kind(), intPtr(i))
		ents = append(ents, e)
	}

	visits := 0
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		visits++
		Remove(w, e, h.Kind())
	})
	if visits != 4 {
		t.Fatalf("expected 4 visits, got %d", visits)
	}
	for _, e := range ents {
		if Has(w, e, h.Kind()) {
			t.Fatalf("component should be removed from %v", e)
		}
	}
}

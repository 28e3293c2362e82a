package ecs

import (
	"testing"

	"github.com/milk9111/pondshot/ecs/component"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[int]()

	cases := []struct {
		name   string
		ids    []int
		remove int // -1 = none
	}{
		{"single", []int{1}, -1},
		{"remove_middle", []int{1, 2, 3}, 2},
		{"remove_last", []int{4, 7}, 7},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewStore[int]()
			for _, id := range c.ids {
				v := id * 10
				s.Set(id, &v)
			}
			if s.Len() != len(c.ids) {
				t.Fatalf("len=%d, want %d", s.Len(), len(c.ids))
			}
			if c.remove >= 0 {
				if !s.Remove(c.remove) {
					t.Fatal("remove of present id must succeed")
				}
				if s.Has(c.remove) {
					t.Fatal("removed id must not remain")
				}
				if s.Len() != len(c.ids)-1 {
					t.Fatalf("len=%d after remove", s.Len())
				}
			}
			for _, id := range c.ids {
				if id == c.remove {
					continue
				}
				got := s.Get(id)
				if got == nil || *got != id*10 {
					t.Fatalf("Get(%d)=%v, want %d", id, got, id*10)
				}
			}
		})
	}

	if s.Remove(99) {
		t.Fatal("remove of absent id must report false")
	}
	if s.Get(0) != nil {
		t.Fatal("id 0 is never stored")
	}
}

func TestStorePointersStayValid(t *testing.T) {
	s := NewStore[int]()
	v1 := 1
	s.Set(1, &v1)
	p := s.Get(1)

	// Grow the store past the initial backing array.
	for i := 2; i <= 64; i++ {
		v := i
		s.Set(i, &v)
	}

	*p = 42
	if got := s.Get(1); got == nil || *got != 42 {
		t.Fatalf("pointer must stay valid across growth, got %v", got)
	}
}

func TestStoreOverwrite(t *testing.T) {
	s := NewStore[string]()
	a, b := "a", "b"
	s.Set(3, &a)
	s.Set(3, &b)
	if s.Len() != 1 {
		t.Fatalf("len=%d after overwrite, want 1", s.Len())
	}
	if got := s.Get(3); got == nil || *got != "b" {
		t.Fatalf("Get=%v, want b", got)
	}
}

func TestEntityStoreRecycle(t *testing.T) {
	var s entityStore

	e1 := s.create()
	e2 := s.create()
	if e1.ID == e2.ID {
		t.Fatal("distinct entities must get distinct ids")
	}
	if !s.isAlive(e1.ID) || !s.matches(e1) {
		t.Fatal("created entity must be alive")
	}

	if !s.destroy(e1.ID) {
		t.Fatal("destroy of live entity must succeed")
	}
	if s.isAlive(e1.ID) || s.matches(e1) {
		t.Fatal("destroyed entity must be dead")
	}
	if s.destroy(e1.ID) {
		t.Fatal("double destroy must report false")
	}

	// Recycled id comes back with a bumped generation.
	e3 := s.create()
	if e3.ID != e1.ID {
		t.Fatalf("id=%d, want recycled %d", e3.ID, e1.ID)
	}
	if e3.Gen == e1.Gen {
		t.Fatal("recycled entity must get a new generation")
	}
	if s.matches(e1) {
		t.Fatal("stale handle must not match the recycled entity")
	}
	if !s.matches(e3) {
		t.Fatal("fresh handle must match")
	}
}

func TestWorldDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	w.Transforms.Set(e.ID, &component.Transform{X: 1, Y: 2})
	w.Bullets.Set(e.ID, &component.Bullet{Damage: 3})

	w.DestroyEntity(e.ID)
	if w.IsAlive(e.ID) {
		t.Fatal("destroyed entity must be dead")
	}
	if w.Transforms.Has(e.ID) || w.Bullets.Has(e.ID) {
		t.Fatal("destroy must remove all components")
	}

	w.DestroyEntity(e.ID) // second destroy is a no-op
}

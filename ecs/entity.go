package ecs

import "strconv"

// Entity is a generational handle. A destroyed entity's ID is recycled with a
// bumped generation so stale handles stop matching.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + "." + strconv.Itoa(e.Gen)
}

// entityStore tracks entity generations and free ids.
type entityStore struct {
	nextID int
	gen    []int
	alive  []bool
	free   []int
}

func (s *entityStore) create() Entity {
	var id int
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
	}
	s.alive[id-1] = true
	return Entity{ID: id, Gen: s.gen[id-1]}
}

func (s *entityStore) destroy(id int) bool {
	if id <= 0 || id > len(s.gen) || !s.alive[id-1] {
		return false
	}
	s.gen[id-1]++
	s.alive[id-1] = false
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(id int) bool {
	return id > 0 && id <= len(s.alive) && s.alive[id-1]
}

// matches reports whether a handle still refers to a live entity.
func (s *entityStore) matches(e Entity) bool {
	return s.isAlive(e.ID) && s.gen[e.ID-1] == e.Gen
}

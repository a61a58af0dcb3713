package ecs

// entityStore is the generational arena behind World. IDs start at 1 and are
// reused from a free list; every reuse bumps the slot's generation so stale
// handles miss.
type entityStore struct {
	nextID int
	gen    []int
	free   []int
}

func (s *entityStore) create() Entity {
	if s == nil {
		return Entity{}
	}
	var id int
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.nextID++
		id = s.nextID
	}
	for id > len(s.gen) {
		s.gen = append(s.gen, 0)
	}
	return Entity{ID: id, Gen: s.gen[id-1]}
}

func (s *entityStore) destroy(e Entity) {
	if s == nil || e.ID <= 0 || e.ID > len(s.gen) {
		return
	}
	if s.gen[e.ID-1] != e.Gen {
		return
	}
	s.gen[e.ID-1]++
	s.free = append(s.free, e.ID)
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	return s.gen[e.ID-1] == e.Gen
}

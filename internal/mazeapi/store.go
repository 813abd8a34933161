package mazeapi

import (
	"sync"

	"github.com/google/uuid"

	"mazerunner/internal/maze"
)

// DefaultStoreSize bounds how many generated mazes are kept for lookup.
const DefaultStoreSize = 256

type entry struct {
	grid       *maze.Grid
	difficulty string
}

// Store keeps recently generated mazes by ID. The oldest entry is evicted
// once the store is full.
type Store struct {
	mu    sync.Mutex
	max   int
	items map[uuid.UUID]entry
	order []uuid.UUID
}

func NewStore(max int) *Store {
	if max <= 0 {
		max = DefaultStoreSize
	}
	return &Store{max: max, items: make(map[uuid.UUID]entry, max)}
}

// Put stores g under a new ID and returns it.
func (s *Store) Put(g *maze.Grid, difficulty string) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.order) >= s.max {
		delete(s.items, s.order[0])
		s.order = s.order[1:]
	}
	s.items[id] = entry{grid: g, difficulty: difficulty}
	s.order = append(s.order, id)
	return id
}

func (s *Store) Get(id uuid.UUID) (*maze.Grid, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	return e.grid, e.difficulty, ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

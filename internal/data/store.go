package data

// Store holds the loaded dataset for the session. It is never mutated
// after construction.
type Store struct {
	ds    *Dataset
	index map[string]int
}

// NewStore wraps ds. A nil dataset yields an empty store.
func NewStore(ds *Dataset) *Store {
	if ds == nil {
		ds = &Dataset{}
	}
	s := &Store{ds: ds, index: make(map[string]int, len(ds.Sectors))}
	for i := range ds.Sectors {
		if _, dup := s.index[ds.Sectors[i].ID]; !dup {
			s.index[ds.Sectors[i].ID] = i
		}
	}
	return s
}

func (s *Store) Sectors() []Sector {
	return s.ds.Sectors
}

// Sector returns the first sector with the given ID.
func (s *Store) Sector(id string) (*Sector, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.ds.Sectors[i], true
}

func (s *Store) Blueprints() Blueprints {
	return s.ds.Blueprints
}

package memory

func (s *Store) RowLockCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

package snapshot

import "time"

// SetClock replaces the clock used for header timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

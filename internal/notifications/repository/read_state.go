package repository

import "sync"

// ReadState remembers which notifications have been read. The zero value
// is ready to use.
type ReadState struct {
	mu   sync.RWMutex
	read map[string]struct{}
}

func (s *ReadState) IsRead(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.read[id]
	return ok
}

// MarkAsRead reports whether id was previously unread.
func (s *ReadState) MarkAsRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.read == nil {
		s.read = make(map[string]struct{})
	}
	if _, ok := s.read[id]; ok {
		return false
	}
	s.read[id] = struct{}{}
	return true
}

// MarkAllAsRead marks every id and returns how many were unread.
func (s *ReadState) MarkAllAsRead(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.read == nil {
		s.read = make(map[string]struct{}, len(ids))
	}
	changed := 0
	for _, id := range ids {
		if _, ok := s.read[id]; !ok {
			s.read[id] = struct{}{}
			changed++
		}
	}
	return changed
}

// UnreadCount counts the ids not yet read.
func (s *ReadState) UnreadCount(ids []string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, id := range ids {
		if _, ok := s.read[id]; !ok {
			n++
		}
	}
	return n
}

package problemgen

// keySet records the normalized expressions already accepted.
type keySet map[string]struct{}

func newKeySet(capacity int) keySet {
	return make(keySet, capacity)
}

// add records key and reports whether it was new.
func (s keySet) add(key string) bool {
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = struct{}{}
	return true
}

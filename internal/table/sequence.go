package table

// Sequence is a table's identity high-water mark.
//
// Next always returns a value greater than every identity the table has ever
// held, so ids are never reused after a delete. Observe raises the mark when
// rows arrive with explicit ids (seeding, updates).
//
// Not safe for concurrent use; the store is single-threaded.
type Sequence struct {
	last int64
}

// Observe records an identity that is now in use.
func (s *Sequence) Observe(id int64) {
	if id > s.last {
		s.last = id
	}
}

// Next returns the next identity and advances the mark.
func (s *Sequence) Next() int64 {
	s.last++
	return s.last
}

// Current returns the highest identity handed out or observed.
func (s *Sequence) Current() int64 {
	return s.last
}

// Reset restarts numbering. The next call to Next returns 1.
func (s *Sequence) Reset() {
	s.last = 0
}

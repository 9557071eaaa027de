package tiles

// Shares records how large a share of space each child of a linear
// container gets along the split axis.
//
// Shares are relative weights, not absolute sizes: shares of 1, 2, 3 mean
// the first child gets 1/6 of the space, the second 2/6, and the third 3/6.
// Children without an explicit entry default to 1, which keeps newly added
// splits near-equal while preserving any customized weights verbatim.
// Shares for currently invisible children are retained.
type Shares struct {
	shares map[TileID]float64
}

// Get returns the share for the given child, defaulting to 1.
func (s *Shares) Get(id TileID) float64 {
	if s.shares == nil {
		return 1
	}
	if share, ok := s.shares[id]; ok {
		return share
	}
	return 1
}

// Set assigns an explicit share to a child.
// Non-positive values are rejected with [ErrInvalidShare].
func (s *Shares) Set(id TileID, share float64) error {
	if !(share > 0) {
		return ErrInvalidShare
	}
	s.set(id, share)
	return nil
}

// set stores a share without validation. Internal resize arithmetic may
// temporarily drive a share to zero, which Split tolerates.
func (s *Shares) set(id TileID, share float64) {
	if s.shares == nil {
		s.shares = make(map[TileID]float64)
	}
	s.shares[id] = share
}

// Delete drops the stored share for a departed child.
func (s *Shares) Delete(id TileID) {
	delete(s.shares, id)
}

// Replace transfers the stored share of a pruned child to its replacement.
// If the old child had no explicit entry the replacement inherits the
// default, so nothing is stored.
func (s *Shares) Replace(old, new TileID) {
	if share, ok := s.shares[old]; ok {
		delete(s.shares, old)
		s.set(new, share)
	}
}

// Retain keeps only the entries for which keep returns true.
func (s *Shares) Retain(keep func(TileID) bool) {
	for id := range s.shares {
		if !keep(id) {
			delete(s.shares, id)
		}
	}
}

// Split apportions the available length among the given children in order:
// each child receives available * share/total. A zero total (possible after
// extreme resizing) falls back to an equal split.
func (s *Shares) Split(children []TileID, available float64) []float64 {
	total := 0.0
	for _, child := range children {
		total += s.Get(child)
	}
	sizes := make([]float64, len(children))
	if total == 0 {
		for i := range sizes {
			sizes[i] = available / float64(len(children))
		}
		return sizes
	}
	for i, child := range children {
		sizes[i] = available * s.Get(child) / total
	}
	return sizes
}

// Each visits every explicitly stored share. Children on the implicit
// default of 1 are not visited.
func (s *Shares) Each(fn func(id TileID, share float64)) {
	for id, share := range s.shares {
		fn(id, share)
	}
}

package tiling

// seqSource replays fixed draws, cycling when it runs out.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Next() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

package tiling

// Source is the single random stream a generation draws from.
// Next returns a value in [0,1).
type Source interface {
	Next() float64
}

// intn maps the next draw onto 0..n-1.
func intn(src Source, n int) int {
	i := int(src.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

package gosiemesh

// fanTriangles returns the corner triples of a fan over an n-sided polygon:
// (0, i, i+1) for i in [1, n-2].
func fanTriangles(n int) [][3]int {
	if n < 3 {
		return nil
	}
	tris := make([][3]int, 0, n-2)
	for i := 1; i < n-1; i++ {
		tris = append(tris, [3]int{0, i, i + 1})
	}
	return tris
}

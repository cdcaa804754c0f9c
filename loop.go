package cityplan

// EdgeLoop is a polygon annotated with a per-vertex elevation ("rise").
// Roof construction produces one loop per layer; the renderer builds strip
// meshes between consecutive loops. Points and Rise are always the same
// length; the constructors enforce this.
type EdgeLoop struct {
	Points Polygon
	Rise   []float64
}

// FlatLoop creates an EdgeLoop with the same rise at every vertex.
func FlatLoop(p Polygon, rise float64) EdgeLoop {
	r := make([]float64, len(p))
	for i := range r {
		r[i] = rise
	}
	return EdgeLoop{Points: p.Clone(), Rise: r}
}

// Len returns the number of vertices in the loop.
func (l EdgeLoop) Len() int {
	return len(l.Points)
}

// At returns the i-th vertex and its rise.
func (l EdgeLoop) At(i int) (Point, float64) {
	return l.Points[i], l.Rise[i]
}

// MaxRise returns the highest vertex elevation in the loop.
func (l EdgeLoop) MaxRise() float64 {
	var max float64
	for i, r := range l.Rise {
		if i == 0 || r > max {
			max = r
		}
	}
	return max
}

package field

// ConnectDistanceSq is the squared distance under which two particles are
// joined, roughly 158px.
const ConnectDistanceSq = 25000.0

// Opacity returns the stroke opacity for a pair at squared distance d2.
func Opacity(d2 float64) float64 {
	return 1 - d2/ConnectDistanceSq
}

func distanceSq(a, b Particle) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// connect strokes every pair a <= b closer than the threshold and returns the
// number of segments drawn. The a == b pair is kept and draws a zero-length
// segment at full opacity.
func connect(ps []Particle, s Surface) int {
	n := 0
	for a := 0; a < len(ps); a++ {
		for b := a; b < len(ps); b++ {
			d2 := distanceSq(ps[a], ps[b])
			if d2 < ConnectDistanceSq {
				s.StrokeLine(ps[a].X, ps[a].Y, ps[b].X, ps[b].Y, LineWidth, WithOpacity(LineColor, Opacity(d2)))
				n++
			}
		}
	}
	return n
}

package transition

import "math"

// NormalizeDuration scales base so an angled sweep appears to move at
// the same speed regardless of the angle drawn. A sweep front travelling
// at angle theta from the horizontal crosses
// width*|cos(theta)| + height*|sin(theta)| pixels, which is shortest
// along an axis and longest along the diagonal; the duration is scaled
// by diagonal/distance to compensate.
func NormalizeDuration(base float64, width, height int, angleDegrees float64) float64 {
	w := float64(width)
	h := float64(height)

	theta := angleDegrees * math.Pi / 180
	distance := w*math.Abs(math.Cos(theta)) + h*math.Abs(math.Sin(theta))
	diagonal := math.Sqrt(w*w + h*h)
	return base * diagonal / distance
}

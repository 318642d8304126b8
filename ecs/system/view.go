package system

// View maps y-up world units to screen pixels.
type View struct {
	Scale  float64
	Height float64
}

func (v View) ToScreen(x, y float64) (float64, float64) {
	return x * v.Scale, v.Height - y*v.Scale
}

func (v View) Length(l float64) float64 {
	return l * v.Scale
}

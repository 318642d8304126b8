package component

// Transform is the world-space pose of an entity. Y points up; ScaleX carries
// the facing of a character (-1 when flipped).
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()

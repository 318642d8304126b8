package component

// CollisionLayer declares the collision category of a shape and the categories
// it collides with. Zero Category means LayerGround; zero Mask means all.
type CollisionLayer struct {
	Category uint `yaml:"category,omitempty"`
	Mask     uint `yaml:"mask,omitempty"`
}

const (
	LayerGround uint = 1 << iota
	LayerCharacter
)

var CollisionLayerComponent = NewComponent[CollisionLayer]()

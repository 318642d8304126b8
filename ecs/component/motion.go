package component

import "github.com/milk9111/platformer/motion"

// CharacterMotion binds a motion controller to an entity. Controller is built
// lazily by the motion system once the physics body exists, and dropped
// whenever Config is replaced. Standing is the spawn collider; it is captured
// on first bind when left zero.
type CharacterMotion struct {
	Config     motion.Config
	Standing   motion.Collider
	Controller *motion.Controller
	State      motion.State
}

var CharacterMotionComponent = NewComponent[CharacterMotion]()

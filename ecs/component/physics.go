package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/motion"
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Collider is the box currently attached to Body; the physics system swaps it
// when a character changes posture.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Collider motion.Collider
	Mass     float64
	Friction float64
	Static   bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

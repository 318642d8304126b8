package component

// MotionInput is the latched intent for one character. JumpPressed is set on
// a press and stays set until the motion system consumes it; Winding follows
// the held state of the button.
type MotionInput struct {
	MoveX       float64
	Crouch      bool
	JumpPressed bool
	Winding     bool
}

var MotionInputComponent = NewComponent[MotionInput]()

package component

// AnimatorParams is the named parameter table an animation state machine reads.
// It satisfies motion.AnimationSink.
type AnimatorParams struct {
	Bools  map[string]bool
	Floats map[string]float64
}

func NewAnimatorParams() *AnimatorParams {
	return &AnimatorParams{Bools: map[string]bool{}, Floats: map[string]float64{}}
}

func (p *AnimatorParams) SetBool(name string, v bool) {
	if p.Bools == nil {
		p.Bools = map[string]bool{}
	}
	p.Bools[name] = v
}

func (p *AnimatorParams) SetFloat(name string, v float64) {
	if p.Floats == nil {
		p.Floats = map[string]float64{}
	}
	p.Floats[name] = v
}

var AnimatorParamsComponent = NewComponent[AnimatorParams]()

type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
}

// Animation is the clip player driven by AnimatorParams.
type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer float64
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()

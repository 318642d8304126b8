package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// SolidTag marks static level geometry.
type SolidTag struct{}

var SolidTagComponent = NewComponent[SolidTag]()

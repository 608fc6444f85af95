package component

import "github.com/milk9111/locomotion/locomotion"

// Locomotion owns an entity's controller and the entities it toggles.
type Locomotion struct {
	Controller  *locomotion.Controller
	Activations []*Activation
}

var LocomotionComponent = NewComponent[Locomotion]()

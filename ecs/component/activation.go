package component

// Activation is a named on/off switch for an entity that should only run
// while its owner is alive (weapon, crosshair, HUD).
type Activation struct {
	Name    string
	Active  bool
	Changes int
}

func (a *Activation) SetActive(active bool) {
	if a == nil {
		return
	}
	if a.Active != active {
		a.Changes++
	}
	a.Active = active
}

var ActivationComponent = NewComponent[Activation]()

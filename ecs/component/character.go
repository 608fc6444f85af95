package component

import "github.com/milk9111/locomotion/physics"

// Character holds the collision body locomotion moves.
type Character struct {
	Body *physics.CharacterBody
}

var CharacterComponent = NewComponent[Character]()

package component

import "github.com/milk9111/locomotion/locomotion"

// Input stores per-frame input state for an entity.
type Input struct {
	MoveX  float64
	MoveZ  float64
	LookX  float64
	Jump   bool
	Sprint bool
	Revive bool
}

// Snapshot exposes the input to a locomotion controller.
func (i *Input) Snapshot() locomotion.InputSnapshot {
	if i == nil {
		return locomotion.InputSnapshot{}
	}
	return locomotion.InputSnapshot{
		MoveX:  i.MoveX,
		MoveZ:  i.MoveZ,
		LookX:  i.LookX,
		Jump:   i.Jump,
		Sprint: i.Sprint,
	}
}

var InputComponent = NewComponent[Input]()

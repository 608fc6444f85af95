package component

import "github.com/milk9111/locomotion/common"

// Transform stores world position and orientation in degrees. Locomotion
// only ever writes Heading; Pitch and Roll belong to whoever set them.
type Transform struct {
	Position common.Vec3
	Heading  float64
	Pitch    float64
	Roll     float64
}

func (t *Transform) Yaw() float64 {
	if t == nil {
		return 0
	}
	return t.Heading
}

func (t *Transform) SetYaw(deg float64) {
	if t == nil {
		return
	}
	t.Heading = deg
}

var TransformComponent = NewComponent[Transform]()

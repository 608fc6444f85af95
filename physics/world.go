package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/locomotion/levels"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeHazard
	collisionTypePlatform
)

const (
	categoryWall uint = 1 << iota
	categoryHazard
	categoryPlatform
)

var (
	solidFilter  = cp.NewShapeFilter(cp.NO_GROUP, categoryWall|categoryPlatform, categoryWall|categoryPlatform)
	hazardFilter = cp.NewShapeFilter(cp.NO_GROUP, categoryHazard, categoryHazard)
)

// World owns the Chipmunk space holding a level's static geometry. The
// ground plane maps to Chipmunk's 2D plane as (X, Z); height is tracked
// separately through the level floor and platform tops.
type World struct {
	level *levels.Level
	space *cp.Space

	platforms      []levels.Platform
	platformShapes map[*cp.Shape]levels.Platform
	hazards        map[*cp.Shape]levels.Hazard
}

// NewWorld builds static shapes for every wall and hazard in level.
func NewWorld(level *levels.Level) *World {
	space := cp.NewSpace()
	space.Iterations = 20

	w := &World{
		level:          level,
		space:          space,
		platformShapes: make(map[*cp.Shape]levels.Platform),
		hazards:        make(map[*cp.Shape]levels.Hazard),
	}
	w.buildStaticShapes()
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Level returns the level the world was built from.
func (w *World) Level() *levels.Level {
	if w == nil {
		return nil
	}
	return w.level
}

func (w *World) buildStaticShapes() {
	if w.level == nil {
		return
	}
	for _, wall := range w.level.Walls {
		shape := cp.NewBox2(w.space.StaticBody, rectBB(wall), 0)
		shape.SetCollisionType(collisionTypeWall)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryWall, cp.ALL_CATEGORIES))
		w.space.AddShape(shape)
	}
	for _, hz := range w.level.Hazards {
		shape := cp.NewBox2(w.space.StaticBody, rectBB(hz.Rect), 0)
		shape.SetCollisionType(collisionTypeHazard)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryHazard, cp.ALL_CATEGORIES))
		w.space.AddShape(shape)
		w.hazards[shape] = hz
	}
	for _, p := range w.level.Platforms {
		shape := cp.NewBox2(w.space.StaticBody, rectBB(p.Rect), 0)
		shape.SetCollisionType(collisionTypePlatform)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryPlatform, cp.ALL_CATEGORIES))
		w.space.AddShape(shape)
		w.platformShapes[shape] = p
	}
	w.platforms = append(w.platforms, w.level.Platforms...)
}

// SupportHeight returns the highest surface under (x, z) that a body at
// height y can stand on after stepping up at most step units.
func (w *World) SupportHeight(x, z, y, step float64) float64 {
	if w == nil || w.level == nil {
		return 0
	}
	best := w.level.Floor
	for _, p := range w.platforms {
		if p.Top > best && p.Top <= y+step && p.Contains(x, z) {
			best = p.Top
		}
	}
	return best
}

// solid reports whether shape stops a body at height y. Walls always do;
// platforms only when their top is out of step reach.
func (w *World) solid(shape *cp.Shape, y, step float64) bool {
	if p, ok := w.platformShapes[shape]; ok {
		return p.Top > y+step
	}
	return shape != nil
}

// Sweep casts a circle of radius r from pos along delta and returns the
// earliest solid hit for a body at height y.
func (w *World) Sweep(pos, delta cp.Vector, r, y, step float64) (cp.SegmentQueryInfo, bool) {
	best := cp.SegmentQueryInfo{Alpha: 1}
	if w == nil || w.space == nil {
		return best, false
	}
	w.space.SegmentQuery(pos, pos.Add(delta), r, solidFilter, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
		if alpha < best.Alpha && w.solid(shape, y, step) {
			best = cp.SegmentQueryInfo{Shape: shape, Point: point, Normal: normal, Alpha: alpha}
		}
	}, nil)
	return best, best.Shape != nil
}

// Contacts returns the outward normals of solid shapes the circle at pos
// already overlaps.
func (w *World) Contacts(pos cp.Vector, r, y, step float64) []cp.Vector {
	if w == nil || w.space == nil {
		return nil
	}
	var normals []cp.Vector
	w.space.BBQuery(cp.NewBBForCircle(pos, r), solidFilter, func(shape *cp.Shape, _ interface{}) {
		if !w.solid(shape, y, step) {
			return
		}
		info := shape.PointQuery(pos)
		if info.Distance < r {
			normals = append(normals, info.Gradient)
		}
	}, nil)
	return normals
}

// HazardAt returns the damage rate of the hazard covering (x, z), if any.
func (w *World) HazardAt(x, z float64) (float64, bool) {
	if w == nil || w.space == nil {
		return 0, false
	}
	info := w.space.PointQueryNearest(cp.Vector{X: x, Y: z}, 0, hazardFilter)
	if info == nil || info.Shape == nil {
		return 0, false
	}
	hz, ok := w.hazards[info.Shape]
	if !ok {
		return 0, false
	}
	return hz.DamagePerSecond, true
}

func rectBB(r levels.Rect) cp.BB {
	return cp.BB{L: r.MinX, B: r.MinZ, R: r.MaxX, T: r.MaxZ}
}

package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a top-down arena. X and Z span the ground plane, Y is up.
type Level struct {
	Name      string     `json:"name"`
	Floor     float64    `json:"floor"`
	Spawn     Point      `json:"spawn"`
	SpawnYaw  float64    `json:"spawn_yaw,omitempty"`
	Walls     []Rect     `json:"walls,omitempty"`
	Platforms []Platform `json:"platforms,omitempty"`
	Hazards   []Hazard   `json:"hazards,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Rect is an axis-aligned footprint on the ground plane.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinZ float64 `json:"min_z"`
	MaxX float64 `json:"max_x"`
	MaxZ float64 `json:"max_z"`
}

// Platform is a walkable block whose top surface sits at Top.
type Platform struct {
	Rect
	Top float64 `json:"top"`
}

// Hazard damages anything standing inside it.
type Hazard struct {
	Rect
	DamagePerSecond float64 `json:"damage_per_second"`
}

func (r Rect) Contains(x, z float64) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

func (r Rect) valid() bool {
	return r.MaxX > r.MinX && r.MaxZ > r.MinZ
}

// LoadLevel reads levels/<name>.json from disk when present, falling back
// to the embedded copy.
func LoadLevel(name string) (*Level, error) {
	clean := cleanLevelName(name)
	data, err := os.ReadFile(filepath.Join("levels", clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
		if err != nil {
			return nil, fmt.Errorf("read level %q: %w", name, err)
		}
	}
	return ParseLevel(data)
}

// ParseLevel decodes and checks a level document.
func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	for i, w := range lvl.Walls {
		if !w.valid() {
			return nil, fmt.Errorf("level %q: wall %d has empty footprint", lvl.Name, i)
		}
	}
	for i, p := range lvl.Platforms {
		if !p.valid() {
			return nil, fmt.Errorf("level %q: platform %d has empty footprint", lvl.Name, i)
		}
	}
	for i, h := range lvl.Hazards {
		if !h.valid() {
			return nil, fmt.Errorf("level %q: hazard %d has empty footprint", lvl.Name, i)
		}
	}
	return &lvl, nil
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "levels/")
	if s == "" {
		s = "arena"
	}
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}

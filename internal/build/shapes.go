package build

import (
	"fmt"
	"math"
)

// ============================================================
// Pyramid
// ============================================================

// Pyramid plans a stepped pyramid of cubes centered on Location.
type Pyramid struct {
	BaseSize   int     `json:"base_size"`
	BlockSize  float64 `json:"block_size"`
	Location   Vec3    `json:"location"`
	NamePrefix string  `json:"name_prefix"`
	Mesh       string  `json:"mesh"`
}

func (p Pyramid) Plan() []Spawn {
	if p.BaseSize <= 0 {
		p.BaseSize = 3
	}
	if p.BlockSize <= 0 {
		p.BlockSize = 100
	}
	if p.NamePrefix == "" {
		p.NamePrefix = "PyramidBlock"
	}
	scale := p.BlockSize / 100
	var plan []Spawn
	for level := 0; level < p.BaseSize; level++ {
		count := p.BaseSize - level
		for x := 0; x < count; x++ {
			for y := 0; y < count; y++ {
				plan = append(plan, Spawn{
					Name: fmt.Sprintf("%s_%d_%d_%d", p.NamePrefix, level, x, y),
					Location: p.Location.Add(Vec3{
						(float64(x) - float64(count-1)/2) * p.BlockSize,
						(float64(y) - float64(count-1)/2) * p.BlockSize,
						float64(level) * p.BlockSize,
					}),
					Scale: Uniform(scale),
					Mesh:  p.Mesh,
				})
			}
		}
	}
	return plan
}

// ============================================================
// Wall
// ============================================================

// Wall plans a flat wall of cubes running along the X or Y axis.
type Wall struct {
	Length      int     `json:"length"`
	Height      int     `json:"height"`
	BlockSize   float64 `json:"block_size"`
	Location    Vec3    `json:"location"`
	Orientation string  `json:"orientation"` // "x" or "y"
	NamePrefix  string  `json:"name_prefix"`
	Mesh        string  `json:"mesh"`
}

func (w Wall) Plan() []Spawn {
	if w.Length <= 0 {
		w.Length = 5
	}
	if w.Height <= 0 {
		w.Height = 2
	}
	if w.BlockSize <= 0 {
		w.BlockSize = 100
	}
	if w.NamePrefix == "" {
		w.NamePrefix = "WallBlock"
	}
	scale := w.BlockSize / 100
	var plan []Spawn
	for h := 0; h < w.Height; h++ {
		for i := 0; i < w.Length; i++ {
			off := Vec3{0, float64(i) * w.BlockSize, float64(h) * w.BlockSize}
			if w.Orientation != "y" {
				off = Vec3{float64(i) * w.BlockSize, 0, float64(h) * w.BlockSize}
			}
			plan = append(plan, Spawn{
				Name:     fmt.Sprintf("%s_%d_%d", w.NamePrefix, h, i),
				Location: w.Location.Add(off),
				Scale:    Uniform(scale),
				Mesh:     w.Mesh,
			})
		}
	}
	return plan
}

// ============================================================
// Tower
// ============================================================

// Tower styles.
const (
	TowerCylindrical = "cylindrical"
	TowerSquare      = "square"
	TowerTapered     = "tapered"
)

// Tower plans a multi-level tower. Cylindrical towers place blocks on
// a ring per level; square and tapered towers build four walls, with
// tapered shrinking every second level. Every third level gets small
// cylinder details at the corners.
type Tower struct {
	Height     int     `json:"height"`
	BaseSize   int     `json:"base_size"`
	BlockSize  float64 `json:"block_size"`
	Location   Vec3    `json:"location"`
	NamePrefix string  `json:"name_prefix"`
	Mesh       string  `json:"mesh"`
	Style      string  `json:"style"`
}

func (t Tower) Plan() []Spawn {
	if t.Height <= 0 {
		t.Height = 10
	}
	if t.BaseSize <= 0 {
		t.BaseSize = 4
	}
	if t.BlockSize <= 0 {
		t.BlockSize = 100
	}
	if t.NamePrefix == "" {
		t.NamePrefix = "TowerBlock"
	}
	if t.Style == "" {
		t.Style = TowerCylindrical
	}
	scale := t.BlockSize / 100
	var plan []Spawn
	for level := 0; level < t.Height; level++ {
		z := t.Location[2] + float64(level)*t.BlockSize
		switch t.Style {
		case TowerTapered:
			size := t.BaseSize - level/2
			if size < 1 {
				size = 1
			}
			plan = append(plan, t.wallRing(level, size, z, scale)...)
		case TowerSquare:
			plan = append(plan, t.wallRing(level, t.BaseSize, z, scale)...)
		default:
			radius := float64(t.BaseSize) / 2 * t.BlockSize
			n := int(2 * math.Pi * radius / t.BlockSize)
			if n < 8 {
				n = 8
			}
			for i := 0; i < n; i++ {
				angle := 2 * math.Pi * float64(i) / float64(n)
				plan = append(plan, Spawn{
					Name: fmt.Sprintf("%s_%d_%d", t.NamePrefix, level, i),
					Location: Vec3{
						t.Location[0] + radius*math.Cos(angle),
						t.Location[1] + radius*math.Sin(angle),
						z,
					},
					Scale: Uniform(scale),
					Mesh:  t.Mesh,
				})
			}
		}
		if level%3 == 2 && level < t.Height-1 {
			for corner := 0; corner < 4; corner++ {
				angle := float64(corner) * math.Pi / 2
				r := (float64(t.BaseSize)/2 + 0.5) * t.BlockSize
				plan = append(plan, Spawn{
					Name: fmt.Sprintf("%s_%d_detail_%d", t.NamePrefix, level, corner),
					Location: Vec3{
						t.Location[0] + r*math.Cos(angle),
						t.Location[1] + r*math.Sin(angle),
						z,
					},
					Scale: Uniform(scale * 0.7),
					Mesh:  MeshCylinder,
				})
			}
		}
	}
	return plan
}

// wallRing plans one level of four walls, size blocks per side.
func (t Tower) wallRing(level, size int, z, scale float64) []Spawn {
	half := float64(size) / 2
	sides := []struct {
		label string
		pos   func(i int) (float64, float64)
	}{
		{"front", func(i int) (float64, float64) {
			return t.Location[0] + (float64(i)-half+0.5)*t.BlockSize, t.Location[1] - half*t.BlockSize
		}},
		{"right", func(i int) (float64, float64) {
			return t.Location[0] + half*t.BlockSize, t.Location[1] + (float64(i)-half+0.5)*t.BlockSize
		}},
		{"back", func(i int) (float64, float64) {
			return t.Location[0] + (half-float64(i)-0.5)*t.BlockSize, t.Location[1] + half*t.BlockSize
		}},
		{"left", func(i int) (float64, float64) {
			return t.Location[0] - half*t.BlockSize, t.Location[1] + (half-float64(i)-0.5)*t.BlockSize
		}},
	}
	var plan []Spawn
	for _, side := range sides {
		for i := 0; i < size; i++ {
			x, y := side.pos(i)
			plan = append(plan, Spawn{
				Name:     fmt.Sprintf("%s_%d_%s_%d", t.NamePrefix, level, side.label, i),
				Location: Vec3{x, y, z},
				Scale:    Uniform(scale),
				Mesh:     t.Mesh,
			})
		}
	}
	return plan
}

// ============================================================
// Staircase
// ============================================================

// Staircase plans a straight run of steps rising along X.
type Staircase struct {
	Steps      int    `json:"steps"`
	StepSize   Vec3   `json:"step_size"` // depth, width, rise
	Location   Vec3   `json:"location"`
	NamePrefix string `json:"name_prefix"`
	Mesh       string `json:"mesh"`
}

func (s Staircase) Plan() []Spawn {
	if s.Steps <= 0 {
		s.Steps = 5
	}
	if s.StepSize == (Vec3{}) {
		s.StepSize = Vec3{100, 100, 50}
	}
	if s.NamePrefix == "" {
		s.NamePrefix = "Stair"
	}
	var plan []Spawn
	for i := 0; i < s.Steps; i++ {
		plan = append(plan, Spawn{
			Name: fmt.Sprintf("%s_%d", s.NamePrefix, i),
			Location: s.Location.Add(Vec3{
				float64(i) * s.StepSize[0],
				0,
				float64(i) * s.StepSize[2],
			}),
			Scale: Vec3{s.StepSize[0] / 100, s.StepSize[1] / 100, s.StepSize[2] / 100},
			Mesh:  s.Mesh,
		})
	}
	return plan
}

// ============================================================
// Arch
// ============================================================

// Arch plans a semicircle of blocks in the XZ plane.
type Arch struct {
	Radius     float64 `json:"radius"`
	Segments   int     `json:"segments"`
	Location   Vec3    `json:"location"`
	NamePrefix string  `json:"name_prefix"`
	Mesh       string  `json:"mesh"`
}

func (a Arch) Plan() []Spawn {
	if a.Radius <= 0 {
		a.Radius = 300
	}
	if a.Segments <= 0 {
		a.Segments = 6
	}
	if a.NamePrefix == "" {
		a.NamePrefix = "ArchBlock"
	}
	step := math.Pi / float64(a.Segments)
	scale := a.Radius / 600
	var plan []Spawn
	for i := 0; i <= a.Segments; i++ {
		theta := step * float64(i)
		plan = append(plan, Spawn{
			Name: fmt.Sprintf("%s_%d", a.NamePrefix, i),
			Location: a.Location.Add(Vec3{
				a.Radius * math.Cos(theta),
				0,
				a.Radius * math.Sin(theta),
			}),
			Scale: Uniform(scale),
			Mesh:  a.Mesh,
		})
	}
	return plan
}

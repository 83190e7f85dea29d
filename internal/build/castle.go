package build

import (
	"fmt"
	"math"
)

// Castle sizes.
const (
	CastleSmall  = "small"
	CastleMedium = "medium"
	CastleLarge  = "large"
	CastleEpic   = "epic"
)

type castleParams struct {
	outerWidth  float64
	outerDepth  float64
	wallHeight  float64
	towerHeight float64
	keepSize    float64
	keepFloors  int
}

var castleSizes = map[string]castleParams{
	CastleSmall:  {outerWidth: 4000, outerDepth: 3200, wallHeight: 600, towerHeight: 1200, keepSize: 1200, keepFloors: 3},
	CastleMedium: {outerWidth: 6000, outerDepth: 4800, wallHeight: 800, towerHeight: 1600, keepSize: 1600, keepFloors: 4},
	CastleLarge:  {outerWidth: 8000, outerDepth: 6400, wallHeight: 1000, towerHeight: 2000, keepSize: 2000, keepFloors: 5},
	CastleEpic:   {outerWidth: 12000, outerDepth: 9600, wallHeight: 1400, towerHeight: 2800, keepSize: 2800, keepFloors: 7},
}

// Castle plans a walled fortress: outer curtain walls with crenels,
// four corner towers, a gatehouse on the south wall, a central keep,
// and optionally siege weapons in the courtyard and a village outside
// the walls.
type Castle struct {
	Size                string `json:"size"`
	Location            Vec3   `json:"location"`
	NamePrefix          string `json:"name_prefix"`
	IncludeSiegeWeapons bool   `json:"include_siege_weapons"`
	IncludeVillage      bool   `json:"include_village"`
	Style               string `json:"style"` // "medieval", "fantasy", "gothic"
}

func (c Castle) withDefaults() Castle {
	if c.Size == "" {
		c.Size = CastleLarge
	}
	if c.NamePrefix == "" {
		c.NamePrefix = "Castle"
	}
	if c.Style == "" {
		c.Style = "medieval"
	}
	return c
}

func (c Castle) Plan() []Spawn {
	c = c.withDefaults()
	p, ok := castleSizes[c.Size]
	if !ok {
		p = castleSizes[CastleLarge]
	}
	var plan []Spawn
	plan = append(plan, c.curtainWalls(p)...)
	plan = append(plan, c.cornerTowers(p)...)
	plan = append(plan, c.gatehouse(p)...)
	plan = append(plan, c.keep(p)...)
	if c.IncludeSiegeWeapons {
		plan = append(plan, c.siegeWeapons(p)...)
	}
	if c.IncludeVillage {
		plan = append(plan, c.village(p)...)
	}
	return plan
}

const wallSection = 200.0

// curtainWalls plans the four outer walls as runs of wall sections
// with crenellations on top of every other section.
func (c Castle) curtainWalls(p castleParams) []Spawn {
	halfW := p.outerWidth / 2
	halfD := p.outerDepth / 2
	var plan []Spawn

	addRun := func(label string, count int, pos func(i int) Vec3) {
		for i := 0; i < count; i++ {
			base := pos(i)
			plan = append(plan, Spawn{
				Name:     fmt.Sprintf("%s_Wall_%s_%d", c.NamePrefix, label, i),
				Location: base.Add(Vec3{0, 0, p.wallHeight / 2}),
				Scale:    Vec3{wallSection / 100, wallSection / 100, p.wallHeight / 100},
				Mesh:     MeshCube,
			})
			if i%2 == 0 {
				plan = append(plan, Spawn{
					Name:     fmt.Sprintf("%s_Crenel_%s_%d", c.NamePrefix, label, i),
					Location: base.Add(Vec3{0, 0, p.wallHeight + wallSection/4}),
					Scale:    Vec3{wallSection / 100 * 0.6, wallSection / 100 * 0.6, 0.5},
					Mesh:     MeshCube,
				})
			}
		}
	}

	nsCount := int(p.outerWidth / wallSection)
	ewCount := int(p.outerDepth / wallSection)
	addRun("north", nsCount, func(i int) Vec3 {
		return c.Location.Add(Vec3{-halfW + (float64(i)+0.5)*wallSection, halfD, 0})
	})
	addRun("south", nsCount, func(i int) Vec3 {
		return c.Location.Add(Vec3{-halfW + (float64(i)+0.5)*wallSection, -halfD, 0})
	})
	addRun("east", ewCount, func(i int) Vec3 {
		return c.Location.Add(Vec3{halfW, -halfD + (float64(i)+0.5)*wallSection, 0})
	})
	addRun("west", ewCount, func(i int) Vec3 {
		return c.Location.Add(Vec3{-halfW, -halfD + (float64(i)+0.5)*wallSection, 0})
	})
	return plan
}

// cornerTowers plans a round tower at each corner, topped with a cone
// roof for fantasy style.
func (c Castle) cornerTowers(p castleParams) []Spawn {
	halfW := p.outerWidth / 2
	halfD := p.outerDepth / 2
	corners := []Vec3{
		{-halfW, -halfD, 0}, {halfW, -halfD, 0},
		{halfW, halfD, 0}, {-halfW, halfD, 0},
	}
	segments := int(p.towerHeight / wallSection)
	var plan []Spawn
	for ci, corner := range corners {
		base := c.Location.Add(corner)
		for s := 0; s < segments; s++ {
			plan = append(plan, Spawn{
				Name:     fmt.Sprintf("%s_Tower_%d_%d", c.NamePrefix, ci, s),
				Location: base.Add(Vec3{0, 0, (float64(s) + 0.5) * wallSection}),
				Scale:    Vec3{wallSection / 100 * 2, wallSection / 100 * 2, wallSection / 100},
				Mesh:     MeshCylinder,
			})
		}
		if c.Style == "fantasy" {
			plan = append(plan, Spawn{
				Name:     fmt.Sprintf("%s_Tower_%d_Roof", c.NamePrefix, ci),
				Location: base.Add(Vec3{0, 0, p.towerHeight + wallSection/2}),
				Scale:    Vec3{wallSection / 100 * 2.4, wallSection / 100 * 2.4, wallSection / 100 * 2},
				Mesh:     MeshCone,
			})
		}
	}
	return plan
}

// gatehouse plans twin flanking towers and a raised portcullis block
// in the middle of the south wall.
func (c Castle) gatehouse(p castleParams) []Spawn {
	halfD := p.outerDepth / 2
	gateHeight := p.wallHeight * 1.5
	segments := int(gateHeight / wallSection)
	var plan []Spawn
	for gi, dx := range []float64{-wallSection * 1.5, wallSection * 1.5} {
		base := c.Location.Add(Vec3{dx, -halfD, 0})
		for s := 0; s < segments; s++ {
			plan = append(plan, Spawn{
				Name:     fmt.Sprintf("%s_Gate_Tower_%d_%d", c.NamePrefix, gi, s),
				Location: base.Add(Vec3{0, 0, (float64(s) + 0.5) * wallSection}),
				Scale:    Vec3{wallSection / 100 * 1.5, wallSection / 100 * 1.5, wallSection / 100},
				Mesh:     MeshCube,
			})
		}
	}
	plan = append(plan, Spawn{
		Name:     c.NamePrefix + "_Gate_Portcullis",
		Location: c.Location.Add(Vec3{0, -halfD, gateHeight}),
		Scale:    Vec3{wallSection / 100 * 3, wallSection / 100 * 0.5, wallSection / 100},
		Mesh:     MeshCube,
	})
	return plan
}

// keep plans the central keep as stacked floors with corner turrets.
func (c Castle) keep(p castleParams) []Spawn {
	floorHeight := wallSection * 2
	var plan []Spawn
	for f := 0; f < p.keepFloors; f++ {
		shrink := 1 - float64(f)*0.08
		plan = append(plan, Spawn{
			Name:     fmt.Sprintf("%s_Keep_Floor_%d", c.NamePrefix, f),
			Location: c.Location.Add(Vec3{0, 0, (float64(f) + 0.5) * floorHeight}),
			Scale:    Vec3{p.keepSize / 100 * shrink, p.keepSize / 100 * shrink, floorHeight / 100},
			Mesh:     MeshCube,
		})
	}
	top := float64(p.keepFloors) * floorHeight
	for ti := 0; ti < 4; ti++ {
		angle := float64(ti)*math.Pi/2 + math.Pi/4
		r := p.keepSize / 2 * 0.9
		plan = append(plan, Spawn{
			Name: fmt.Sprintf("%s_Keep_Turret_%d", c.NamePrefix, ti),
			Location: c.Location.Add(Vec3{
				r * math.Cos(angle), r * math.Sin(angle), top + wallSection,
			}),
			Scale: Vec3{1, 1, wallSection / 100 * 2},
			Mesh:  MeshCylinder,
		})
	}
	return plan
}

// siegeWeapons plans a few catapult stands in the courtyard.
func (c Castle) siegeWeapons(p castleParams) []Spawn {
	var plan []Spawn
	for i := 0; i < 3; i++ {
		base := c.Location.Add(Vec3{
			p.keepSize*1.2 + float64(i)*wallSection*3, 0, 0,
		})
		prefix := fmt.Sprintf("%s_Siege_%d", c.NamePrefix, i)
		plan = append(plan,
			Spawn{
				Name:     prefix + "_Base",
				Location: base.Add(Vec3{0, 0, 50}),
				Scale:    Vec3{3, 2, 1},
				Mesh:     MeshCube,
			},
			Spawn{
				Name:     prefix + "_Arm",
				Location: base.Add(Vec3{0, 0, 250}),
				Scale:    Vec3{0.3, 0.3, 4},
				Mesh:     MeshCylinder,
			},
		)
	}
	return plan
}

// village plans a ring of small huts outside the south wall.
func (c Castle) village(p castleParams) []Spawn {
	halfD := p.outerDepth / 2
	var plan []Spawn
	for i := 0; i < 8; i++ {
		base := c.Location.Add(Vec3{
			(float64(i) - 3.5) * wallSection * 4,
			-halfD - wallSection*6,
			0,
		})
		prefix := fmt.Sprintf("%s_Village_Hut_%d", c.NamePrefix, i)
		plan = append(plan,
			Spawn{
				Name:     prefix + "_Walls",
				Location: base.Add(Vec3{0, 0, 150}),
				Scale:    Vec3{3, 3, 3},
				Mesh:     MeshCube,
			},
			Spawn{
				Name:     prefix + "_Roof",
				Location: base.Add(Vec3{0, 0, 400}),
				Scale:    Vec3{3.4, 3.4, 2},
				Mesh:     MeshCone,
			},
		)
	}
	return plan
}

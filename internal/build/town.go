package build

import (
	"fmt"
	"math/rand"
)

// Town sizes.
const (
	TownSmall      = "small"
	TownMedium     = "medium"
	TownLarge      = "large"
	TownMetropolis = "metropolis"
)

type townParams struct {
	blocks           int
	blockSize        float64
	maxHeight        int
	population       int
	skyscraperChance float64
}

var townSizes = map[string]townParams{
	TownSmall:      {blocks: 3, blockSize: 1500, maxHeight: 5, population: 20, skyscraperChance: 0.1},
	TownMedium:     {blocks: 5, blockSize: 2000, maxHeight: 10, population: 50, skyscraperChance: 0.3},
	TownLarge:      {blocks: 7, blockSize: 2500, maxHeight: 20, population: 100, skyscraperChance: 0.5},
	TownMetropolis: {blocks: 10, blockSize: 3000, maxHeight: 40, population: 200, skyscraperChance: 0.7},
}

// TownStats summarizes a planned town.
type TownStats struct {
	Size           string  `json:"size"`
	Density        float64 `json:"density"`
	Blocks         int     `json:"blocks"`
	Buildings      int     `json:"buildings"`
	Infrastructure int     `json:"infrastructure_items"`
	TotalActors    int     `json:"total_actors"`
	Style          string  `json:"architectural_style"`
}

// Town plans a street grid with buildings placed per block, plus
// street lights and parked vehicles when infrastructure is enabled.
// Central blocks of mixed-style towns favor tall buildings.
type Town struct {
	Size                  string  `json:"size"`
	BuildingDensity       float64 `json:"building_density"`
	Location              Vec3    `json:"location"`
	NamePrefix            string  `json:"name_prefix"`
	IncludeInfrastructure bool    `json:"include_infrastructure"`
	Style                 string  `json:"style"`
	// Rand drives block skipping and building variety. Nil uses an
	// unseeded source.
	Rand *rand.Rand `json:"-"`
}

func (t Town) withDefaults() Town {
	if t.Size == "" {
		t.Size = TownMedium
	}
	if t.BuildingDensity <= 0 || t.BuildingDensity > 1 {
		t.BuildingDensity = 0.7
	}
	if t.NamePrefix == "" {
		t.NamePrefix = "Town"
	}
	if t.Style == "" {
		t.Style = "mixed"
	}
	if t.Rand == nil {
		t.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	return t
}

// Plan returns the spawn plan together with its composition stats.
func (t Town) Plan() ([]Spawn, TownStats) {
	t = t.withDefaults()
	p, ok := townSizes[t.Size]
	if !ok {
		p = townSizes[TownMedium]
	}
	stats := TownStats{
		Size:    t.Size,
		Density: t.BuildingDensity,
		Blocks:  p.blocks,
		Style:   t.Style,
	}
	target := int(float64(p.population) * t.BuildingDensity)
	streetWidth := p.blockSize * 0.3
	buildingArea := p.blockSize * 0.7

	plan := t.streetGrid(p, streetWidth)

	for bx := 0; bx < p.blocks && stats.Buildings < target; bx++ {
		for by := 0; by < p.blocks && stats.Buildings < target; by++ {
			if t.Rand.Float64() > t.BuildingDensity {
				continue
			}
			center := t.Location.Add(Vec3{
				(float64(bx) - float64(p.blocks)/2) * p.blockSize,
				(float64(by) - float64(p.blocks)/2) * p.blockSize,
				0,
			})
			plan = append(plan, t.building(p, bx, by, center, buildingArea)...)
			stats.Buildings++
		}
	}

	if t.IncludeInfrastructure {
		lights := t.streetLights(p)
		vehicles := t.vehicles(p, streetWidth, target/3)
		stats.Infrastructure = len(lights) + len(vehicles)
		plan = append(plan, lights...)
		plan = append(plan, vehicles...)
	}
	stats.TotalActors = len(plan)
	return plan, stats
}

// streetGrid lays flat slabs along the block boundaries in both axes.
func (t Town) streetGrid(p townParams, width float64) []Spawn {
	span := float64(p.blocks) * p.blockSize
	var plan []Spawn
	for i := 0; i <= p.blocks; i++ {
		offset := (float64(i) - float64(p.blocks)/2) * p.blockSize
		plan = append(plan,
			Spawn{
				Name:     fmt.Sprintf("%s_Street_EW_%d", t.NamePrefix, i),
				Location: t.Location.Add(Vec3{0, offset, 5}),
				Scale:    Vec3{span / 100, width / 100, 0.1},
				Mesh:     MeshCube,
			},
			Spawn{
				Name:     fmt.Sprintf("%s_Street_NS_%d", t.NamePrefix, i),
				Location: t.Location.Add(Vec3{offset, 0, 5}),
				Scale:    Vec3{width / 100, span / 100, 0.1},
				Mesh:     MeshCube,
			},
		)
	}
	return plan
}

// building plans one building as a stack of floor slabs with a roof
// block. Tall types rise toward maxHeight; low types stay at a few
// floors.
func (t Town) building(p townParams, bx, by int, center Vec3, area float64) []Spawn {
	tall := false
	switch t.Style {
	case "downtown", "futuristic":
		tall = true
	case "mixed":
		central := abs(bx-p.blocks/2) <= 1 && abs(by-p.blocks/2) <= 1
		tall = central && t.Rand.Float64() < p.skyscraperChance
	}

	floors := 1 + t.Rand.Intn(3)
	if tall {
		floors = p.maxHeight/2 + t.Rand.Intn(p.maxHeight/2+1)
	}
	floorHeight := 300.0
	footprint := area * (0.5 + t.Rand.Float64()*0.3)

	prefix := fmt.Sprintf("%s_Building_%d_%d", t.NamePrefix, bx, by)
	var plan []Spawn
	for f := 0; f < floors; f++ {
		plan = append(plan, Spawn{
			Name:     fmt.Sprintf("%s_Floor_%d", prefix, f),
			Location: center.Add(Vec3{0, 0, (float64(f) + 0.5) * floorHeight}),
			Scale:    Vec3{footprint / 100, footprint / 100, floorHeight / 100},
			Mesh:     MeshCube,
		})
	}
	plan = append(plan, Spawn{
		Name:     prefix + "_Roof",
		Location: center.Add(Vec3{0, 0, float64(floors)*floorHeight + 50}),
		Scale:    Vec3{footprint / 100 * 0.8, footprint / 100 * 0.8, 1},
		Mesh:     MeshCube,
	})
	return plan
}

// streetLights places a pole and lamp at every intersection.
func (t Town) streetLights(p townParams) []Spawn {
	var plan []Spawn
	for i := 0; i <= p.blocks; i++ {
		for j := 0; j <= p.blocks; j++ {
			base := t.Location.Add(Vec3{
				(float64(i) - float64(p.blocks)/2) * p.blockSize,
				(float64(j) - float64(p.blocks)/2) * p.blockSize,
				0,
			})
			prefix := fmt.Sprintf("%s_Light_%d_%d", t.NamePrefix, i, j)
			plan = append(plan,
				Spawn{
					Name:     prefix + "_Pole",
					Location: base.Add(Vec3{0, 0, 200}),
					Scale:    Vec3{0.2, 0.2, 4},
					Mesh:     MeshCylinder,
				},
				Spawn{
					Name:     prefix + "_Lamp",
					Location: base.Add(Vec3{0, 0, 420}),
					Scale:    Uniform(0.4),
					Mesh:     MeshSphere,
				},
			)
		}
	}
	return plan
}

// vehicles scatters simple two-box cars along the streets.
func (t Town) vehicles(p townParams, streetWidth float64, count int) []Spawn {
	var plan []Spawn
	span := float64(p.blocks) * p.blockSize
	for v := 0; v < count; v++ {
		street := t.Rand.Intn(p.blocks + 1)
		offset := (float64(street) - float64(p.blocks)/2) * p.blockSize
		pos := (t.Rand.Float64() - 0.5) * span
		base := t.Location.Add(Vec3{pos, offset + streetWidth*0.2, 50})
		prefix := fmt.Sprintf("%s_Vehicle_%d", t.NamePrefix, v)
		plan = append(plan,
			Spawn{
				Name:     prefix + "_Body",
				Location: base,
				Scale:    Vec3{4, 2, 1},
				Mesh:     MeshCube,
			},
			Spawn{
				Name:     prefix + "_Cabin",
				Location: base.Add(Vec3{0, 0, 100}),
				Scale:    Vec3{2, 1.8, 0.8},
				Mesh:     MeshCube,
			},
		)
	}
	return plan
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

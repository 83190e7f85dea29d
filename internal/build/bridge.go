package build

import (
	"fmt"
	"math"
)

// BridgeMetrics reports the composition of a planned bridge.
type BridgeMetrics struct {
	TotalActors    int     `json:"total_actors"`
	DeckSegments   int     `json:"deck_segments"`
	CableSegments  int     `json:"cable_segments"`
	SuspenderCount int     `json:"suspender_count"`
	Towers         int     `json:"towers"`
	SpanLength     float64 `json:"span_length"`
	DeckWidth      float64 `json:"deck_width"`
	EstArea        float64 `json:"est_area"`
}

// SuspensionBridge plans a twin-tower suspension bridge: a deck grid,
// two parabolic main cables, vertical suspenders every third module,
// and tower columns at both ends.
type SuspensionBridge struct {
	SpanLength    float64 `json:"span_length"`
	DeckWidth     float64 `json:"deck_width"`
	TowerHeight   float64 `json:"tower_height"`
	CableSagRatio float64 `json:"cable_sag_ratio"`
	ModuleSize    float64 `json:"module_size"`
	Location      Vec3    `json:"location"`
	Orientation   string  `json:"orientation"` // "x" or "y"
	NamePrefix    string  `json:"name_prefix"`
	DeckMesh      string  `json:"deck_mesh"`
	TowerMesh     string  `json:"tower_mesh"`
	CableMesh     string  `json:"cable_mesh"`
	SuspenderMesh string  `json:"suspender_mesh"`
}

func (b SuspensionBridge) withDefaults() SuspensionBridge {
	if b.SpanLength <= 0 {
		b.SpanLength = 6000
	}
	if b.DeckWidth <= 0 {
		b.DeckWidth = 800
	}
	if b.TowerHeight <= 0 {
		b.TowerHeight = 4000
	}
	if b.CableSagRatio <= 0 {
		b.CableSagRatio = 0.12
	}
	if b.ModuleSize <= 0 {
		b.ModuleSize = 200
	}
	if b.NamePrefix == "" {
		b.NamePrefix = "Bridge"
	}
	if b.DeckMesh == "" {
		b.DeckMesh = MeshCube
	}
	if b.TowerMesh == "" {
		b.TowerMesh = MeshCube
	}
	if b.CableMesh == "" {
		b.CableMesh = MeshCylinder
	}
	if b.SuspenderMesh == "" {
		b.SuspenderMesh = MeshCylinder
	}
	return b
}

// Metrics computes the expected composition without planning spawns.
func (b SuspensionBridge) Metrics() BridgeMetrics {
	b = b.withDefaults()
	spanMods := int(b.SpanLength / b.ModuleSize)
	if spanMods < 1 {
		spanMods = 1
	}
	widthMods := int(b.DeckWidth / b.ModuleSize)
	if widthMods < 1 {
		widthMods = 1
	}
	susp := int(b.SpanLength / (b.ModuleSize * 3))
	if susp < 1 {
		susp = 1
	}
	m := BridgeMetrics{
		DeckSegments:   spanMods * widthMods,
		CableSegments:  2 * spanMods,
		SuspenderCount: 2 * susp,
		Towers:         towerActorCount,
		SpanLength:     b.SpanLength,
		DeckWidth:      b.DeckWidth,
		EstArea:        b.SpanLength * b.DeckWidth,
	}
	m.TotalActors = m.DeckSegments + m.CableSegments + m.SuspenderCount + m.Towers
	return m
}

// Each tower contributes a base, three column segments, and a top
// crossbeam.
const towerActorCount = 10

// along maps a distance down the span and a lateral offset into world
// space according to the bridge orientation.
func (b SuspensionBridge) along(dist, lateral, z float64) Vec3 {
	if b.Orientation == "y" {
		return b.Location.Add(Vec3{lateral, dist, z})
	}
	return b.Location.Add(Vec3{dist, lateral, z})
}

// cableZ is the main cable height at fraction t of the span, a
// parabola hanging from the tower tops with the configured sag.
func (b SuspensionBridge) cableZ(t float64) float64 {
	sag := b.CableSagRatio * b.SpanLength
	return b.TowerHeight - 4*sag*t*(1-t)
}

func (b SuspensionBridge) Plan() []Spawn {
	b = b.withDefaults()
	var plan []Spawn

	spanMods := int(b.SpanLength / b.ModuleSize)
	if spanMods < 1 {
		spanMods = 1
	}
	widthMods := int(b.DeckWidth / b.ModuleSize)
	if widthMods < 1 {
		widthMods = 1
	}
	deckScale := b.ModuleSize / 100
	halfSpan := b.SpanLength / 2
	halfWidth := b.DeckWidth / 2

	// Towers at both ends of the span.
	for ti, end := range []float64{-halfSpan, halfSpan} {
		base := b.along(end, 0, 0)
		plan = append(plan, Spawn{
			Name:     fmt.Sprintf("%s_Tower_%d_Base", b.NamePrefix, ti),
			Location: base,
			Scale:    Vec3{deckScale * 3, deckScale * 3, deckScale},
			Mesh:     b.TowerMesh,
		})
		for seg := 0; seg < 3; seg++ {
			h := b.TowerHeight * float64(seg+1) / 4
			plan = append(plan, Spawn{
				Name:     fmt.Sprintf("%s_Tower_%d_Col_%d", b.NamePrefix, ti, seg),
				Location: b.along(end, 0, h),
				Scale:    Vec3{deckScale, deckScale, b.TowerHeight / 4 / 100},
				Mesh:     b.TowerMesh,
			})
		}
		plan = append(plan, Spawn{
			Name:     fmt.Sprintf("%s_Tower_%d_Top", b.NamePrefix, ti),
			Location: b.along(end, 0, b.TowerHeight),
			Scale:    Vec3{deckScale, b.DeckWidth / 100, deckScale},
			Mesh:     b.TowerMesh,
		})
	}

	// Deck grid.
	for i := 0; i < spanMods; i++ {
		dist := -halfSpan + (float64(i)+0.5)*b.ModuleSize
		for j := 0; j < widthMods; j++ {
			lat := -halfWidth + (float64(j)+0.5)*b.ModuleSize
			plan = append(plan, Spawn{
				Name:     fmt.Sprintf("%s_Deck_%d_%d", b.NamePrefix, i, j),
				Location: b.along(dist, lat, 0),
				Scale:    Vec3{deckScale, deckScale, deckScale * 0.25},
				Mesh:     b.DeckMesh,
			})
		}
	}

	// Main cables on both edges of the deck.
	for ci, lat := range []float64{-halfWidth, halfWidth} {
		for i := 0; i < spanMods; i++ {
			t := (float64(i) + 0.5) / float64(spanMods)
			dist := -halfSpan + (float64(i)+0.5)*b.ModuleSize
			plan = append(plan, Spawn{
				Name:     fmt.Sprintf("%s_Cable_%d_%d", b.NamePrefix, ci, i),
				Location: b.along(dist, lat, b.cableZ(t)),
				Scale:    Uniform(deckScale * 0.3),
				Mesh:     b.CableMesh,
			})
		}
	}

	// Vertical suspenders every third module, scaled to reach from the
	// deck up to the cable.
	suspStep := b.ModuleSize * 3
	suspCount := int(b.SpanLength / suspStep)
	if suspCount < 1 {
		suspCount = 1
	}
	for si, lat := range []float64{-halfWidth, halfWidth} {
		for i := 0; i < suspCount; i++ {
			t := (float64(i) + 0.5) / float64(suspCount)
			dist := -halfSpan + (float64(i)+0.5)*suspStep
			drop := b.cableZ(t)
			plan = append(plan, Spawn{
				Name:     fmt.Sprintf("%s_Susp_%d_%d", b.NamePrefix, si, i),
				Location: b.along(dist, lat, drop/2),
				Scale:    Vec3{deckScale * 0.15, deckScale * 0.15, math.Max(drop, b.ModuleSize) / 100},
				Mesh:     b.SuspenderMesh,
			})
		}
	}

	return plan
}

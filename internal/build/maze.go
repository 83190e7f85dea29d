package build

import (
	"fmt"
	"math/rand"
)

// Maze plans a solvable maze built from stacked cube walls, generated
// with recursive backtracking on a cell grid. The wall grid is
// (2*Rows+1) x (2*Cols+1); odd coordinates are cells, even ones are
// walls between them. An entrance is opened on the left edge and an
// exit on the right, each marked with a small shape outside the maze.
type Maze struct {
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	CellSize   float64 `json:"cell_size"`
	WallHeight int     `json:"wall_height"`
	Location   Vec3    `json:"location"`
	NamePrefix string  `json:"name_prefix"`
	// Rand drives the carve order. Nil uses an unseeded source, which
	// yields a different maze every run.
	Rand *rand.Rand `json:"-"`
}

func (m Maze) Plan() []Spawn {
	if m.Rows <= 0 {
		m.Rows = 8
	}
	if m.Cols <= 0 {
		m.Cols = 8
	}
	if m.CellSize <= 0 {
		m.CellSize = 300
	}
	if m.WallHeight <= 0 {
		m.WallHeight = 3
	}
	if m.NamePrefix == "" {
		m.NamePrefix = "Maze"
	}
	rng := m.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	grid := m.carve(rng)
	gh := m.Rows*2 + 1
	gw := m.Cols*2 + 1
	scale := m.CellSize / 100

	var plan []Spawn
	for r := 0; r < gh; r++ {
		for c := 0; c < gw; c++ {
			if !grid[r][c] {
				continue
			}
			for h := 0; h < m.WallHeight; h++ {
				plan = append(plan, Spawn{
					Name: fmt.Sprintf("%s_Wall_%d_%d_%d", m.NamePrefix, r, c, h),
					Location: m.Location.Add(Vec3{
						(float64(c) - float64(gw)/2) * m.CellSize,
						(float64(r) - float64(gh)/2) * m.CellSize,
						float64(h) * m.CellSize,
					}),
					Scale: Uniform(scale),
					Mesh:  MeshCube,
				})
			}
		}
	}

	// Entrance and exit markers sit just outside the openings.
	plan = append(plan,
		Spawn{
			Name: m.NamePrefix + "_Entrance",
			Location: m.Location.Add(Vec3{
				-float64(gw)/2*m.CellSize - m.CellSize,
				(-float64(gh)/2 + 1) * m.CellSize,
				m.CellSize,
			}),
			Scale: Uniform(0.5),
			Mesh:  MeshCylinder,
		},
		Spawn{
			Name: m.NamePrefix + "_Exit",
			Location: m.Location.Add(Vec3{
				float64(gw)/2*m.CellSize + m.CellSize,
				(-float64(gh)/2 + float64(m.Rows*2-1)) * m.CellSize,
				m.CellSize,
			}),
			Scale: Uniform(0.5),
			Mesh:  MeshSphere,
		},
	)
	return plan
}

// carve generates the wall grid. true means wall.
func (m Maze) carve(rng *rand.Rand) [][]bool {
	gh := m.Rows*2 + 1
	gw := m.Cols*2 + 1
	grid := make([][]bool, gh)
	for r := range grid {
		grid[r] = make([]bool, gw)
		for c := range grid[r] {
			grid[r][c] = true
		}
	}

	type cell struct{ row, col int }
	visited := func(c cell) bool { return !grid[c.row*2+1][c.col*2+1] }

	stack := []cell{{0, 0}}
	grid[1][1] = false
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		dirs := [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		moved := false
		for _, d := range dirs {
			next := cell{cur.row + d[0], cur.col + d[1]}
			if next.row < 0 || next.row >= m.Rows || next.col < 0 || next.col >= m.Cols {
				continue
			}
			if visited(next) {
				continue
			}
			grid[cur.row*2+1+d[0]][cur.col*2+1+d[1]] = false
			grid[next.row*2+1][next.col*2+1] = false
			stack = append(stack, next)
			moved = true
			break
		}
		if !moved {
			stack = stack[:len(stack)-1]
		}
	}

	// Openings: entrance top-left on the west edge, exit bottom-right
	// on the east edge.
	grid[1][0] = false
	grid[m.Rows*2-1][m.Cols*2] = false
	return grid
}

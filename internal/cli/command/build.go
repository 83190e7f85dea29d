// Package command provides CLI command definitions for uebridge.
package command

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/uebridge-go/internal/build"
	"github.com/yndnr/uebridge-go/internal/cli/output"
)

// BuildCommand returns the build subcommand group.
func BuildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Build procedural structures in the level",
		Subcommands: []*cli.Command{
			{
				Name:  "pyramid",
				Usage: "Build a stepped pyramid",
				Flags: append(placementFlags(),
					&cli.IntFlag{Name: "base-size", Value: 3, Usage: "Blocks along the base edge"},
					&cli.Float64Flag{Name: "block-size", Value: 100, Usage: "Block edge length in units"},
				),
				Action: buildPyramid,
			},
			{
				Name:  "wall",
				Usage: "Build a flat wall",
				Flags: append(placementFlags(),
					&cli.IntFlag{Name: "length", Value: 5, Usage: "Blocks along the wall"},
					&cli.IntFlag{Name: "height", Value: 3, Usage: "Blocks high"},
					&cli.Float64Flag{Name: "block-size", Value: 100, Usage: "Block edge length in units"},
					&cli.StringFlag{Name: "orientation", Value: "x", Usage: "Axis the wall runs along (x or y)"},
				),
				Action: buildWall,
			},
			{
				Name:  "tower",
				Usage: "Build a tower",
				Flags: append(placementFlags(),
					&cli.IntFlag{Name: "height", Value: 10, Usage: "Levels high"},
					&cli.IntFlag{Name: "base-size", Value: 4, Usage: "Base size in blocks"},
					&cli.Float64Flag{Name: "block-size", Value: 100, Usage: "Block edge length in units"},
					&cli.StringFlag{Name: "style", Value: "square", Usage: "Tower style: square, cylindrical, tapered"},
				),
				Action: buildTower,
			},
			{
				Name:  "staircase",
				Usage: "Build a straight staircase",
				Flags: append(placementFlags(),
					&cli.IntFlag{Name: "steps", Value: 5, Usage: "Number of steps"},
				),
				Action: buildStaircase,
			},
			{
				Name:  "arch",
				Usage: "Build a semicircular arch",
				Flags: append(placementFlags(),
					&cli.Float64Flag{Name: "radius", Value: 300, Usage: "Arch radius in units"},
					&cli.IntFlag{Name: "segments", Value: 8, Usage: "Number of segments"},
				),
				Action: buildArch,
			},
			{
				Name:  "maze",
				Usage: "Generate and build a solvable maze",
				Flags: append(placementFlags(),
					&cli.IntFlag{Name: "rows", Value: 8, Usage: "Maze rows"},
					&cli.IntFlag{Name: "cols", Value: 8, Usage: "Maze columns"},
					&cli.Float64Flag{Name: "cell-size", Value: 200, Usage: "Cell size in units"},
					&cli.IntFlag{Name: "wall-height", Value: 2, Usage: "Wall height in blocks"},
				),
				Action: buildMaze,
			},
			{
				Name:  "bridge",
				Usage: "Build a twin-tower suspension bridge",
				Flags: append(placementFlags(),
					&cli.Float64Flag{Name: "span", Value: 6000, Usage: "Span length in units"},
					&cli.Float64Flag{Name: "width", Value: 800, Usage: "Deck width in units"},
					&cli.Float64Flag{Name: "tower-height", Value: 4000, Usage: "Tower height in units"},
					&cli.BoolFlag{Name: "dry-run", Usage: "Print metrics without building"},
				),
				Action: buildBridge,
			},
			{
				Name:  "town",
				Usage: "Build a procedural town",
				Flags: append(placementFlags(),
					&cli.StringFlag{Name: "size", Value: "medium", Usage: "Town size: small, medium, large, metropolis"},
					&cli.Float64Flag{Name: "density", Value: 0, Usage: "Building density override (0..1)"},
					&cli.StringFlag{Name: "style", Value: "mixed", Usage: "Architectural style"},
					&cli.BoolFlag{Name: "infrastructure", Value: true, Usage: "Include street lights and vehicles"},
				),
				Action: buildTown,
			},
			{
				Name:  "castle",
				Usage: "Build a walled castle",
				Flags: append(placementFlags(),
					&cli.StringFlag{Name: "size", Value: "large", Usage: "Castle size: small, medium, large, epic"},
					&cli.StringFlag{Name: "style", Value: "medieval", Usage: "Style: medieval, fantasy, gothic"},
					&cli.BoolFlag{Name: "siege-weapons", Usage: "Include courtyard siege weapons"},
					&cli.BoolFlag{Name: "village", Usage: "Include a village outside the walls"},
				),
				Action: buildCastle,
			},
		},
	}
}

// placementFlags are shared by every structure generator.
func placementFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64SliceFlag{
			Name:    "location",
			Aliases: []string{"l"},
			Usage:   "Origin as X,Y,Z",
		},
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "Actor name prefix",
		},
	}
}

func placement(c *cli.Context) (build.Vec3, error) {
	loc, err := vec3Flag(c, "location")
	if err != nil {
		return build.Vec3{}, err
	}
	if loc == nil {
		return build.Vec3{}, nil
	}
	return build.Vec3(*loc), nil
}

// runBuild dispatches a plan and prints the report. Progress goes to
// stderr so stdout stays parseable.
func runBuild(c *cli.Context, plan []build.Spawn) error {
	sender, err := newSender(c)
	if err != nil {
		return err
	}
	defer sender.Disconnect()

	ctx, cancel := runContext(c)
	defer cancel()

	bar := output.NewProgressBar(os.Stderr, "spawning")
	report := build.RunProgress(ctx, sender, plan, bar.Update)
	bar.Finish()

	return printData(c, report)
}

func buildPyramid(c *cli.Context) error {
	loc, err := placement(c)
	if err != nil {
		return err
	}
	p := build.Pyramid{
		BaseSize:   c.Int("base-size"),
		BlockSize:  c.Float64("block-size"),
		Location:   loc,
		NamePrefix: c.String("prefix"),
	}
	return runBuild(c, p.Plan())
}

func buildWall(c *cli.Context) error {
	loc, err := placement(c)
	if err != nil {
		return err
	}
	w := build.Wall{
		Length:      c.Int("length"),
		Height:      c.Int("height"),
		BlockSize:   c.Float64("block-size"),
		Location:    loc,
		Orientation: c.String("orientation"),
		NamePrefix:  c.String("prefix"),
	}
	return runBuild(c, w.Plan())
}

func buildTower(c *cli.Context) error {
	loc, err := placement(c)
	if err != nil {
		return err
	}
	t := build.Tower{
		Height:     c.Int("height"),
		BaseSize:   c.Int("base-size"),
		BlockSize:  c.Float64("block-size"),
		Location:   loc,
		NamePrefix: c.String("prefix"),
		Style:      c.String("style"),
	}
	return runBuild(c, t.Plan())
}

func buildStaircase(c *cli.Context) error {
	loc, err := placement(c)
	if err != nil {
		return err
	}
	s := build.Staircase{
		Steps:      c.Int("steps"),
		Location:   loc,
		NamePrefix: c.String("prefix"),
	}
	return runBuild(c, s.Plan())
}

func buildArch(c *cli.Context) error {
	loc, err := placement(c)
	if err != nil {
		return err
	}
	a := build.Arch{
		Radius:     c.Float64("radius"),
		Segments:   c.Int("segments"),
		Location:   loc,
		NamePrefix: c.String("prefix"),
	}
	return runBuild(c, a.Plan())
}

func buildMaze(c *cli.Context) error {
	loc, err := placement(c)
	if err != nil {
		return err
	}
	m := build.Maze{
		Rows:       c.Int("rows"),
		Cols:       c.Int("cols"),
		CellSize:   c.Float64("cell-size"),
		WallHeight: c.Int("wall-height"),
		Location:   loc,
		NamePrefix: c.String("prefix"),
	}
	return runBuild(c, m.Plan())
}

func buildBridge(c *cli.Context) error {
	loc, err := placement(c)
	if err != nil {
		return err
	}
	b := build.SuspensionBridge{
		SpanLength:  c.Float64("span"),
		DeckWidth:   c.Float64("width"),
		TowerHeight: c.Float64("tower-height"),
		Location:    loc,
		NamePrefix:  c.String("prefix"),
	}
	if c.Bool("dry-run") {
		return printData(c, b.Metrics())
	}
	return runBuild(c, b.Plan())
}

func buildTown(c *cli.Context) error {
	loc, err := placement(c)
	if err != nil {
		return err
	}
	t := build.Town{
		Size:                  c.String("size"),
		BuildingDensity:       c.Float64("density"),
		Location:              loc,
		NamePrefix:            c.String("prefix"),
		IncludeInfrastructure: c.Bool("infrastructure"),
		Style:                 c.String("style"),
	}
	plan, stats := t.Plan()
	if err := printData(c, stats); err != nil {
		return err
	}
	return runBuild(c, plan)
}

func buildCastle(c *cli.Context) error {
	loc, err := placement(c)
	if err != nil {
		return err
	}
	ca := build.Castle{
		Size:                c.String("size"),
		Location:            loc,
		NamePrefix:          c.String("prefix"),
		IncludeSiegeWeapons: c.Bool("siege-weapons"),
		IncludeVillage:      c.Bool("village"),
		Style:               c.String("style"),
	}
	return runBuild(c, ca.Plan())
}

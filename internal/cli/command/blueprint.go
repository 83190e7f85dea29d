// Package command provides CLI command definitions for uebridge.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/uebridge-go/internal/blueprint"
	"github.com/yndnr/uebridge-go/internal/cli/output"
)

// BlueprintCommand returns the blueprint subcommand group.
func BlueprintCommand() *cli.Command {
	return &cli.Command{
		Name:    "blueprint",
		Aliases: []string{"bp"},
		Usage:   "Author and inspect Blueprints",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create a new Blueprint class",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "parent",
						Value: "Actor",
						Usage: "Parent class",
					},
				},
				Action: blueprintCreate,
			},
			{
				Name:      "compile",
				Usage:     "Compile a Blueprint",
				ArgsUsage: "NAME",
				Action:    blueprintCompile,
			},
			{
				Name:      "spawn",
				Usage:     "Spawn an actor from a Blueprint",
				ArgsUsage: "BLUEPRINT ACTOR_NAME",
				Flags: []cli.Flag{
					&cli.Float64SliceFlag{
						Name:    "location",
						Aliases: []string{"l"},
						Usage:   "Location as X,Y,Z",
					},
				},
				Action: blueprintSpawn,
			},
			{
				Name:      "read",
				Usage:     "Read a Blueprint's components, variables and graphs",
				ArgsUsage: "PATH",
				Action:    blueprintRead,
			},
			{
				Name:      "graph",
				Usage:     "Analyze a Blueprint event graph",
				ArgsUsage: "PATH",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Value: "EventGraph",
						Usage: "Graph name",
					},
				},
				Action: blueprintGraph,
			},
			{
				Name:      "physics-actor",
				Usage:     "Create and spawn a physics-enabled mesh actor",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mesh",
						Value: "/Engine/BasicShapes/Cube.Cube",
						Usage: "Static mesh asset path",
					},
					&cli.Float64SliceFlag{
						Name:    "location",
						Aliases: []string{"l"},
						Usage:   "Location as X,Y,Z",
					},
					&cli.Float64Flag{
						Name:  "mass",
						Value: 1,
						Usage: "Mass in kilograms",
					},
					&cli.Float64SliceFlag{
						Name:  "color",
						Usage: "Material color as R,G,B or R,G,B,A in [0,1]",
					},
					&cli.Float64SliceFlag{
						Name:    "scale",
						Aliases: []string{"s"},
						Usage:   "Scale as X,Y,Z",
					},
				},
				Action: blueprintPhysicsActor,
			},
			{
				Name:      "color",
				Usage:     "Set the material color of a Blueprint mesh component",
				ArgsUsage: "BLUEPRINT COMPONENT",
				Flags: []cli.Flag{
					&cli.Float64SliceFlag{
						Name:     "color",
						Usage:    "Color as R,G,B or R,G,B,A in [0,1]",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "material",
						Usage: "Material asset path override",
					},
				},
				Action: blueprintColor,
			},
			{
				Name:  "materials",
				Usage: "List available materials",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "search-path",
						Value: "/Game/",
						Usage: "Asset path to search",
					},
					&cli.BoolFlag{
						Name:  "include-engine",
						Usage: "Include engine materials",
					},
				},
				Action: blueprintMaterials,
			},
		},
	}
}

// withBlueprintClient handles the shared connect/dispatch plumbing.
func withBlueprintClient(c *cli.Context, fn func(*cli.Context, *blueprint.Client) error) error {
	sender, err := newSender(c)
	if err != nil {
		return err
	}
	defer sender.Disconnect()
	return fn(c, blueprint.NewClient(sender))
}

func blueprintCreate(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one NAME argument")
	}
	return withBlueprintClient(c, func(c *cli.Context, bp *blueprint.Client) error {
		ctx, cancel := runContext(c)
		defer cancel()
		return printData(c, bp.Create(ctx, c.Args().First(), c.String("parent")))
	})
}

func blueprintCompile(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one NAME argument")
	}
	return withBlueprintClient(c, func(c *cli.Context, bp *blueprint.Client) error {
		ctx, cancel := runContext(c)
		defer cancel()

		name := c.Args().First()
		spin := output.NewSpinner(os.Stderr, "compiling "+name)
		spin.Start()
		resp := bp.Compile(ctx, name)
		if resp.IsError() {
			spin.Fail("compile failed: " + resp.ErrorMessage())
		} else {
			spin.Success("compiled " + name)
		}
		return printData(c, resp)
	})
}

func blueprintSpawn(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected BLUEPRINT and ACTOR_NAME arguments")
	}
	loc, err := vec3Flag(c, "location")
	if err != nil {
		return err
	}
	var location []float64
	if loc != nil {
		location = loc[:]
	}
	return withBlueprintClient(c, func(c *cli.Context, bp *blueprint.Client) error {
		ctx, cancel := runContext(c)
		defer cancel()
		return printData(c, bp.SpawnActor(ctx, c.Args().Get(0), c.Args().Get(1), location))
	})
}

func blueprintRead(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one PATH argument")
	}
	return withBlueprintClient(c, func(c *cli.Context, bp *blueprint.Client) error {
		ctx, cancel := runContext(c)
		defer cancel()
		return printData(c, bp.ReadContent(ctx, c.Args().First(), blueprint.AllContent()))
	})
}

func blueprintGraph(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one PATH argument")
	}
	return withBlueprintClient(c, func(c *cli.Context, bp *blueprint.Client) error {
		ctx, cancel := runContext(c)
		defer cancel()
		return printData(c, bp.AnalyzeGraph(ctx, c.Args().First(), c.String("name")))
	})
}

func blueprintPhysicsActor(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one NAME argument")
	}
	p := blueprint.PhysicsActorParams{
		Name:            c.Args().First(),
		MeshPath:        c.String("mesh"),
		Location:        c.Float64Slice("location"),
		Mass:            c.Float64("mass"),
		SimulatePhysics: true,
		GravityEnabled:  true,
		Color:           c.Float64Slice("color"),
		Scale:           c.Float64Slice("scale"),
	}
	return withBlueprintClient(c, func(c *cli.Context, bp *blueprint.Client) error {
		ctx, cancel := runContext(c)
		defer cancel()
		return printData(c, bp.SpawnPhysicsActor(ctx, p))
	})
}

func blueprintColor(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected BLUEPRINT and COMPONENT arguments")
	}
	return withBlueprintClient(c, func(c *cli.Context, bp *blueprint.Client) error {
		ctx, cancel := runContext(c)
		defer cancel()
		resp := bp.SetMeshColor(ctx,
			c.Args().Get(0), c.Args().Get(1),
			c.Float64Slice("color"), c.String("material"), 0)
		return printData(c, resp)
	})
}

func blueprintMaterials(c *cli.Context) error {
	return withBlueprintClient(c, func(c *cli.Context, bp *blueprint.Client) error {
		ctx, cancel := runContext(c)
		defer cancel()
		return printData(c, bp.AvailableMaterials(ctx, c.String("search-path"), c.Bool("include-engine")))
	})
}

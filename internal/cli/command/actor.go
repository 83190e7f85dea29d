// Package command provides CLI command definitions for uebridge.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/uebridge-go/internal/editor"
)

// ActorCommand returns the actor subcommand group.
func ActorCommand() *cli.Command {
	return &cli.Command{
		Name:  "actor",
		Usage: "Inspect and manipulate level actors",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all actors in the current level",
				Action: actorList,
			},
			{
				Name:      "find",
				Usage:     "Find actors by name pattern",
				ArgsUsage: "PATTERN",
				Action:    actorFind,
			},
			{
				Name:      "delete",
				Usage:     "Delete an actor by name",
				ArgsUsage: "NAME",
				Action:    actorDelete,
			},
			{
				Name:      "spawn",
				Usage:     "Spawn a new actor",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "type",
						Usage: "Actor type",
						Value: "StaticMeshActor",
					},
					&cli.Float64SliceFlag{
						Name:    "location",
						Aliases: []string{"l"},
						Usage:   "Location as X,Y,Z",
					},
					&cli.Float64SliceFlag{
						Name:    "rotation",
						Aliases: []string{"r"},
						Usage:   "Rotation as pitch,yaw,roll",
					},
					&cli.Float64SliceFlag{
						Name:    "scale",
						Aliases: []string{"s"},
						Usage:   "Scale as X,Y,Z",
					},
					&cli.StringFlag{
						Name:  "mesh",
						Usage: "Static mesh asset path",
					},
				},
				Action: actorSpawn,
			},
			{
				Name:      "transform",
				Usage:     "Update an actor's transform",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.Float64SliceFlag{
						Name:    "location",
						Aliases: []string{"l"},
						Usage:   "New location as X,Y,Z",
					},
					&cli.Float64SliceFlag{
						Name:    "rotation",
						Aliases: []string{"r"},
						Usage:   "New rotation as pitch,yaw,roll",
					},
					&cli.Float64SliceFlag{
						Name:    "scale",
						Aliases: []string{"s"},
						Usage:   "New scale as X,Y,Z",
					},
				},
				Action: actorTransform,
			},
			{
				Name:      "open-asset",
				Usage:     "Open an asset in the editor UI",
				ArgsUsage: "ASSET_PATH",
				Action:    actorOpenAsset,
			},
		},
	}
}

func actorList(c *cli.Context) error {
	sender, err := newSender(c)
	if err != nil {
		return err
	}
	defer sender.Disconnect()

	ctx, cancel := runContext(c)
	defer cancel()

	resp := editor.NewClient(sender).GetActorsInLevel(ctx)
	return printData(c, resp)
}

func actorFind(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one PATTERN argument")
	}

	sender, err := newSender(c)
	if err != nil {
		return err
	}
	defer sender.Disconnect()

	ctx, cancel := runContext(c)
	defer cancel()

	resp := editor.NewClient(sender).FindActorsByName(ctx, c.Args().First())
	return printData(c, resp)
}

func actorDelete(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one NAME argument")
	}

	sender, err := newSender(c)
	if err != nil {
		return err
	}
	defer sender.Disconnect()

	ctx, cancel := runContext(c)
	defer cancel()

	resp := editor.NewClient(sender).DeleteActor(ctx, c.Args().First())
	return printData(c, resp)
}

func actorSpawn(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one NAME argument")
	}

	p := editor.SpawnParams{
		Name:       c.Args().First(),
		Type:       c.String("type"),
		StaticMesh: c.String("mesh"),
	}
	if loc, err := vec3Flag(c, "location"); err != nil {
		return err
	} else if loc != nil {
		p.Location = *loc
	}
	if rot, err := vec3Flag(c, "rotation"); err != nil {
		return err
	} else if rot != nil {
		p.Rotation = *rot
	}
	if scale, err := vec3Flag(c, "scale"); err != nil {
		return err
	} else if scale != nil {
		p.Scale = *scale
	}

	sender, err := newSender(c)
	if err != nil {
		return err
	}
	defer sender.Disconnect()

	ctx, cancel := runContext(c)
	defer cancel()

	resp := editor.NewClient(sender).SpawnActor(ctx, p)
	return printData(c, resp)
}

func actorTransform(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one NAME argument")
	}

	var t editor.Transform
	var err error
	if t.Location, err = vec3Flag(c, "location"); err != nil {
		return err
	}
	if t.Rotation, err = vec3Flag(c, "rotation"); err != nil {
		return err
	}
	if t.Scale, err = vec3Flag(c, "scale"); err != nil {
		return err
	}
	if t.Location == nil && t.Rotation == nil && t.Scale == nil {
		return fmt.Errorf("at least one of --location, --rotation, --scale is required")
	}

	sender, err := newSender(c)
	if err != nil {
		return err
	}
	defer sender.Disconnect()

	ctx, cancel := runContext(c)
	defer cancel()

	resp := editor.NewClient(sender).SetActorTransform(ctx, c.Args().First(), t)
	return printData(c, resp)
}

func actorOpenAsset(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one ASSET_PATH argument")
	}

	sender, err := newSender(c)
	if err != nil {
		return err
	}
	defer sender.Disconnect()

	ctx, cancel := runContext(c)
	defer cancel()

	resp := editor.NewClient(sender).OpenAsset(ctx, c.Args().First())
	return printData(c, resp)
}

// vec3Flag reads a three-component float slice flag. An unset flag
// returns nil.
func vec3Flag(c *cli.Context, name string) (*[3]float64, error) {
	vals := c.Float64Slice(name)
	if len(vals) == 0 {
		return nil, nil
	}
	if len(vals) != 3 {
		return nil, fmt.Errorf("--%s needs exactly three components, got %d", name, len(vals))
	}
	return &[3]float64{vals[0], vals[1], vals[2]}, nil
}

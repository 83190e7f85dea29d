package gateway

import (
	"context"
	"encoding/json"

	"github.com/yndnr/uebridge-go/internal/blueprint"
	"github.com/yndnr/uebridge-go/internal/build"
	"github.com/yndnr/uebridge-go/internal/editor"
	"github.com/yndnr/uebridge-go/internal/protocol"
)

// DefaultTools returns the registry of built-in tools, all dispatching
// through the given sender.
func DefaultTools(s Sender) *Registry {
	reg := NewRegistry()
	ed := editor.NewClient(s)
	bp := blueprint.NewClient(s)

	reg.Register(Tool{
		Name:        "get_actors_in_level",
		Description: "List every actor in the current level",
		Handler: func(ctx context.Context, _ map[string]any) protocol.Response {
			return ed.GetActorsInLevel(ctx)
		},
	})
	reg.Register(Tool{
		Name:        "find_actors_by_name",
		Description: "Find actors whose name matches a pattern",
		Handler: func(ctx context.Context, params map[string]any) protocol.Response {
			var p struct {
				Pattern string `json:"pattern"`
			}
			if resp, ok := decode(params, &p); !ok {
				return resp
			}
			return ed.FindActorsByName(ctx, p.Pattern)
		},
	})
	reg.Register(Tool{
		Name:        "delete_actor",
		Description: "Delete the named actor from the level",
		Handler: func(ctx context.Context, params map[string]any) protocol.Response {
			var p struct {
				Name string `json:"name"`
			}
			if resp, ok := decode(params, &p); !ok {
				return resp
			}
			return ed.DeleteActor(ctx, p.Name)
		},
	})
	reg.Register(Tool{
		Name:        "set_actor_transform",
		Description: "Update an actor's location, rotation or scale",
		Handler: func(ctx context.Context, params map[string]any) protocol.Response {
			var p struct {
				Name string `json:"name"`
				editor.Transform
			}
			if resp, ok := decode(params, &p); !ok {
				return resp
			}
			return ed.SetActorTransform(ctx, p.Name, p.Transform)
		},
	})
	reg.Register(Tool{
		Name:        "spawn_actor",
		Description: "Spawn a single actor in the level",
		Handler: func(ctx context.Context, params map[string]any) protocol.Response {
			var p editor.SpawnParams
			if resp, ok := decode(params, &p); !ok {
				return resp
			}
			return ed.SpawnActor(ctx, p)
		},
	})
	reg.Register(Tool{
		Name:        "open_asset",
		Description: "Open an asset in the editor UI",
		Handler: func(ctx context.Context, params map[string]any) protocol.Response {
			var p struct {
				AssetPath string `json:"asset_path"`
			}
			if resp, ok := decode(params, &p); !ok {
				return resp
			}
			return ed.OpenAsset(ctx, p.AssetPath)
		},
	})

	reg.Register(Tool{
		Name:        "spawn_physics_actor",
		Description: "Create and spawn a physics-enabled mesh actor",
		Handler: func(ctx context.Context, params map[string]any) protocol.Response {
			var p blueprint.PhysicsActorParams
			if resp, ok := decode(params, &p); !ok {
				return resp
			}
			return bp.SpawnPhysicsActor(ctx, p)
		},
	})
	reg.Register(Tool{
		Name:        "set_mesh_color",
		Description: "Set the material color of a Blueprint mesh component",
		Handler: func(ctx context.Context, params map[string]any) protocol.Response {
			var p struct {
				BlueprintName string    `json:"blueprint_name"`
				ComponentName string    `json:"component_name"`
				Color         []float64 `json:"color"`
				MaterialPath  string    `json:"material_path"`
				MaterialSlot  int       `json:"material_slot"`
			}
			if resp, ok := decode(params, &p); !ok {
				return resp
			}
			return bp.SetMeshColor(ctx, p.BlueprintName, p.ComponentName, p.Color, p.MaterialPath, p.MaterialSlot)
		},
	})

	registerBuildTool(reg, s, "build_pyramid", "Build a stepped pyramid of blocks",
		func(p build.Pyramid) []build.Spawn { return p.Plan() })
	registerBuildTool(reg, s, "build_wall", "Build a flat wall of blocks",
		func(p build.Wall) []build.Spawn { return p.Plan() })
	registerBuildTool(reg, s, "build_tower", "Build a cylindrical, square or tapered tower",
		func(p build.Tower) []build.Spawn { return p.Plan() })
	registerBuildTool(reg, s, "build_staircase", "Build a straight staircase",
		func(p build.Staircase) []build.Spawn { return p.Plan() })
	registerBuildTool(reg, s, "build_arch", "Build a semicircular arch",
		func(p build.Arch) []build.Spawn { return p.Plan() })
	registerBuildTool(reg, s, "build_maze", "Generate and build a solvable maze",
		func(p build.Maze) []build.Spawn { return p.Plan() })
	registerBuildTool(reg, s, "build_castle", "Build a walled castle with towers and a keep",
		func(p build.Castle) []build.Spawn { return p.Plan() })

	reg.Register(Tool{
		Name:        "build_suspension_bridge",
		Description: "Build a twin-tower suspension bridge",
		Handler: func(ctx context.Context, params map[string]any) protocol.Response {
			var p build.SuspensionBridge
			if resp, ok := decode(params, &p); !ok {
				return resp
			}
			if dryRun(params) {
				return protocol.Response{
					"status":  protocol.StatusSuccess,
					"dry_run": true,
					"metrics": p.Metrics(),
				}
			}
			return runPlan(ctx, s, p.Plan(), nil)
		},
	})
	reg.Register(Tool{
		Name:        "build_town",
		Description: "Build a procedural town with streets and buildings",
		Handler: func(ctx context.Context, params map[string]any) protocol.Response {
			var p build.Town
			if resp, ok := decode(params, &p); !ok {
				return resp
			}
			plan, stats := p.Plan()
			if dryRun(params) {
				return protocol.Response{
					"status":  protocol.StatusSuccess,
					"dry_run": true,
					"stats":   stats,
				}
			}
			return runPlan(ctx, s, plan, map[string]any{"stats": stats})
		},
	})

	return reg
}

// registerBuildTool registers a tool whose params decode into a
// planner and whose plan is dispatched spawn by spawn.
func registerBuildTool[P any](reg *Registry, s Sender, name, desc string, plan func(P) []build.Spawn) {
	reg.Register(Tool{
		Name:        name,
		Description: desc,
		Handler: func(ctx context.Context, params map[string]any) protocol.Response {
			var p P
			if resp, ok := decode(params, &p); !ok {
				return resp
			}
			spawns := plan(p)
			if dryRun(params) {
				return protocol.Response{
					"status":  protocol.StatusSuccess,
					"dry_run": true,
					"actors":  len(spawns),
				}
			}
			return runPlan(ctx, s, spawns, nil)
		},
	})
}

func runPlan(ctx context.Context, s Sender, plan []build.Spawn, extra map[string]any) protocol.Response {
	report := build.Run(ctx, s, plan)
	status := protocol.StatusSuccess
	if report.Spawned == 0 && report.Requested > 0 {
		status = protocol.StatusError
	}
	resp := protocol.Response{
		"status": status,
		"report": report,
	}
	for k, v := range extra {
		resp[k] = v
	}
	return resp
}

func dryRun(params map[string]any) bool {
	v, ok := params["dry_run"].(bool)
	return ok && v
}

// decode converts loosely typed request params into a typed struct.
// The second return value is false when decoding failed, in which
// case the first holds the error response to hand back.
func decode(params map[string]any, v any) (protocol.Response, bool) {
	raw, err := json.Marshal(params)
	if err != nil {
		return protocol.ErrorResponse("invalid parameters: " + err.Error()), false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return protocol.ErrorResponse("invalid parameters: " + err.Error()), false
	}
	return nil, true
}

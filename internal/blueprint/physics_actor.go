package blueprint

import (
	"context"
	"fmt"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// PhysicsActorParams describes a one-shot physics actor: a temporary
// Blueprint with a single mesh component, physics settings and an
// optional color, spawned straight into the level.
type PhysicsActorParams struct {
	Name            string    `json:"name"`
	MeshPath        string    `json:"mesh_path"`
	Location        []float64 `json:"location"`
	Mass            float64   `json:"mass"`
	SimulatePhysics bool      `json:"simulate_physics"`
	GravityEnabled  bool      `json:"gravity_enabled"`
	// Color is RGB or RGBA in [0,1]. Nil leaves the default material.
	Color []float64 `json:"color"`
	Scale []float64 `json:"scale"`
}

// SpawnPhysicsActor builds and spawns a physics-enabled actor in one
// call: it creates a scratch Blueprint named <name>_BP, wires up the
// mesh, physics and color, compiles, and spawns it at the location.
// The first failing step aborts the sequence and its error is
// returned.
func (c *Client) SpawnPhysicsActor(ctx context.Context, p PhysicsActorParams) protocol.Response {
	if p.MeshPath == "" {
		p.MeshPath = "/Engine/BasicShapes/Cube.Cube"
	}
	if p.Scale == nil {
		p.Scale = []float64{1, 1, 1}
	}
	bp := p.Name + "_BP"

	if resp := c.Create(ctx, bp, "Actor"); resp.IsError() {
		return stepError("create blueprint", resp)
	}
	if resp := c.AddComponent(ctx, ComponentParams{
		Blueprint: bp,
		Type:      "StaticMeshComponent",
		Name:      "Mesh",
		Scale:     p.Scale,
	}); resp.IsError() {
		return stepError("add mesh component", resp)
	}
	if resp := c.SetStaticMesh(ctx, bp, "Mesh", p.MeshPath); resp.IsError() {
		return stepError("set static mesh", resp)
	}
	phys := PhysicsParams{
		SimulatePhysics: p.SimulatePhysics,
		GravityEnabled:  p.GravityEnabled,
		Mass:            p.Mass,
		LinearDamping:   0.01,
	}
	if phys.Mass <= 0 {
		phys.Mass = 1
	}
	if resp := c.SetPhysics(ctx, bp, "Mesh", phys); resp.IsError() {
		return stepError("set physics", resp)
	}
	if p.Color != nil {
		// Color failures are not fatal; the actor still spawns with
		// the default material.
		c.SetMeshColor(ctx, bp, "Mesh", p.Color, "", 0)
	}
	if resp := c.Compile(ctx, bp); resp.IsError() {
		return stepError("compile blueprint", resp)
	}
	resp := c.SpawnActor(ctx, bp, p.Name, p.Location)
	if resp.IsError() {
		return stepError("spawn actor", resp)
	}

	spawned := p.Name
	if result, ok := resp["result"].(map[string]any); ok {
		if n, ok := result["name"].(string); ok && n != "" {
			spawned = n
		}
	}
	c.s.Send(ctx, "set_actor_transform", map[string]any{
		"name":  spawned,
		"scale": p.Scale,
	})
	return resp
}

func stepError(step string, resp protocol.Response) protocol.Response {
	return protocol.ErrorResponse(fmt.Sprintf("%s: %s", step, resp.ErrorMessage()))
}

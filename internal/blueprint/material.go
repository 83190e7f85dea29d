package blueprint

import (
	"context"
	"fmt"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// DefaultShapeMaterial is the material used for coloring basic shapes.
const DefaultShapeMaterial = "/Engine/BasicShapes/BasicShapeMaterial"

// AvailableMaterials lists material assets under the search path. The
// editor treats this as a slow command.
func (c *Client) AvailableMaterials(ctx context.Context, searchPath string, includeEngine bool) protocol.Response {
	if searchPath == "" {
		searchPath = "/Game/"
	}
	return c.s.Send(ctx, "get_available_materials", map[string]any{
		"search_path":              searchPath,
		"include_engine_materials": includeEngine,
	})
}

// ApplyMaterialToActor assigns the material to a slot on a level actor.
func (c *Client) ApplyMaterialToActor(ctx context.Context, actor, materialPath string, slot int) protocol.Response {
	return c.s.Send(ctx, "apply_material_to_actor", map[string]any{
		"actor_name":    actor,
		"material_path": materialPath,
		"material_slot": slot,
	})
}

// ApplyMaterialToComponent assigns the material to a slot on a
// Blueprint component.
func (c *Client) ApplyMaterialToComponent(ctx context.Context, blueprint, component, materialPath string, slot int) protocol.Response {
	return c.s.Send(ctx, "apply_material_to_blueprint", map[string]any{
		"blueprint_name": blueprint,
		"component_name": component,
		"material_path":  materialPath,
		"material_slot":  slot,
	})
}

// ActorMaterialInfo reports the materials applied to a level actor.
func (c *Client) ActorMaterialInfo(ctx context.Context, actor string) protocol.Response {
	return c.s.Send(ctx, "get_actor_material_info", map[string]any{"actor_name": actor})
}

// NormalizeColor validates an RGB or RGBA color and returns it as
// RGBA with every channel clamped to [0, 1]. A three-channel color
// gets alpha 1.
func NormalizeColor(color []float64) ([4]float64, error) {
	var out [4]float64
	switch len(color) {
	case 3:
		out = [4]float64{color[0], color[1], color[2], 1}
	case 4:
		copy(out[:], color)
	default:
		return out, fmt.Errorf("invalid color %v: want [R,G,B] or [R,G,B,A]", color)
	}
	for i, v := range out {
		if v < 0 {
			out[i] = 0
		} else if v > 1 {
			out[i] = 1
		}
	}
	return out, nil
}

// SetMeshColor sets the material color on a mesh component. Some
// materials expose the parameter as BaseColor and some as Color, so
// both are written; the call succeeds if either write does.
func (c *Client) SetMeshColor(ctx context.Context, blueprint, component string, color []float64, materialPath string, slot int) protocol.Response {
	rgba, err := NormalizeColor(color)
	if err != nil {
		return protocol.ErrorResponse(err.Error())
	}
	if materialPath == "" {
		materialPath = DefaultShapeMaterial
	}
	params := func(parameter string) map[string]any {
		return map[string]any{
			"blueprint_name": blueprint,
			"component_name": component,
			"color":          rgba[:],
			"material_path":  materialPath,
			"parameter_name": parameter,
			"material_slot":  slot,
		}
	}
	base := c.s.Send(ctx, "set_mesh_material_color", params("BaseColor"))
	alt := c.s.Send(ctx, "set_mesh_material_color", params("Color"))
	if base.IsError() && alt.IsError() {
		return protocol.ErrorResponse(fmt.Sprintf(
			"failed to set color on slot %d: BaseColor: %s; Color: %s",
			slot, base.ErrorMessage(), alt.ErrorMessage()))
	}
	return protocol.Response{
		"status":            protocol.StatusSuccess,
		"message":           fmt.Sprintf("color applied to slot %d: %v", slot, rgba[:]),
		"base_color_result": map[string]any(base),
		"color_result":      map[string]any(alt),
		"material_slot":     slot,
	}
}

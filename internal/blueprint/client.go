package blueprint

import (
	"context"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// Sender dispatches one command and returns its normalized response.
// Satisfied by *engine.Conn.
type Sender interface {
	Send(ctx context.Context, command string, params any) protocol.Response
}

// Client issues Blueprint-authoring commands over the bridge.
type Client struct {
	s Sender
}

func NewClient(s Sender) *Client {
	return &Client{s: s}
}

// Create makes a new Blueprint class deriving from parentClass.
func (c *Client) Create(ctx context.Context, name, parentClass string) protocol.Response {
	return c.s.Send(ctx, "create_blueprint", map[string]any{
		"name":         name,
		"parent_class": parentClass,
	})
}

// ComponentParams describes a component to add to a Blueprint.
type ComponentParams struct {
	Blueprint  string
	Type       string
	Name       string
	Location   []float64
	Rotation   []float64
	Scale      []float64
	Properties map[string]any
}

// AddComponent adds a component to a Blueprint.
func (c *Client) AddComponent(ctx context.Context, p ComponentParams) protocol.Response {
	props := p.Properties
	if props == nil {
		props = map[string]any{}
	}
	return c.s.Send(ctx, "add_component_to_blueprint", map[string]any{
		"blueprint_name":       p.Blueprint,
		"component_type":       p.Type,
		"component_name":       p.Name,
		"location":             emptyIfNil(p.Location),
		"rotation":             emptyIfNil(p.Rotation),
		"scale":                emptyIfNil(p.Scale),
		"component_properties": props,
	})
}

// SetStaticMesh assigns a mesh asset to a StaticMeshComponent.
func (c *Client) SetStaticMesh(ctx context.Context, blueprint, component, mesh string) protocol.Response {
	return c.s.Send(ctx, "set_static_mesh_properties", map[string]any{
		"blueprint_name": blueprint,
		"component_name": component,
		"static_mesh":    mesh,
	})
}

// PhysicsParams holds physics settings for a component.
type PhysicsParams struct {
	SimulatePhysics bool
	GravityEnabled  bool
	Mass            float64
	LinearDamping   float64
	AngularDamping  float64
}

// DefaultPhysics returns the editor's default physics settings.
func DefaultPhysics() PhysicsParams {
	return PhysicsParams{
		SimulatePhysics: true,
		GravityEnabled:  true,
		Mass:            1,
		LinearDamping:   0.01,
		AngularDamping:  0,
	}
}

// SetPhysics applies physics settings to a component.
func (c *Client) SetPhysics(ctx context.Context, blueprint, component string, p PhysicsParams) protocol.Response {
	return c.s.Send(ctx, "set_physics_properties", map[string]any{
		"blueprint_name":   blueprint,
		"component_name":   component,
		"simulate_physics": p.SimulatePhysics,
		"gravity_enabled":  p.GravityEnabled,
		"mass":             p.Mass,
		"linear_damping":   p.LinearDamping,
		"angular_damping":  p.AngularDamping,
	})
}

// Compile compiles the Blueprint.
func (c *Client) Compile(ctx context.Context, name string) protocol.Response {
	return c.s.Send(ctx, "compile_blueprint", map[string]any{"blueprint_name": name})
}

// SpawnActor spawns an instance of the Blueprint into the level.
func (c *Client) SpawnActor(ctx context.Context, blueprint, actorName string, location []float64) protocol.Response {
	return c.s.Send(ctx, "spawn_blueprint_actor", map[string]any{
		"blueprint_name": blueprint,
		"actor_name":     actorName,
		"location":       emptyIfNil(location),
	})
}

// ContentOptions filters what ReadContent returns.
type ContentOptions struct {
	EventGraph bool
	Functions  bool
	Variables  bool
	Components bool
	Interfaces bool
}

// AllContent selects every section.
func AllContent() ContentOptions {
	return ContentOptions{
		EventGraph: true, Functions: true, Variables: true,
		Components: true, Interfaces: true,
	}
}

// ReadContent reads the full structure of a Blueprint asset.
func (c *Client) ReadContent(ctx context.Context, path string, o ContentOptions) protocol.Response {
	return c.s.Send(ctx, "read_blueprint_content", map[string]any{
		"blueprint_path":      path,
		"include_event_graph": o.EventGraph,
		"include_functions":   o.Functions,
		"include_variables":   o.Variables,
		"include_components":  o.Components,
		"include_interfaces":  o.Interfaces,
	})
}

// AnalyzeGraph inspects one graph of a Blueprint. graph defaults to
// the event graph.
func (c *Client) AnalyzeGraph(ctx context.Context, path, graph string) protocol.Response {
	if graph == "" {
		graph = "EventGraph"
	}
	return c.s.Send(ctx, "analyze_blueprint_graph", map[string]any{
		"blueprint_path":          path,
		"graph_name":              graph,
		"include_node_details":    true,
		"include_pin_connections": true,
		"trace_execution_flow":    true,
	})
}

// VariableDetails reports a variable's type, default and usage. An
// empty name returns every variable.
func (c *Client) VariableDetails(ctx context.Context, path, variable string) protocol.Response {
	params := map[string]any{"blueprint_path": path}
	if variable != "" {
		params["variable_name"] = variable
	}
	return c.s.Send(ctx, "get_blueprint_variable_details", params)
}

// FunctionDetails reports a function's signature and graph. An empty
// name returns every function.
func (c *Client) FunctionDetails(ctx context.Context, path, function string) protocol.Response {
	params := map[string]any{
		"blueprint_path": path,
		"include_graph":  true,
	}
	if function != "" {
		params["function_name"] = function
	}
	return c.s.Send(ctx, "get_blueprint_function_details", params)
}

func emptyIfNil(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}

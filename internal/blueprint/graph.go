package blueprint

import (
	"context"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// NodeParams describes a graph node to create. Only the fields
// relevant to the node type need to be set; zero values are omitted
// from the command.
type NodeParams struct {
	Blueprint string
	Type      string
	PosX      float64
	PosY      float64
	// Message is the text for Print nodes.
	Message string
	// EventType names the event for Event nodes (BeginPlay, Tick, ...).
	EventType string
	// Variable names the variable for VariableGet/VariableSet nodes.
	Variable string
	// TargetFunction names the callee for CallFunction nodes.
	TargetFunction string
	// TargetBlueprint optionally scopes TargetFunction to a Blueprint.
	TargetBlueprint string
	// Function places the node in a function graph instead of the
	// event graph.
	Function string
}

// AddNode creates a node in a Blueprint graph.
func (c *Client) AddNode(ctx context.Context, p NodeParams) protocol.Response {
	params := map[string]any{
		"blueprint_name": p.Blueprint,
		"node_type":      p.Type,
		"pos_x":          p.PosX,
		"pos_y":          p.PosY,
	}
	if p.Message != "" {
		params["message"] = p.Message
	}
	if p.EventType != "" {
		params["event_type"] = p.EventType
	}
	if p.Variable != "" {
		params["variable_name"] = p.Variable
	}
	if p.TargetFunction != "" {
		params["target_function"] = p.TargetFunction
	}
	if p.TargetBlueprint != "" {
		params["target_blueprint"] = p.TargetBlueprint
	}
	if p.Function != "" {
		params["function_name"] = p.Function
	}
	return c.s.Send(ctx, "add_node", params)
}

// Connection identifies a pin-to-pin link between two nodes.
type Connection struct {
	Blueprint  string
	SourceNode string
	SourcePin  string
	TargetNode string
	TargetPin  string
	// Function scopes the connection to a function graph.
	Function string
}

// ConnectNodes links a source pin to a target pin.
func (c *Client) ConnectNodes(ctx context.Context, conn Connection) protocol.Response {
	params := map[string]any{
		"blueprint_name":  conn.Blueprint,
		"source_node_id":  conn.SourceNode,
		"source_pin_name": conn.SourcePin,
		"target_node_id":  conn.TargetNode,
		"target_pin_name": conn.TargetPin,
	}
	if conn.Function != "" {
		params["function_name"] = conn.Function
	}
	return c.s.Send(ctx, "connect_nodes", params)
}

// AddEventNode creates a specialized event node (ReceiveBeginPlay,
// ReceiveTick, ...) in the event graph.
func (c *Client) AddEventNode(ctx context.Context, blueprint, event string, posX, posY float64) protocol.Response {
	return c.s.Send(ctx, "add_event_node", map[string]any{
		"blueprint_name": blueprint,
		"event_name":     event,
		"pos_x":          posX,
		"pos_y":          posY,
	})
}

// DeleteNode removes a node and its connections from a graph.
func (c *Client) DeleteNode(ctx context.Context, blueprint, nodeID, function string) protocol.Response {
	params := map[string]any{
		"blueprint_name": blueprint,
		"node_id":        nodeID,
	}
	if function != "" {
		params["function_name"] = function
	}
	return c.s.Send(ctx, "delete_node", params)
}

// NodeProperty describes a node edit: either a legacy property write
// (Name/Value) or a semantic action with its parameters.
type NodeProperty struct {
	Blueprint string
	NodeID    string
	Function  string

	// Legacy property write.
	Name  string
	Value any

	// Semantic actions: add_pin, remove_pin, set_enum_type,
	// set_pin_type, set_value_type, set_cast_target,
	// set_function_call, set_event_type.
	Action         string
	PinType        string
	PinName        string
	EnumType       string
	NewType        string
	TargetType     string
	TargetFunction string
	TargetClass    string
	EventType      string
}

// SetNodeProperty applies a property write or semantic action to a
// node.
func (c *Client) SetNodeProperty(ctx context.Context, p NodeProperty) protocol.Response {
	params := map[string]any{
		"blueprint_name": p.Blueprint,
		"node_id":        p.NodeID,
	}
	if p.Function != "" {
		params["function_name"] = p.Function
	}
	if p.Action == "" {
		params["property_name"] = p.Name
		params["property_value"] = p.Value
		return c.s.Send(ctx, "set_node_property", params)
	}
	params["action"] = p.Action
	for k, v := range map[string]string{
		"pin_type":        p.PinType,
		"pin_name":        p.PinName,
		"enum_type":       p.EnumType,
		"new_type":        p.NewType,
		"target_type":     p.TargetType,
		"target_function": p.TargetFunction,
		"target_class":    p.TargetClass,
		"event_type":      p.EventType,
	} {
		if v != "" {
			params[k] = v
		}
	}
	return c.s.Send(ctx, "set_node_property", params)
}

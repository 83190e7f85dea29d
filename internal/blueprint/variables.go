package blueprint

import (
	"context"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// VariableParams describes a Blueprint variable to create.
type VariableParams struct {
	Blueprint string
	Name      string
	Type      string // bool, int, float, string, vector, rotator
	Default   any
	Public    bool
	Tooltip   string
	Category  string
}

// CreateVariable adds a variable to a Blueprint.
func (c *Client) CreateVariable(ctx context.Context, p VariableParams) protocol.Response {
	if p.Category == "" {
		p.Category = "Default"
	}
	return c.s.Send(ctx, "create_variable", map[string]any{
		"blueprint_name": p.Blueprint,
		"variable_name":  p.Name,
		"variable_type":  p.Type,
		"default_value":  p.Default,
		"is_public":      p.Public,
		"tooltip":        p.Tooltip,
		"category":       p.Category,
	})
}

// VariableProperties carries optional updates to an existing
// variable. Nil fields are left unchanged.
type VariableProperties struct {
	Blueprint string
	Name      string

	NewName           *string
	NewType           *string
	BlueprintReadable *bool
	InstanceEditable  *bool
	ExposeOnSpawn     *bool
	Tooltip           *string
	Category          *string
}

// SetVariableProperties updates variable metadata and typing.
func (c *Client) SetVariableProperties(ctx context.Context, p VariableProperties) protocol.Response {
	params := map[string]any{
		"blueprint_name": p.Blueprint,
		"variable_name":  p.Name,
	}
	if p.NewName != nil {
		params["var_name"] = *p.NewName
	}
	if p.NewType != nil {
		params["var_type"] = *p.NewType
	}
	if p.BlueprintReadable != nil {
		params["is_blueprint_readable"] = *p.BlueprintReadable
	}
	if p.InstanceEditable != nil {
		params["is_instance_editable"] = *p.InstanceEditable
	}
	if p.ExposeOnSpawn != nil {
		params["expose_on_spawn"] = *p.ExposeOnSpawn
	}
	if p.Tooltip != nil {
		params["tooltip"] = *p.Tooltip
	}
	if p.Category != nil {
		params["category"] = *p.Category
	}
	return c.s.Send(ctx, "set_blueprint_variable_properties", params)
}

// CreateFunction adds a new function graph to a Blueprint.
func (c *Client) CreateFunction(ctx context.Context, blueprint, function, returnType string) protocol.Response {
	if returnType == "" {
		returnType = "void"
	}
	return c.s.Send(ctx, "create_function", map[string]any{
		"blueprint_name": blueprint,
		"function_name":  function,
		"return_type":    returnType,
	})
}

// AddFunctionInput adds an input parameter to a Blueprint function.
func (c *Client) AddFunctionInput(ctx context.Context, blueprint, function, param, paramType string, isArray bool) protocol.Response {
	return c.s.Send(ctx, "add_function_input", map[string]any{
		"blueprint_name": blueprint,
		"function_name":  function,
		"param_name":     param,
		"param_type":     paramType,
		"is_array":       isArray,
	})
}

// AddFunctionOutput adds an output parameter to a Blueprint function.
func (c *Client) AddFunctionOutput(ctx context.Context, blueprint, function, param, paramType string, isArray bool) protocol.Response {
	return c.s.Send(ctx, "add_function_output", map[string]any{
		"blueprint_name": blueprint,
		"function_name":  function,
		"param_name":     param,
		"param_type":     paramType,
		"is_array":       isArray,
	})
}

// DeleteFunction removes a function graph from a Blueprint.
func (c *Client) DeleteFunction(ctx context.Context, blueprint, function string) protocol.Response {
	return c.s.Send(ctx, "delete_function", map[string]any{
		"blueprint_name": blueprint,
		"function_name":  function,
	})
}

// RenameFunction renames a Blueprint function.
func (c *Client) RenameFunction(ctx context.Context, blueprint, oldName, newName string) protocol.Response {
	return c.s.Send(ctx, "rename_function", map[string]any{
		"blueprint_name":    blueprint,
		"old_function_name": oldName,
		"new_function_name": newName,
	})
}

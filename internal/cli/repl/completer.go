// Package repl provides the interactive REPL mode for the uebridge CLI.
package repl

import "strings"

// Completer provides command completion for the REPL.
type Completer struct {
	commands []string
}

// NewCompleter creates a new Completer.
func NewCompleter() *Completer {
	return &Completer{
		commands: []string{
			"get_actors_in_level", "find_actors_by_name", "spawn_actor", "delete_actor",
			"set_actor_transform", "open_asset_in_editor",
			"create_blueprint", "add_component_to_blueprint", "set_static_mesh_properties",
			"set_physics_properties", "compile_blueprint", "spawn_blueprint_actor",
			"set_mesh_material_color", "get_available_materials", "apply_material_to_actor",
			"add_node", "connect_nodes", "add_event_node", "delete_node", "set_node_property",
			"create_variable", "set_blueprint_variable_properties",
			"create_function", "add_function_input", "add_function_output",
			"delete_function", "rename_function",
			"help", "exit", "quit",
		},
	}
}

// Complete returns completion suggestions for the given prefix.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}

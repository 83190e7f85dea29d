package gateway

import (
	"context"
	"sort"

	"github.com/yndnr/uebridge-go/internal/protocol"
	"github.com/yndnr/uebridge-go/pkg/cmap"
)

// ToolFunc executes a named tool with decoded parameters.
type ToolFunc func(ctx context.Context, params map[string]any) protocol.Response

// Tool is a named operation exposed over the HTTP API.
type Tool struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Handler     ToolFunc `json:"-"`
}

// Registry holds the tools available to API clients.
//
// Registration and lookup are safe for concurrent use.
type Registry struct {
	tools *cmap.Map[string, Tool]
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: cmap.New[string, Tool]()}
}

// Register adds or replaces a tool by name.
func (r *Registry) Register(t Tool) {
	if t.Name == "" || t.Handler == nil {
		return
	}
	r.tools.Set(t.Name, t)
}

// Get returns the tool with the given name.
func (r *Registry) Get(name string) (Tool, bool) {
	return r.tools.Get(name)
}

// List returns all registered tools sorted by name.
func (r *Registry) List() []Tool {
	tools := r.tools.Values()
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	return r.tools.Count()
}

package editor

import (
	"context"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// Sender dispatches one command and returns its normalized response.
// Satisfied by *engine.Conn.
type Sender interface {
	Send(ctx context.Context, command string, params any) protocol.Response
}

// Client issues actor-level commands over the bridge.
type Client struct {
	s Sender
}

func NewClient(s Sender) *Client {
	return &Client{s: s}
}

// GetActorsInLevel lists every actor in the current level.
func (c *Client) GetActorsInLevel(ctx context.Context) protocol.Response {
	return c.s.Send(ctx, "get_actors_in_level", map[string]any{})
}

// FindActorsByName finds actors whose names match the pattern.
func (c *Client) FindActorsByName(ctx context.Context, pattern string) protocol.Response {
	return c.s.Send(ctx, "find_actors_by_name", map[string]any{"pattern": pattern})
}

// DeleteActor removes the named actor from the level.
func (c *Client) DeleteActor(ctx context.Context, name string) protocol.Response {
	return c.s.Send(ctx, "delete_actor", map[string]any{"name": name})
}

// Transform carries the optional parts of a transform update. Nil
// fields are left untouched on the actor.
type Transform struct {
	Location *[3]float64 `json:"location"`
	Rotation *[3]float64 `json:"rotation"`
	Scale    *[3]float64 `json:"scale"`
}

// SetActorTransform updates the named actor's transform. Only the
// fields set on t are sent.
func (c *Client) SetActorTransform(ctx context.Context, name string, t Transform) protocol.Response {
	params := map[string]any{"name": name}
	if t.Location != nil {
		params["location"] = t.Location[:]
	}
	if t.Rotation != nil {
		params["rotation"] = t.Rotation[:]
	}
	if t.Scale != nil {
		params["scale"] = t.Scale[:]
	}
	return c.s.Send(ctx, "set_actor_transform", params)
}

// SpawnParams describes one actor to spawn.
type SpawnParams struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Location   [3]float64 `json:"location"`
	Rotation   [3]float64 `json:"rotation"`
	Scale      [3]float64 `json:"scale"`
	StaticMesh string     `json:"static_mesh"`
}

// SpawnActor places a new actor in the level.
func (c *Client) SpawnActor(ctx context.Context, p SpawnParams) protocol.Response {
	if p.Type == "" {
		p.Type = "StaticMeshActor"
	}
	if p.Scale == ([3]float64{}) {
		p.Scale = [3]float64{1, 1, 1}
	}
	params := map[string]any{
		"name":     p.Name,
		"type":     p.Type,
		"location": p.Location[:],
		"rotation": p.Rotation[:],
		"scale":    p.Scale[:],
	}
	if p.StaticMesh != "" {
		params["static_mesh"] = p.StaticMesh
	}
	return c.s.Send(ctx, "spawn_actor", params)
}

// OpenAsset opens the asset at the given path in the editor UI.
func (c *Client) OpenAsset(ctx context.Context, assetPath string) protocol.Response {
	return c.s.Send(ctx, "open_asset_in_editor", map[string]any{"asset_path": assetPath})
}

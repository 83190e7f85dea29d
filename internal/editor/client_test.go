package editor

import (
	"context"
	"testing"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// ============================================================
// Client Tests
// ============================================================

type capture struct {
	command string
	params  map[string]any
	resp    protocol.Response
}

func (c *capture) Send(_ context.Context, command string, params any) protocol.Response {
	c.command = command
	c.params, _ = params.(map[string]any)
	if c.resp == nil {
		return protocol.Response{"status": protocol.StatusSuccess}
	}
	return c.resp
}

func TestClient_GetActorsInLevel(t *testing.T) {
	cap := &capture{}
	NewClient(cap).GetActorsInLevel(context.Background())
	if cap.command != "get_actors_in_level" {
		t.Errorf("command = %q", cap.command)
	}
	if len(cap.params) != 0 {
		t.Errorf("params = %v, want empty", cap.params)
	}
}

func TestClient_FindActorsByName(t *testing.T) {
	cap := &capture{}
	NewClient(cap).FindActorsByName(context.Background(), "Wall_*")
	if cap.command != "find_actors_by_name" || cap.params["pattern"] != "Wall_*" {
		t.Errorf("command = %q, params = %v", cap.command, cap.params)
	}
}

func TestClient_SetActorTransform(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform
		wantKeys  []string
		skipKeys  []string
	}{
		{
			name:      "location only",
			transform: Transform{Location: &[3]float64{1, 2, 3}},
			wantKeys:  []string{"name", "location"},
			skipKeys:  []string{"rotation", "scale"},
		},
		{
			name: "all fields",
			transform: Transform{
				Location: &[3]float64{1, 2, 3},
				Rotation: &[3]float64{0, 90, 0},
				Scale:    &[3]float64{2, 2, 2},
			},
			wantKeys: []string{"name", "location", "rotation", "scale"},
		},
		{
			name:      "no optional fields",
			transform: Transform{},
			wantKeys:  []string{"name"},
			skipKeys:  []string{"location", "rotation", "scale"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cap := &capture{}
			NewClient(cap).SetActorTransform(context.Background(), "Cube_1", tt.transform)
			if cap.command != "set_actor_transform" {
				t.Fatalf("command = %q", cap.command)
			}
			for _, k := range tt.wantKeys {
				if _, ok := cap.params[k]; !ok {
					t.Errorf("missing param %q", k)
				}
			}
			for _, k := range tt.skipKeys {
				if _, ok := cap.params[k]; ok {
					t.Errorf("unexpected param %q", k)
				}
			}
		})
	}
}

func TestClient_SpawnActor_Defaults(t *testing.T) {
	cap := &capture{}
	NewClient(cap).SpawnActor(context.Background(), SpawnParams{Name: "Cube_1"})

	if cap.params["type"] != "StaticMeshActor" {
		t.Errorf("type = %v, want StaticMeshActor", cap.params["type"])
	}
	scale, _ := cap.params["scale"].([]float64)
	if len(scale) != 3 || scale[0] != 1 {
		t.Errorf("scale = %v, want unit scale", cap.params["scale"])
	}
	if _, ok := cap.params["static_mesh"]; ok {
		t.Error("empty static_mesh should be omitted")
	}
}

func TestClient_DeleteActor(t *testing.T) {
	cap := &capture{resp: protocol.ErrorResponse("actor not found")}
	resp := NewClient(cap).DeleteActor(context.Background(), "Ghost")
	if cap.command != "delete_actor" || cap.params["name"] != "Ghost" {
		t.Errorf("command = %q, params = %v", cap.command, cap.params)
	}
	if !resp.IsError() {
		t.Error("error response not passed through")
	}
}

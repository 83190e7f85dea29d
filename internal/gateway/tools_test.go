package gateway

import (
	"context"
	"strings"
	"testing"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// ============================================================
// Registry
// ============================================================

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Tool{
		Name:    "ping",
		Handler: func(context.Context, map[string]any) protocol.Response { return nil },
	})

	if _, ok := reg.Get("ping"); !ok {
		t.Fatal("registered tool not found")
	}
	if _, ok := reg.Get("pong"); ok {
		t.Fatal("unregistered tool found")
	}
}

func TestRegistry_IgnoresInvalid(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Tool{Name: "", Handler: func(context.Context, map[string]any) protocol.Response { return nil }})
	reg.Register(Tool{Name: "no-handler"})
	if reg.Count() != 0 {
		t.Errorf("Count() = %d, want 0", reg.Count())
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	reg := NewRegistry()
	noop := func(context.Context, map[string]any) protocol.Response { return nil }
	for _, name := range []string{"zeta", "alpha", "mid"} {
		reg.Register(Tool{Name: name, Handler: noop})
	}

	tools := reg.List()
	if len(tools) != 3 {
		t.Fatalf("len = %d, want 3", len(tools))
	}
	for i, want := range []string{"alpha", "mid", "zeta"} {
		if tools[i].Name != want {
			t.Errorf("tools[%d] = %q, want %q", i, tools[i].Name, want)
		}
	}
}

// ============================================================
// Default tools
// ============================================================

func TestDefaultTools_SpawnActor(t *testing.T) {
	sender := &fakeSender{}
	reg := DefaultTools(sender)

	tool, ok := reg.Get("spawn_actor")
	if !ok {
		t.Fatal("spawn_actor not registered")
	}

	resp := tool.Handler(context.Background(), map[string]any{
		"name":     "Cube1",
		"location": []any{100.0, 0.0, 50.0},
	})
	if resp.IsError() {
		t.Fatalf("unexpected error: %v", resp)
	}
	if len(sender.commands) != 1 || sender.commands[0] != "spawn_actor" {
		t.Fatalf("commands = %v, want [spawn_actor]", sender.commands)
	}
	params, _ := sender.params[0].(map[string]any)
	if params["name"] != "Cube1" {
		t.Errorf("name param = %v, want Cube1", params["name"])
	}
}

func TestDefaultTools_BadParams(t *testing.T) {
	reg := DefaultTools(&fakeSender{})
	tool, _ := reg.Get("build_pyramid")

	resp := tool.Handler(context.Background(), map[string]any{
		"base_size": "not a number",
	})
	if !resp.IsError() {
		t.Fatal("expected an error response for bad params")
	}
	if msg := resp.ErrorMessage(); !strings.Contains(msg, "invalid parameters") {
		t.Errorf("error = %q, want invalid parameters", msg)
	}
}

func TestDefaultTools_BuildPyramid(t *testing.T) {
	sender := &fakeSender{}
	reg := DefaultTools(sender)
	tool, _ := reg.Get("build_pyramid")

	resp := tool.Handler(context.Background(), map[string]any{"base_size": 2.0})
	if resp.IsError() {
		t.Fatalf("unexpected error: %v", resp)
	}
	// 2x2 base plus a single cap block.
	if len(sender.commands) != 5 {
		t.Fatalf("dispatched %d commands, want 5", len(sender.commands))
	}
	for _, cmd := range sender.commands {
		if cmd != "spawn_actor" {
			t.Fatalf("command = %q, want spawn_actor", cmd)
		}
	}
}

func TestDefaultTools_DryRun(t *testing.T) {
	sender := &fakeSender{}
	reg := DefaultTools(sender)
	tool, _ := reg.Get("build_maze")

	resp := tool.Handler(context.Background(), map[string]any{
		"rows":    4.0,
		"cols":    4.0,
		"dry_run": true,
	})
	if resp.IsError() {
		t.Fatalf("unexpected error: %v", resp)
	}
	if resp["dry_run"] != true {
		t.Errorf("dry_run = %v, want true", resp["dry_run"])
	}
	if actors, _ := resp["actors"].(int); actors == 0 {
		t.Error("expected a non-zero actor count")
	}
	if len(sender.commands) != 0 {
		t.Errorf("dry run dispatched %d commands, want 0", len(sender.commands))
	}
}

func TestDefaultTools_BridgeDryRunMetrics(t *testing.T) {
	sender := &fakeSender{}
	reg := DefaultTools(sender)
	tool, _ := reg.Get("build_suspension_bridge")

	resp := tool.Handler(context.Background(), map[string]any{"dry_run": true})
	if resp.IsError() {
		t.Fatalf("unexpected error: %v", resp)
	}
	if resp["metrics"] == nil {
		t.Fatal("expected metrics in dry-run response")
	}
	if len(sender.commands) != 0 {
		t.Errorf("dry run dispatched %d commands, want 0", len(sender.commands))
	}
}

func TestDefaultTools_TownReportsStats(t *testing.T) {
	sender := &fakeSender{}
	reg := DefaultTools(sender)
	tool, _ := reg.Get("build_town")

	resp := tool.Handler(context.Background(), map[string]any{"size": "small"})
	if resp.IsError() {
		t.Fatalf("unexpected error: %v", resp)
	}
	if resp["stats"] == nil {
		t.Fatal("expected stats in town response")
	}
	if resp["report"] == nil {
		t.Fatal("expected a build report")
	}
	if len(sender.commands) == 0 {
		t.Fatal("expected spawn commands to be dispatched")
	}
}

func TestDefaultTools_FailuresSurfaceInReport(t *testing.T) {
	sender := &fakeSender{replies: map[string]protocol.Response{
		"spawn_actor": protocol.ErrorResponse("editor rejected spawn"),
	}}
	reg := DefaultTools(sender)
	tool, _ := reg.Get("build_wall")

	resp := tool.Handler(context.Background(), map[string]any{
		"length": 2.0,
		"height": 1.0,
	})
	if !resp.IsError() {
		t.Fatal("expected error status when every spawn fails")
	}
}

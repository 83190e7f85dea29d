package build

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// ============================================================
// Run Tests
// ============================================================

// fakeSender records dispatched commands and fails names matching a
// substring.
type fakeSender struct {
	mu       sync.Mutex
	commands []string
	names    []string
	failOn   string
}

func (f *fakeSender) Send(_ context.Context, command string, params any) protocol.Response {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, command)
	name, _ := params.(map[string]any)["name"].(string)
	f.names = append(f.names, name)
	if f.failOn != "" && strings.Contains(name, f.failOn) {
		return protocol.ErrorResponse("spawn rejected")
	}
	return protocol.Response{"status": protocol.StatusSuccess, "result": map[string]any{"name": name}}
}

func TestRun_AllSucceed(t *testing.T) {
	s := &fakeSender{}
	plan := Staircase{Steps: 3}.Plan()
	rep := Run(context.Background(), s, plan)

	if rep.Requested != 3 || rep.Spawned != 3 || rep.Failed != 0 {
		t.Errorf("report = %+v", rep)
	}
	for _, cmd := range s.commands {
		if cmd != "spawn_actor" {
			t.Errorf("command = %q, want spawn_actor", cmd)
		}
	}
	if len(rep.Actors) != 3 {
		t.Errorf("actors = %v", rep.Actors)
	}
}

func TestRun_SkipsFailures(t *testing.T) {
	s := &fakeSender{failOn: "_1"}
	plan := Staircase{Steps: 3}.Plan()
	rep := Run(context.Background(), s, plan)

	if rep.Spawned != 2 || rep.Failed != 1 {
		t.Errorf("report = %+v", rep)
	}
	if len(rep.Errors) != 1 || !strings.Contains(rep.Errors[0], "spawn rejected") {
		t.Errorf("errors = %v", rep.Errors)
	}
	// All three dispatched despite the failure in the middle.
	if len(s.commands) != 3 {
		t.Errorf("dispatched %d commands, want 3", len(s.commands))
	}
}

func TestRun_CanceledStopsEarly(t *testing.T) {
	s := &fakeSender{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep := Run(ctx, s, Staircase{Steps: 5}.Plan())

	if len(s.commands) != 0 {
		t.Errorf("dispatched %d commands after cancel, want 0", len(s.commands))
	}
	if rep.Failed != 5 {
		t.Errorf("failed = %d, want 5", rep.Failed)
	}
}

func TestRunProgress_Callback(t *testing.T) {
	s := &fakeSender{failOn: "_1"}
	plan := Staircase{Steps: 4}.Plan()

	var calls [][2]int
	rep := RunProgress(context.Background(), s, plan, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})

	if len(calls) != 4 {
		t.Fatalf("progress calls = %d, want 4", len(calls))
	}
	for i, c := range calls {
		if c[0] != i+1 || c[1] != 4 {
			t.Errorf("call %d = %v, want [%d 4]", i, c, i+1)
		}
	}
	// Failures still count toward progress
	if rep.Spawned != 3 || rep.Failed != 1 {
		t.Errorf("report = %+v", rep)
	}
}

func TestSpawn_Params(t *testing.T) {
	p := Spawn{Name: "Block_1", Location: Vec3{10, 20, 30}}.params()

	if p["name"] != "Block_1" {
		t.Errorf("name = %v", p["name"])
	}
	if p["type"] != "StaticMeshActor" {
		t.Errorf("type = %v", p["type"])
	}
	if p["static_mesh"] != MeshCube {
		t.Errorf("zero mesh not defaulted: %v", p["static_mesh"])
	}
	scale, ok := p["scale"].([]float64)
	if !ok || scale[0] != 1 || scale[1] != 1 || scale[2] != 1 {
		t.Errorf("zero scale not defaulted: %v", p["scale"])
	}
}

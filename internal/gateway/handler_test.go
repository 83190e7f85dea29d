package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yndnr/uebridge-go/internal/engine"
	"github.com/yndnr/uebridge-go/internal/protocol"
	"github.com/yndnr/uebridge-go/internal/telemetry/logger"
)

// fakeSender records dispatched commands and replies with canned
// responses keyed by command name.
type fakeSender struct {
	commands []string
	params   []any
	replies  map[string]protocol.Response
}

func (f *fakeSender) Send(_ context.Context, command string, params any) protocol.Response {
	f.commands = append(f.commands, command)
	f.params = append(f.params, params)
	if resp, ok := f.replies[command]; ok {
		return resp
	}
	return protocol.Response{"status": protocol.StatusSuccess}
}

type fakeHistory struct {
	results []engine.Result
	err     error
}

func (f *fakeHistory) Recent(n int) ([]engine.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	if n < len(f.results) {
		return f.results[:n], nil
	}
	return f.results, nil
}

func testHandler(t *testing.T, sender Sender, opts ...func(*HandlerConfig)) *Handler {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Output: io.Discard})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	cfg := HandlerConfig{
		Sender: sender,
		Logger: log,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewHandler(cfg)
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("response is not JSON: %v: %s", err, rec.Body.String())
		}
	}
	return rec, decoded
}

// ============================================================
// Health and metrics
// ============================================================

func TestHandler_Health(t *testing.T) {
	h := testHandler(t, &fakeSender{})
	rec, body := doJSON(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
}

// statefulSender is a fakeSender that also reports connection state,
// like *engine.Conn does.
type statefulSender struct {
	fakeSender
	state   engine.State
	lastErr error
}

func (s *statefulSender) State() engine.State { return s.state }
func (s *statefulSender) LastError() error    { return s.lastErr }

func TestHandler_Health_ReportsEditorState(t *testing.T) {
	sender := &statefulSender{state: engine.StateDisconnected, lastErr: engine.ErrConnectFailed}
	h := testHandler(t, sender)

	rec, body := doJSON(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	editor, ok := body["editor"].(map[string]any)
	if !ok {
		t.Fatalf("editor field missing: %v", body)
	}
	if editor["state"] != "disconnected" {
		t.Errorf("state = %v, want disconnected", editor["state"])
	}
	if msg, _ := editor["last_error"].(string); msg == "" {
		t.Error("last_error missing for failed connection")
	}
}

func TestHandler_Health_NoEditorFieldWithoutState(t *testing.T) {
	h := testHandler(t, &fakeSender{})
	_, body := doJSON(t, h, http.MethodGet, "/health", "")
	if _, ok := body["editor"]; ok {
		t.Error("plain sender should not produce an editor field")
	}
}

func TestHandler_Metrics(t *testing.T) {
	h := testHandler(t, &fakeSender{})
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

// ============================================================
// Command endpoint
// ============================================================

func TestHandler_Command(t *testing.T) {
	sender := &fakeSender{replies: map[string]protocol.Response{
		"ping": {"status": "success", "result": "pong"},
	}}
	h := testHandler(t, sender)

	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/commands",
		`{"command": "ping", "params": {"x": 1}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["result"] != "pong" {
		t.Errorf("result = %v, want pong", body["result"])
	}
	if len(sender.commands) != 1 || sender.commands[0] != "ping" {
		t.Errorf("dispatched commands = %v, want [ping]", sender.commands)
	}
}

func TestHandler_Command_MissingName(t *testing.T) {
	h := testHandler(t, &fakeSender{})
	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/commands", `{"params": {}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body["status"] != "error" {
		t.Errorf("status field = %v, want error", body["status"])
	}
}

func TestHandler_Command_BadJSON(t *testing.T) {
	h := testHandler(t, &fakeSender{})
	rec, _ := doJSON(t, h, http.MethodPost, "/api/v1/commands", `{"command":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// Editor errors come back as HTTP 200 with an error status in the
// body; only transport-level problems map to HTTP errors.
func TestHandler_Command_EditorErrorIs200(t *testing.T) {
	sender := &fakeSender{replies: map[string]protocol.Response{
		"delete_actor": protocol.ErrorResponse("actor not found"),
	}}
	h := testHandler(t, sender)

	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/commands",
		`{"command": "delete_actor", "params": {"name": "Ghost"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["status"] != "error" {
		t.Errorf("status field = %v, want error", body["status"])
	}
}

// ============================================================
// Tool endpoints
// ============================================================

func TestHandler_ListTools(t *testing.T) {
	sender := &fakeSender{}
	h := testHandler(t, sender, func(cfg *HandlerConfig) {
		cfg.Tools = DefaultTools(sender)
	})

	rec, body := doJSON(t, h, http.MethodGet, "/api/v1/tools", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	count, _ := body["count"].(float64)
	if count == 0 {
		t.Fatal("expected a non-empty tool list")
	}
	tools, _ := body["tools"].([]any)
	if len(tools) != int(count) {
		t.Errorf("len(tools) = %d, count = %d", len(tools), int(count))
	}
}

func TestHandler_Tool_Dispatch(t *testing.T) {
	sender := &fakeSender{}
	h := testHandler(t, sender, func(cfg *HandlerConfig) {
		cfg.Tools = DefaultTools(sender)
	})

	rec, _ := doJSON(t, h, http.MethodPost, "/api/v1/tools/get_actors_in_level", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(sender.commands) != 1 || sender.commands[0] != "get_actors_in_level" {
		t.Errorf("dispatched commands = %v, want [get_actors_in_level]", sender.commands)
	}
}

func TestHandler_Tool_Unknown(t *testing.T) {
	h := testHandler(t, &fakeSender{})
	rec, body := doJSON(t, h, http.MethodPost, "/api/v1/tools/no_such_tool", "{}")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if msg, _ := body["error"].(string); !strings.Contains(msg, "no_such_tool") {
		t.Errorf("error = %q, want it to name the tool", msg)
	}
}

// ============================================================
// History endpoint
// ============================================================

func TestHandler_History(t *testing.T) {
	hist := &fakeHistory{results: []engine.Result{
		{ID: "01A", Command: "spawn_actor", Status: "success"},
		{ID: "01B", Command: "delete_actor", Status: "error"},
	}}
	h := testHandler(t, &fakeSender{}, func(cfg *HandlerConfig) {
		cfg.History = hist
	})

	rec, body := doJSON(t, h, http.MethodGet, "/api/v1/history", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if count, _ := body["count"].(float64); count != 2 {
		t.Errorf("count = %v, want 2", body["count"])
	}
}

func TestHandler_History_Limit(t *testing.T) {
	hist := &fakeHistory{results: []engine.Result{
		{ID: "01A"}, {ID: "01B"}, {ID: "01C"},
	}}
	h := testHandler(t, &fakeSender{}, func(cfg *HandlerConfig) {
		cfg.History = hist
	})

	rec, body := doJSON(t, h, http.MethodGet, "/api/v1/history?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if count, _ := body["count"].(float64); count != 2 {
		t.Errorf("count = %v, want 2", body["count"])
	}
}

func TestHandler_History_BadLimit(t *testing.T) {
	h := testHandler(t, &fakeSender{}, func(cfg *HandlerConfig) {
		cfg.History = &fakeHistory{}
	})
	rec, _ := doJSON(t, h, http.MethodGet, "/api/v1/history?limit=zero", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_History_Disabled(t *testing.T) {
	h := testHandler(t, &fakeSender{})
	rec, _ := doJSON(t, h, http.MethodGet, "/api/v1/history", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
